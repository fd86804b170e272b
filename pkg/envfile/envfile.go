// Package envfile reads KEY=VALUE configuration files.
package envfile

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// ErrMissingSeparator is returned for a non-comment line without '='.
var ErrMissingSeparator = errors.New("missing '=' separator")

// Read parses the env file at path into a map.
// A missing file yields an empty map and no error.
func Read(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse parses env file contents. name is only used in error messages.
//
// Every non-blank line not starting with '#' is split on its first '='.
// Key and value are trimmed and one layer of surrounding double quotes is
// removed from the value. Nothing else is interpreted: '$', '#', single
// quotes and backslashes are kept as written, and keys are not validated.
// Later lines win for the same key.
func Parse(name string, data []byte) (map[string]string, error) {
	values := map[string]string{}
	for i, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := decodeLine(line)
		if !ok {
			return nil, fmt.Errorf("parse %s:%d: %w", name, i+1, ErrMissingSeparator)
		}
		values[key] = value
	}
	return values, nil
}

// Merge layers maps left to right; later maps win for the same key.
func Merge(layers ...map[string]string) map[string]string {
	out := map[string]string{}
	for _, layer := range layers {
		for k, v := range layer {
			out[k] = v
		}
	}
	return out
}

func decodeLine(line string) (string, string, bool) {
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	if isPlain(key, value) {
		if parsed, err := godotenv.Unmarshal(key + "=" + value); err == nil {
			if v, found := parsed[key]; found {
				return key, v, true
			}
		}
	}
	return key, unquote(value), true
}

// isPlain reports whether godotenv reads the pair exactly as written.
func isPlain(key, value string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		if !isKeyRune(r) {
			return false
		}
	}
	return !strings.ContainsAny(value, "\"'`$#\\= \t")
}

func isKeyRune(r rune) bool {
	return r == '_' || ('0' <= r && r <= '9') || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// unquote removes one layer of surrounding double quotes.
func unquote(value string) string {
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		return value[1 : len(value)-1]
	}
	return value
}
