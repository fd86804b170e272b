package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/minhyannv/gemini-chat-go/pkg/envfile"
)

const (
	TransportREST   = "rest"
	TransportOpenAI = "openai"

	DefaultEnvName = "dev"
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	BaseEnvFile    = ".env"
)

// MissingCredentialsError is returned by Validate when API_KEY or MODEL is empty.
type MissingCredentialsError struct {
	EnvFile string
}

func (e *MissingCredentialsError) Error() string {
	return fmt.Sprintf("Please set API_KEY and MODEL in your %s file.", e.EnvFile)
}

// Config holds all runtime configuration for the chat client.
type Config struct {
	EnvName string
	EnvFile string

	APIKey        string
	Model         string
	BaseURL       string
	Transport     string
	OpenAIBaseURL string

	PersonaFile string
	LogLevel    string
	Verbose     bool
}

// LookupFunc reads a variable from the process environment.
type LookupFunc func(key string) (string, bool)

// DefaultConfig returns a baseline configuration without side effects.
func DefaultConfig() Config {
	return Config{
		EnvName:   DefaultEnvName,
		EnvFile:   envFileName(DefaultEnvName),
		BaseURL:   DefaultBaseURL,
		Transport: TransportREST,
		LogLevel:  "warn",
	}
}

// Normalize sanitizes configuration values and applies defaults.
func Normalize(cfg Config) Config {
	cfg.EnvName = strings.ToLower(strings.TrimSpace(cfg.EnvName))
	if cfg.EnvName == "" {
		cfg.EnvName = DefaultEnvName
	}
	if strings.TrimSpace(cfg.EnvFile) == "" {
		cfg.EnvFile = envFileName(cfg.EnvName)
	}
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.Model = strings.TrimSpace(cfg.Model)
	cfg.PersonaFile = strings.TrimSpace(cfg.PersonaFile)
	cfg.LogLevel = strings.TrimSpace(cfg.LogLevel)

	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	cfg.Transport = strings.ToLower(strings.TrimSpace(cfg.Transport))
	if cfg.Transport != TransportOpenAI {
		cfg.Transport = TransportREST
	}

	cfg.OpenAIBaseURL = strings.TrimSpace(cfg.OpenAIBaseURL)
	if cfg.OpenAIBaseURL == "" {
		cfg.OpenAIBaseURL = cfg.BaseURL + "/v1beta/openai/"
	}
	if !strings.HasSuffix(cfg.OpenAIBaseURL, "/") {
		cfg.OpenAIBaseURL += "/"
	}
	if cfg.Verbose {
		cfg.LogLevel = "debug"
	}
	return cfg
}

// Validate reports whether the required credentials are present.
func Validate(cfg Config) error {
	if cfg.APIKey == "" || cfg.Model == "" {
		return &MissingCredentialsError{EnvFile: cfg.EnvFile}
	}
	return nil
}

// Load reads dir/.env and dir/.env.<ENV_NAME>, layers them over lookup and
// returns the normalized configuration. Values from the override file win
// over the base file, which wins over the process environment.
func Load(dir string, lookup LookupFunc) (Config, error) {
	if lookup == nil {
		lookup = func(string) (string, bool) { return "", false }
	}

	base, err := envfile.Read(filepath.Join(dir, BaseEnvFile))
	if err != nil {
		return Config{}, err
	}

	envName := layered(lookup, base)("ENV_NAME")
	envName = strings.ToLower(strings.TrimSpace(envName))
	if envName == "" {
		envName = DefaultEnvName
	}
	envFile := envFileName(envName)

	override, err := envfile.Read(filepath.Join(dir, envFile))
	if err != nil {
		return Config{}, err
	}
	get := layered(lookup, envfile.Merge(base, override))

	cfg := DefaultConfig()
	cfg.EnvName = envName
	cfg.EnvFile = envFile
	cfg.APIKey = get("API_KEY")
	cfg.Model = get("MODEL")
	if v := get("BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := get("TRANSPORT"); v != "" {
		cfg.Transport = v
	}
	cfg.OpenAIBaseURL = get("OPENAI_BASE_URL")
	if v := get("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	cfg.Verbose = truthy(get("VERBOSE"))

	if p := strings.TrimSpace(get("PERSONA_FILE")); p != "" {
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		cfg.PersonaFile = p
	}

	return Normalize(cfg), nil
}

func envFileName(envName string) string {
	return BaseEnvFile + "." + envName
}

// layered returns a getter that prefers file values over the process environment.
func layered(lookup LookupFunc, files map[string]string) func(string) string {
	return func(key string) string {
		if v, ok := files[key]; ok {
			return v
		}
		v, _ := lookup(key)
		return v
	}
}

func truthy(v string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	return err == nil && b
}
