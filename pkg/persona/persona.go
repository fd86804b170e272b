// Package persona loads the priming instruction and reply label.
package persona

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultName        = "Gemini"
	DefaultInstruction = "Jsi chytrý AI asistent. Odpovídej srozumitelně a výstižně."
)

// Persona is the assistant's label and the priming instruction sent as the
// first turn of every transcript.
type Persona struct {
	Name        string `yaml:"name"`
	Instruction string `yaml:"instruction"`
}

// Default returns the built-in persona.
func Default() Persona {
	return Persona{Name: DefaultName, Instruction: DefaultInstruction}
}

// Load reads a persona file. Two layouts are accepted: a plain YAML mapping
// with name and instruction keys, or a markdown file with YAML front matter
// whose body is the instruction. Empty fields fall back to Default.
func Load(path string) (Persona, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Persona{}, fmt.Errorf("read persona: %w", err)
	}
	p, err := Parse(content)
	if err != nil {
		return Persona{}, fmt.Errorf("parse persona %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes persona file contents.
func Parse(content []byte) (Persona, error) {
	var p Persona
	text := strings.ReplaceAll(string(content), "\r\n", "\n")

	if strings.HasPrefix(strings.TrimSpace(text), "---") {
		fm, body, err := splitFrontMatter(text)
		if err != nil {
			return Persona{}, err
		}
		if err := yaml.Unmarshal([]byte(fm), &p); err != nil {
			return Persona{}, err
		}
		if strings.TrimSpace(body) != "" {
			p.Instruction = body
		}
	} else if err := yaml.Unmarshal([]byte(text), &p); err != nil {
		return Persona{}, err
	}

	return withDefaults(p), nil
}

func withDefaults(p Persona) Persona {
	p.Name = strings.TrimSpace(p.Name)
	p.Instruction = strings.TrimSpace(p.Instruction)
	if p.Name == "" {
		p.Name = DefaultName
	}
	if p.Instruction == "" {
		p.Instruction = DefaultInstruction
	}
	return p
}

// splitFrontMatter separates the YAML front matter from the markdown body.
func splitFrontMatter(text string) (string, string, error) {
	lines := strings.Split(strings.TrimLeft(text, " \t\n"), "\n")
	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			end = i
			break
		}
	}
	if end == -1 {
		return "", "", fmt.Errorf("unterminated YAML front matter")
	}
	return strings.Join(lines[1:end], "\n"), strings.Join(lines[end+1:], "\n"), nil
}
