package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/minhyannv/gemini-chat-go/pkg/chat"
	"github.com/minhyannv/gemini-chat-go/pkg/config"
	"github.com/minhyannv/gemini-chat-go/pkg/gemini"
	loggerpkg "github.com/minhyannv/gemini-chat-go/pkg/logger"
	"github.com/minhyannv/gemini-chat-go/pkg/openaicompat"
	"github.com/minhyannv/gemini-chat-go/pkg/persona"
)

// environment is where configuration comes from.
type environment struct {
	configDir string
	lookup    config.LookupFunc
}

func processEnvironment() environment {
	return environment{
		configDir: defaultConfigDir(os.LookupEnv),
		lookup:    os.LookupEnv,
	}
}

// defaultConfigDir is CONFIG_DIR when set, else the directory of the
// resolved executable.
func defaultConfigDir(lookup config.LookupFunc) string {
	if dir, ok := lookup("CONFIG_DIR"); ok && strings.TrimSpace(dir) != "" {
		return strings.TrimSpace(dir)
	}
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// app holds what both session modes need.
type app struct {
	config    config.Config
	persona   persona.Persona
	generator chat.Generator
	logger    loggerpkg.Logger
}

// newApp loads and validates configuration. Any error is fatal to the caller.
func newApp(env environment, logOut io.Writer) (*app, error) {
	cfg, err := config.Load(env.configDir, env.lookup)
	if err != nil {
		return nil, err
	}

	level, ok := loggerpkg.ParseLevel(cfg.LogLevel)
	appLogger := loggerpkg.NewWriterLogger(logOut, level)
	if !ok {
		appLogger.Warn("unknown log level, using warn", map[string]any{"log_level": cfg.LogLevel})
	}
	appLogger.Debug("config loaded", map[string]any{
		"config_dir":   env.configDir,
		"env_file":     cfg.EnvFile,
		"model":        cfg.Model,
		"base_url":     cfg.BaseURL,
		"transport":    cfg.Transport,
		"persona_file": cfg.PersonaFile,
	})

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	p := persona.Default()
	if cfg.PersonaFile != "" {
		p, err = persona.Load(cfg.PersonaFile)
		if err != nil {
			return nil, err
		}
	}

	return &app{
		config:    cfg,
		persona:   p,
		generator: newGenerator(cfg, appLogger),
		logger:    appLogger,
	}, nil
}

func newGenerator(cfg config.Config, logger loggerpkg.Logger) chat.Generator {
	if cfg.Transport == config.TransportOpenAI {
		return openaicompat.New(cfg.OpenAIBaseURL, cfg.APIKey, cfg.Model, openaicompat.WithLogger(logger))
	}
	return gemini.New(cfg.BaseURL, cfg.APIKey, cfg.Model, gemini.WithLogger(logger))
}
