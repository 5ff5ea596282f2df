package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Loader handles loading and merging configuration from defaults, an optional
// JSON file, a .env file, and environment variables, in that order.
type Loader struct {
	configPath string
	envFile    string
	validator  *Validator
}

// NewLoader creates a configuration loader. An empty configPath means the
// default XDG location; an empty envFile means ".env" in the working
// directory.
func NewLoader(configPath, envFile string) *Loader {
	if configPath == "" {
		configPath = DefaultConfigPath()
	}
	if envFile == "" {
		envFile = ".env"
	}
	return &Loader{
		configPath: configPath,
		envFile:    envFile,
		validator:  NewValidator(),
	}
}

// Load loads configuration from all sources and merges them
func (l *Loader) Load() (*Config, error) {
	config := DefaultConfig()

	if cfg, err := l.loadFile(l.configPath); err == nil {
		config = l.mergeConfigs(config, cfg)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load config from %s: %w", l.configPath, err)
	}

	// .env is optional; variables already set in the environment win.
	_ = godotenv.Load(l.envFile)

	l.applyEnvironmentOverrides(config)

	if err := l.validator.Validate(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadFile loads a single configuration file
func (l *Loader) loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return &config, nil
}

// SaveFile saves configuration to a file
func (l *Loader) SaveFile(config *Config, path string) error {
	if err := l.validator.Validate(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// mergeConfigs merges two configurations with the second taking precedence
func (l *Loader) mergeConfigs(base, override *Config) *Config {
	result := *base

	if override.Version != "" {
		result.Version = override.Version
	}

	if override.API.BaseURL != "" {
		result.API.BaseURL = override.API.BaseURL
	}
	if override.API.APIKey != "" {
		result.API.APIKey = override.API.APIKey
	}
	if override.API.Timeout != 0 {
		result.API.Timeout = override.API.Timeout
	}
	if override.API.MaxRetries != 0 {
		result.API.MaxRetries = override.API.MaxRetries
	}

	if override.Models.Chat != "" {
		result.Models.Chat = override.Models.Chat
	}
	if override.Models.Transcription != "" {
		result.Models.Transcription = override.Models.Transcription
	}

	if override.Price.APIKey != "" {
		result.Price.APIKey = override.Price.APIKey
	}
	if override.Price.BaseURL != "" {
		result.Price.BaseURL = override.Price.BaseURL
	}
	if override.Price.Timeout != 0 {
		result.Price.Timeout = override.Price.Timeout
	}
	if override.Price.CachePath != "" {
		result.Price.CachePath = override.Price.CachePath
	}

	if override.Chat.InvestmentType != "" {
		result.Chat.InvestmentType = override.Chat.InvestmentType
	}
	if override.Chat.TargetLanguage != "" {
		result.Chat.TargetLanguage = override.Chat.TargetLanguage
	}
	if override.Chat.MaxTurns != 0 {
		result.Chat.MaxTurns = override.Chat.MaxTurns
	}

	if override.Logging.Level != "" {
		result.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		result.Logging.Format = override.Logging.Format
	}

	return &result
}

// applyEnvironmentOverrides applies environment variable overrides to config
func (l *Loader) applyEnvironmentOverrides(config *Config) {
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		config.API.APIKey = apiKey
	}
	if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
		config.API.BaseURL = baseURL
	}
	if model := os.Getenv("AUREUS_CHAT_MODEL"); model != "" {
		config.Models.Chat = model
	}
	if priceKey := os.Getenv("METALPRICE_API_KEY"); priceKey != "" {
		config.Price.APIKey = priceKey
	}
	if lang := os.Getenv("AUREUS_LANGUAGE"); lang != "" {
		config.Chat.TargetLanguage = lang
	}
	if level := os.Getenv("AUREUS_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}
