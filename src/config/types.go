package config

import "time"

// Config is the root configuration for the advisor.
type Config struct {
	Version string `json:"version,omitempty"`

	API     APIConfig     `json:"api"`
	Models  ModelsConfig  `json:"models"`
	Price   PriceConfig   `json:"price"`
	Chat    ChatConfig    `json:"chat"`
	Logging LoggingConfig `json:"logging"`
}

// APIConfig configures the OpenAI-compatible endpoint.
type APIConfig struct {
	BaseURL    string        `json:"base_url,omitempty" validate:"omitempty,url"`
	APIKey     string        `json:"api_key,omitempty"`
	Timeout    time.Duration `json:"timeout,omitempty"`
	MaxRetries int           `json:"max_retries,omitempty" validate:"omitempty,min=0,max=10"`
}

// ModelsConfig names the models used for each concern.
type ModelsConfig struct {
	Chat          string `json:"chat,omitempty"`
	Transcription string `json:"transcription,omitempty"`
}

// PriceConfig configures the gold price API and its fallback store.
type PriceConfig struct {
	APIKey    string        `json:"api_key,omitempty"`
	BaseURL   string        `json:"base_url,omitempty" validate:"omitempty,url"`
	Timeout   time.Duration `json:"timeout,omitempty"`
	CachePath string        `json:"cache_path,omitempty"`
}

// ChatConfig configures conversation behavior.
type ChatConfig struct {
	InvestmentType string `json:"investment_type,omitempty" validate:"omitempty,investment_type"`
	TargetLanguage string `json:"target_language,omitempty"`
	MaxTurns       int    `json:"max_turns,omitempty" validate:"omitempty,min=1,max=64"`
}

// LoggingConfig configures the slog handler.
type LoggingConfig struct {
	Level  string `json:"level,omitempty" validate:"omitempty,log_level"`
	Format string `json:"format,omitempty" validate:"omitempty,log_format"`
}

// ValidationError describes a single invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
	Value   interface{}
}

func (e ValidationError) Error() string {
	return "config: " + e.Field + ": " + e.Message
}
