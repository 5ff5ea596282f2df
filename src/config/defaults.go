package config

import (
	"time"

	"github.com/tdnguyen/aureus/src/advisor"
)

const (
	DefaultChatModel          = "gpt-4o"
	DefaultTranscriptionModel = "whisper-1"
	DefaultAPIBaseURL         = "https://api.openai.com/v1"
	DefaultPriceBaseURL       = "https://api.metalpriceapi.com/v1"
)

// DefaultConfig returns the configuration used before any file or environment
// override is applied.
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		API: APIConfig{
			BaseURL:    DefaultAPIBaseURL,
			Timeout:    60 * time.Second,
			MaxRetries: 3,
		},
		Models: ModelsConfig{
			Chat:          DefaultChatModel,
			Transcription: DefaultTranscriptionModel,
		},
		Price: PriceConfig{
			BaseURL:   DefaultPriceBaseURL,
			Timeout:   10 * time.Second,
			CachePath: DefaultCachePath(),
		},
		Chat: ChatConfig{
			InvestmentType: advisor.DefaultInvestmentType,
			TargetLanguage: advisor.DefaultTargetLanguage,
			MaxTurns:       8,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
