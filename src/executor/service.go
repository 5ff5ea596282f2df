package executor

import (
	"log/slog"

	"github.com/tdnguyen/aureus/src/advisor"
)

// DefaultMaxTurns bounds the model/tool round-trips within a single user
// turn. Two tool calls plus the final text reply fit comfortably; runaway
// tool loops do not.
const DefaultMaxTurns = 8

// Service drives conversation turns with all necessary dependencies
type Service struct {
	logger         *slog.Logger
	systemPrompt   string
	targetLanguage string
	maxTurns       int
}

// ServiceConfig holds configuration for creating a new Service
type ServiceConfig struct {
	SystemPrompt   string
	TargetLanguage string
	MaxTurns       int
	Logger         *slog.Logger
}

// NewService creates a new turn service
func NewService(config ServiceConfig) *Service {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	if config.MaxTurns <= 0 {
		config.MaxTurns = DefaultMaxTurns
	}
	if config.TargetLanguage == "" {
		config.TargetLanguage = advisor.DefaultTargetLanguage
	}
	if config.SystemPrompt == "" {
		config.SystemPrompt = advisor.ChatPrompt(advisor.DefaultInvestmentType)
	}

	return &Service{
		logger:         config.Logger.With("component", "executor"),
		systemPrompt:   config.SystemPrompt,
		targetLanguage: config.TargetLanguage,
		maxTurns:       config.MaxTurns,
	}
}

// SystemPrompt returns the system instruction every conversation is seeded with.
func (s *Service) SystemPrompt() string {
	return s.systemPrompt
}

// MaxTurns returns the per-turn round-trip limit.
func (s *Service) MaxTurns() int {
	return s.maxTurns
}
