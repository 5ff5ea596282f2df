package executor

import "errors"

var (
	// Config validation errors
	ErrModelClientRequired  = errors.New("model client is required")
	ErrConversationRequired = errors.New("conversation is required")
	ErrToolboxRequired      = errors.New("toolbox is required")

	// Execution errors
	ErrMaxTurnsExceeded = errors.New("maximum turns exceeded")
)
