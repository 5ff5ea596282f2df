package executor

import (
	"github.com/tdnguyen/aureus/src/agent"
	"github.com/tdnguyen/aureus/src/aisdk"
)

// ExecutionState represents the current state of conversation execution
type ExecutionState int

const (
	// StateTextResponse means the model provided a text response with no tool calls
	StateTextResponse ExecutionState = iota
	// StateToolCallsNeeded means the model wants to execute tool calls
	StateToolCallsNeeded
	// StateToolCallsCompleted means tool calls have been executed and results are ready to send back
	StateToolCallsCompleted
	// StateError means an error occurred during execution
	StateError
)

// ToolExecutionRequest represents a request to execute tool calls
type ToolExecutionRequest struct {
	// Tool calls to execute, in the order the model requested them
	ToolCalls []aisdk.ToolCall

	// Toolbox to use for execution
	Toolbox *agent.DefaultToolbox

	// Conversation context, for logging
	ConversationID string

	// Optional callbacks
	Callbacks *Callbacks

	// Current turn number
	TurnNumber int
}
