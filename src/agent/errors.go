package agent

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownTool is returned when the model requests a tool outside the
	// registered set. The tool schema forbids this, so it is a protocol
	// violation and fatal to the current turn.
	ErrUnknownTool = errors.New("unknown tool requested")

	// ErrMissingToolCallID is returned when a tool call arrives without an id,
	// which would break request/result pairing.
	ErrMissingToolCallID = errors.New("tool call is missing an id")

	// ErrMissingRequiredArgument is returned when a tool call omits an
	// argument its schema marks required.
	ErrMissingRequiredArgument = errors.New("missing required tool argument")

	// ErrMalformedToolArguments is returned when a tool call's argument
	// payload is not valid JSON for the tool's input type.
	ErrMalformedToolArguments = errors.New("malformed tool arguments")
)

// ProtocolViolationError describes a tool call that breaks the model/tool
// contract.
type ProtocolViolationError struct {
	ToolName string
	CallID   string
	Err      error
}

func (e *ProtocolViolationError) Error() string {
	return fmt.Sprintf("protocol violation for tool %q (call %s): %v", e.ToolName, e.CallID, e.Err)
}

func (e *ProtocolViolationError) Unwrap() error {
	return e.Err
}
