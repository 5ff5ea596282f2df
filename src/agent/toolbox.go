package agent

import (
	"context"
	"fmt"

	"github.com/tdnguyen/aureus/src/aisdk"
)

// ToolExecutor is a function type for tool execution
type ToolExecutor func(ctx context.Context, call *aisdk.ToolCall) (*aisdk.ToolResponse, error)

// DefaultToolbox is a Toolbox over the plain Tool interface.
type DefaultToolbox = Toolbox[Tool]

// Toolbox holds the fixed set of registered tools and dispatches model
// requested calls to them.
type Toolbox[T Tool] struct {
	tools      map[string]T
	middleware []ToolMiddleware
}

// ToolMiddleware is a function that wraps a ToolExecutor to add functionality.
type ToolMiddleware func(next ToolExecutor) ToolExecutor

// NewToolbox creates a new tool manager.
func NewToolbox[T Tool]() *Toolbox[T] {
	return &Toolbox[T]{
		tools: make(map[string]T),
	}
}

// RegisterTool registers a tool.
func (tm *Toolbox[T]) RegisterTool(tool T) error {
	if tool.GetName() == "" {
		return fmt.Errorf("tool name cannot be empty")
	}

	if _, exists := tm.tools[tool.GetName()]; exists {
		return fmt.Errorf("tool %s is already registered", tool.GetName())
	}

	tm.tools[tool.GetName()] = tool
	return nil
}

// RegisterMiddleware registers middleware that will be applied to all tool executions.
// Middleware is applied in the order it's registered (first registered = outermost layer).
func (tm *Toolbox[T]) RegisterMiddleware(middleware ToolMiddleware) {
	tm.middleware = append(tm.middleware, middleware)
}

// Tools returns the list of available tools
func (tm *Toolbox[T]) Tools() []T {
	out := make([]T, 0, len(tm.tools))
	for _, tool := range tm.tools {
		out = append(out, tool)
	}
	return out
}

// GetTool returns a specific tool by name.
func (tm *Toolbox[T]) GetTool(name string) (T, bool) {
	tool, exists := tm.tools[name]
	return tool, exists
}

// HasTool checks if a tool is available.
func (tm *Toolbox[T]) HasTool(name string) bool {
	_, exists := tm.tools[name]
	return exists
}

// ExecuteTool dispatches a single tool call with middleware applied. A call
// naming an unregistered tool or missing its id is a ProtocolViolationError:
// the tool schema sent to the model forbids both, so there is no recovery.
func (tm *Toolbox[T]) ExecuteTool(ctx context.Context, call *aisdk.ToolCall) (*aisdk.ToolResponse, error) {
	if call.ID == "" {
		return nil, &ProtocolViolationError{ToolName: call.Function.Name, Err: ErrMissingToolCallID}
	}

	tool, exists := tm.tools[call.Function.Name]
	if !exists {
		return nil, &ProtocolViolationError{ToolName: call.Function.Name, CallID: call.ID, Err: ErrUnknownTool}
	}

	toolExecutor := ToolExecutor(func(ctx context.Context, call *aisdk.ToolCall) (*aisdk.ToolResponse, error) {
		return tool.Execute(ctx, call)
	})

	finalExecutor := toolExecutor
	for i := len(tm.middleware) - 1; i >= 0; i-- {
		finalExecutor = tm.middleware[i](finalExecutor)
	}

	return finalExecutor(ctx, call)
}

// ExecuteCalls dispatches the given tool calls sequentially, in request
// order, and returns one tool-result message per call, each tagged with the
// originating call id.
func (tm *Toolbox[T]) ExecuteCalls(ctx context.Context, calls []aisdk.ToolCall) ([]*aisdk.Message, error) {
	results := make([]*aisdk.Message, 0, len(calls))
	for i := range calls {
		call := &calls[i]
		resp, err := tm.ExecuteTool(ctx, call)
		if err != nil {
			return nil, err
		}
		results = append(results, &aisdk.Message{
			Role:       aisdk.RoleTool,
			Content:    string(resp.Content),
			Name:       call.Function.Name,
			ToolCallID: call.ID,
		})
	}
	return results, nil
}

// LoggingMiddleware logs tool execution details.
func LoggingMiddleware(logger interface {
	Info(msg string, args ...interface{})
}) ToolMiddleware {
	return func(next ToolExecutor) ToolExecutor {
		return func(ctx context.Context, call *aisdk.ToolCall) (*aisdk.ToolResponse, error) {
			logger.Info("executing tool", "tool", call.Function.Name, "params", string(call.Function.Arguments))
			result, err := next(ctx, call)
			if err != nil {
				logger.Info("tool execution failed", "error", err)
			} else {
				logger.Info("tool execution completed successfully")
			}
			return result, err
		}
	}
}
