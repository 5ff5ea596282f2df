// Package aisdk defines the wire types shared between the model client, the
// tool layer, and the orchestration loop.
package aisdk

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	jsonschema "github.com/swaggest/jsonschema-go"
)

// Message roles used on the chat completions wire.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message represents a single message in a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	// Name identifies the function for tool responses.
	Name string `json:"name,omitempty"`
	// ToolCallID references the originating call for tool responses.
	ToolCallID string `json:"tool_call_id,omitempty"`
	// ToolCalls contains function calls requested by the assistant.
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
	// Metadata for message tracking
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// ToolCall represents a function call request from the model (OpenAI format).
type ToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"` // Always "function" for now
	Function FunctionCall `json:"function"`
}

// FunctionCall contains the function name and arguments.
type FunctionCall struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// ToolResponse is the result of executing a single tool call.
type ToolResponse struct {
	Type    string `json:"type"`
	Content []byte `json:"content"`
	IsError bool   `json:"is_error"`
}

// ToolExecutor is a function that executes a tool with given parameters.
type ToolExecutor func(ctx context.Context, call *ToolCall) (*ToolResponse, error)

// ChatTool represents a tool in the format expected by chat completion APIs.
type ChatTool struct {
	Type     string           `json:"type"` // Always "function" for function tools
	Function ChatToolFunction `json:"function"`
}

// ChatToolFunction represents the function definition for chat APIs.
type ChatToolFunction struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Parameters  *jsonschema.Schema `json:"parameters"`
}

// ChatCompletionRequest represents a request to the chat completions endpoint.
type ChatCompletionRequest struct {
	Model       string      `json:"model"`
	Messages    []*Message  `json:"messages"`
	Temperature *float64    `json:"temperature,omitempty"`
	MaxTokens   *int        `json:"max_tokens,omitempty"`
	Tools       []*ChatTool `json:"tools,omitempty"`
	ToolChoice  string      `json:"tool_choice,omitempty"` // "auto", "none", or specific tool
	User        string      `json:"user,omitempty"`
}

// ChatCompletionResponse represents a response from the chat completions endpoint.
type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

// Choice represents a single completion choice.
type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// Usage represents token usage information.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// TranscriptionRequest represents a request to the audio transcriptions endpoint.
type TranscriptionRequest struct {
	Model    string
	Filename string
	Audio    []byte
	// ResponseFormat defaults to "text".
	ResponseFormat string
}

// Error represents an API error response.
type Error struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code,omitempty"`
	Param   string `json:"param,omitempty"`
}

// ErrorResponse wraps an error from the API.
type ErrorResponse struct {
	Error Error `json:"error"`
}

// ClientConfig holds the configuration for chat API clients.
type ClientConfig struct {
	APIKey     string
	BaseURL    string
	RetryCount int
	RetryDelay time.Duration
	// Optional logger
	Logger *slog.Logger
}
