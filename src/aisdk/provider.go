package aisdk

import (
	"context"
)

// ModelClient represents a client bound to a specific model.
type ModelClient interface {
	CreateChatCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error)
	ModelName() string
}

// Transcriber converts audio content to text.
type Transcriber interface {
	CreateTranscription(ctx context.Context, req *TranscriptionRequest) (string, error)
}
