package oaiclient

import (
	"context"

	"github.com/tdnguyen/aureus/src/aisdk"
)

var _ aisdk.ModelClient = (*ModelClient)(nil)

// ModelClient represents a client bound to a specific model
type ModelClient struct {
	client *Client
	model  string
}

// Model creates a ModelClient bound to the specified model.
func (c *Client) Model(modelName string) *ModelClient {
	return &ModelClient{
		client: c,
		model:  modelName,
	}
}

// CreateChatCompletion creates a chat completion with the bound model
func (mc *ModelClient) CreateChatCompletion(ctx context.Context, req *aisdk.ChatCompletionRequest) (*aisdk.ChatCompletionResponse, error) {
	req.Model = mc.model
	return mc.client.createChatCompletion(ctx, req)
}

// ModelName returns the bound model name.
func (mc *ModelClient) ModelName() string {
	return mc.model
}
