package advisor

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdnguyen/aureus/src/aisdk"
)

// scriptedModel returns canned responses and records the requests it saw.
type scriptedModel struct {
	responses []*aisdk.ChatCompletionResponse
	requests  []*aisdk.ChatCompletionRequest
	err       error
}

func (m *scriptedModel) CreateChatCompletion(_ context.Context, req *aisdk.ChatCompletionRequest) (*aisdk.ChatCompletionResponse, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	resp := m.responses[0]
	m.responses = m.responses[1:]
	return resp, nil
}

func (m *scriptedModel) ModelName() string { return "scripted" }

func textResponse(content string) *aisdk.ChatCompletionResponse {
	return &aisdk.ChatCompletionResponse{
		Choices: []aisdk.Choice{{
			Message:      aisdk.Message{Role: aisdk.RoleAssistant, Content: content},
			FinishReason: "stop",
		}},
	}
}

func TestGenerateAdvice(t *testing.T) {
	model := &scriptedModel{responses: []*aisdk.ChatCompletionResponse{
		textResponse("Buy a little now, wait for dips."),
	}}

	advice, err := GenerateAdvice(context.Background(), model, 2200, "USD", "usa", []HistoryEntry{
		{Role: aisdk.RoleUser, Content: "should I buy gold?"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Buy a little now, wait for dips.", advice)

	require.Len(t, model.requests, 1)
	req := model.requests[0]
	assert.Empty(t, req.Tools, "advice request must not be tool-enabled")

	require.GreaterOrEqual(t, len(req.Messages), 2)
	system := req.Messages[0]
	assert.Equal(t, aisdk.RoleSystem, system.Role)
	assert.Contains(t, system.Content, "Risk Level: MODERATE")
	assert.Contains(t, system.Content, "Good entry point at 2200 USD")
	assert.Contains(t, system.Content, "Current gold price: 2200 USD")

	assert.Equal(t, "should I buy gold?", req.Messages[1].Content)
}

func TestGenerateAdviceModelFailurePropagates(t *testing.T) {
	model := &scriptedModel{err: errors.New("model unavailable")}

	_, err := GenerateAdvice(context.Background(), model, 2200, "USD", "usa", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model unavailable")
	require.Len(t, model.requests, 1)
}

func TestGenerateAdviceInvalidPrice(t *testing.T) {
	model := &scriptedModel{}

	_, err := GenerateAdvice(context.Background(), model, math.NaN(), "USD", "usa", nil)
	require.Error(t, err)
	assert.Empty(t, model.requests, "model must not be called for an invalid price")
}
