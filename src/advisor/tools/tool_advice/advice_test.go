package tool_advice

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdnguyen/aureus/src/agent"
	"github.com/tdnguyen/aureus/src/aisdk"
)

type scriptedModel struct {
	content  string
	err      error
	requests []*aisdk.ChatCompletionRequest
}

func (m *scriptedModel) CreateChatCompletion(_ context.Context, req *aisdk.ChatCompletionRequest) (*aisdk.ChatCompletionResponse, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return &aisdk.ChatCompletionResponse{
		Choices: []aisdk.Choice{{
			Message:      aisdk.Message{Role: aisdk.RoleAssistant, Content: m.content},
			FinishReason: "stop",
		}},
	}, nil
}

func (m *scriptedModel) ModelName() string { return "scripted" }

func TestGenerateAdviceTool(t *testing.T) {
	model := &scriptedModel{content: "Hold and accumulate on weakness."}

	tool, err := Tool(model)
	require.NoError(t, err)
	assert.Equal(t, Name, tool.GetName())

	args, err := json.Marshal(GenerateAdviceInput{
		Price:    2200,
		Currency: "USD",
		Country:  "usa",
	})
	require.NoError(t, err)

	resp, err := tool.Execute(context.Background(), &aisdk.ToolCall{
		ID:       "call-1",
		Function: aisdk.FunctionCall{Name: Name, Arguments: args},
	})
	require.NoError(t, err)
	require.False(t, resp.IsError)

	var out GenerateAdviceOutput
	require.NoError(t, json.Unmarshal(resp.Content, &out))
	assert.Equal(t, "Hold and accumulate on weakness.", out.Advice)

	require.Len(t, model.requests, 1)
	assert.Contains(t, model.requests[0].Messages[0].Content, "Risk Level: MODERATE")
}

func TestGenerateAdviceToolModelFailurePropagates(t *testing.T) {
	model := &scriptedModel{err: errors.New("upstream down")}

	tool, err := Tool(model)
	require.NoError(t, err)

	// An advice model outage must surface as an error from Execute, not as
	// tool output the model could talk past.
	_, err = tool.Execute(context.Background(), &aisdk.ToolCall{
		ID:       "call-1",
		Function: aisdk.FunctionCall{Name: Name, Arguments: json.RawMessage(`{"price":2200,"currency":"USD","country":"usa"}`)},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream down")

	var violation *agent.ProtocolViolationError
	assert.False(t, errors.As(err, &violation), "an upstream outage is not a protocol violation")
}

func TestGenerateAdviceToolMissingFields(t *testing.T) {
	tool, err := Tool(&scriptedModel{})
	require.NoError(t, err)

	_, err = tool.Execute(context.Background(), &aisdk.ToolCall{
		ID:       "call-1",
		Function: aisdk.FunctionCall{Name: Name, Arguments: json.RawMessage(`{"price":2200}`)},
	})
	require.Error(t, err)

	var violation *agent.ProtocolViolationError
	require.ErrorAs(t, err, &violation)
	require.ErrorIs(t, err, agent.ErrMissingRequiredArgument)
}
