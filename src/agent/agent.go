package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tdnguyen/aureus/src/aisdk"
)

// Agent couples a model client with the toolbox whose schemas are advertised
// on every request.
type Agent struct {
	Model   aisdk.ModelClient
	Toolbox *DefaultToolbox
	Logger  *slog.Logger
}

// SendMessage sends the conversation (plus an optional trailing message) to
// the model and returns the assistant's reply. The reply may carry tool
// calls; interpreting them is the caller's job.
func (a *Agent) SendMessage(ctx context.Context, conversation *aisdk.Conversation, message *aisdk.Message) (*aisdk.Message, error) {
	messages := conversation.Messages
	if message != nil {
		messages = append(messages, message)
	}

	var chatTools []*aisdk.ChatTool
	if a.Toolbox != nil {
		chatTools = ToChatTools(a.Toolbox.Tools())
	}

	ccr := &aisdk.ChatCompletionRequest{
		Messages: messages,
		Tools:    chatTools,
	}
	response, err := a.Model.CreateChatCompletion(ctx, ccr)
	if err != nil {
		return nil, err
	}

	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	return &response.Choices[0].Message, nil
}

// ToChatTool renders a registered tool as the function definition advertised
// on the chat completions wire.
func ToChatTool(tool Tool) *aisdk.ChatTool {
	return &aisdk.ChatTool{
		Type: tool.GetType(),
		Function: aisdk.ChatToolFunction{
			Name:        tool.GetName(),
			Description: tool.GetDescription(),
			Parameters:  tool.GetParameters(),
		},
	}
}

// ToChatTools renders every tool in the set.
func ToChatTools(tools []Tool) []*aisdk.ChatTool {
	chatTools := make([]*aisdk.ChatTool, len(tools))
	for i, tool := range tools {
		chatTools[i] = ToChatTool(tool)
	}
	return chatTools
}
