package advisor

import (
	"context"
	"fmt"

	"github.com/tdnguyen/aureus/src/aisdk"
	"github.com/tdnguyen/aureus/src/risk"
)

// HistoryEntry is the conversation-tail shape accepted in tool arguments.
type HistoryEntry struct {
	Role    string `json:"role" required:"true" description:"Message role"`
	Content string `json:"content" required:"true" description:"Message content"`
}

// historyMessages converts tool-argument history into wire messages.
func historyMessages(history []HistoryEntry) []*aisdk.Message {
	msgs := make([]*aisdk.Message, 0, len(history))
	for _, entry := range history {
		msgs = append(msgs, &aisdk.Message{Role: entry.Role, Content: entry.Content})
	}
	return msgs
}

// GenerateAdvice runs the risk engine on (price, currency), embeds its output
// in the advice system prompt, and asks the model for natural-language
// advice in a single non-tool request. Model failures propagate to the
// caller; unlike the price lookup there is no local recovery here.
func GenerateAdvice(ctx context.Context, model aisdk.ModelClient, price float64, currency, country string, history []HistoryEntry) (string, error) {
	assessment, err := risk.Assess(price, currency)
	if err != nil {
		return "", fmt.Errorf("risk assessment failed: %w", err)
	}

	systemPrompt := InvestmentAdvicePrompt(
		assessment.RiskLevel.String(), price, currency, country, assessment.Advice)

	messages := make([]*aisdk.Message, 0, len(history)+1)
	messages = append(messages, &aisdk.Message{Role: aisdk.RoleSystem, Content: systemPrompt})
	messages = append(messages, historyMessages(history)...)

	response, err := model.CreateChatCompletion(ctx, &aisdk.ChatCompletionRequest{
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("advice generation failed: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return response.Choices[0].Message.Content, nil
}
