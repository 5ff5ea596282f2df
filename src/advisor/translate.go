package advisor

import (
	"context"
	"fmt"

	"github.com/tdnguyen/aureus/src/aisdk"
)

// Translate converts text into the target language with a single-shot model
// call. Failures are rendered into the returned string rather than surfaced
// as errors; translation is the one boundary where the user sees the failure
// text directly.
func Translate(ctx context.Context, model aisdk.ModelClient, text, targetLanguage string) string {
	if text == "" {
		return ""
	}

	response, err := model.CreateChatCompletion(ctx, &aisdk.ChatCompletionRequest{
		Messages: []*aisdk.Message{
			{Role: aisdk.RoleSystem, Content: TranslatePrompt(targetLanguage)},
			{Role: aisdk.RoleUser, Content: text},
		},
	})
	if err != nil {
		return fmt.Sprintf("Translation error: %v", err)
	}
	if len(response.Choices) == 0 {
		return "Translation error: no choices in response"
	}

	return response.Choices[0].Message.Content
}

// TranslateLatest translates the text of the most recent message in the
// conversation.
func TranslateLatest(ctx context.Context, model aisdk.ModelClient, conversation *aisdk.Conversation, targetLanguage string) string {
	last := conversation.LastMessage()
	if last == nil {
		return ""
	}
	return Translate(ctx, model, last.Content, targetLanguage)
}
