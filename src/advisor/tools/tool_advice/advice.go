package tool_advice

import (
	"context"
	"fmt"

	"github.com/tdnguyen/aureus/src/advisor"
	"github.com/tdnguyen/aureus/src/agent"
	"github.com/tdnguyen/aureus/src/aisdk"
)

// Tool name constant
const Name = "generate_gold_investment_advice"

const advicePrompt = `Generate investment advice for gold based on current price, currency, country, and chat history.`

// GenerateAdviceInput represents the parameters for generate_gold_investment_advice
type GenerateAdviceInput struct {
	Price    float64                `json:"price" required:"true" description:"The current price of gold."`
	Currency string                 `json:"currency" required:"true" description:"The currency in which the gold price is denominated."`
	Country  string                 `json:"country" required:"true" description:"The country for which the investment advice is sought."`
	History  []advisor.HistoryEntry `json:"history,omitempty" description:"The chat history leading up to this request."`
}

// GenerateAdviceOutput represents the response from generate_gold_investment_advice
type GenerateAdviceOutput struct {
	Advice string `json:"advice" description:"Natural-language investment advice"`
}

// Tool returns the generate_gold_investment_advice tool definition. The model
// client must be a plain chat client; advice requests are never tool-enabled.
func Tool(model aisdk.ModelClient) (agent.Tool, error) {
	return agent.NewGenericTool(Name, advicePrompt, makeAdviceHandler(model))
}

// makeAdviceHandler creates a type-safe handler for the advice tool
func makeAdviceHandler(model aisdk.ModelClient) func(ctx context.Context, input GenerateAdviceInput) (GenerateAdviceOutput, error) {
	return func(ctx context.Context, input GenerateAdviceInput) (GenerateAdviceOutput, error) {
		select {
		case <-ctx.Done():
			return GenerateAdviceOutput{}, fmt.Errorf("operation cancelled")
		default:
		}

		advice, err := advisor.GenerateAdvice(ctx, model, input.Price, input.Currency, input.Country, input.History)
		if err != nil {
			return GenerateAdviceOutput{}, err
		}

		return GenerateAdviceOutput{Advice: advice}, nil
	}
}
