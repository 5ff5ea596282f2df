package tool_getprice

import (
	"context"
	"fmt"

	"github.com/tdnguyen/aureus/src/agent"
	"github.com/tdnguyen/aureus/src/goldprice"
)

// Tool name constant
const Name = "get_gold_price"

const getPricePrompt = `Get the current gold price for a specified country. The price is quoted per troy ounce in the country's currency and falls back to the last known good price when live data is unavailable.`

// PriceLookup is the subset of the price service the tool needs.
type PriceLookup interface {
	Lookup(ctx context.Context, country string) goldprice.Quote
}

// GetGoldPriceInput represents the parameters for get_gold_price
type GetGoldPriceInput struct {
	Country string `json:"country" required:"true" description:"The name of the country (e.g., USA, UK, Japan, Vietnam)."`
}

// GetGoldPriceOutput represents the response from get_gold_price
type GetGoldPriceOutput struct {
	Currency  string  `json:"currency" description:"Currency the price is denominated in"`
	Price     float64 `json:"price" description:"Gold price per troy ounce"`
	Country   string  `json:"country" description:"The country that was asked about"`
	Timestamp string  `json:"timestamp" description:"RFC3339 time of the lookup attempt"`
	Source    string  `json:"source" description:"Whether the price is live or cached"`
}

// Tool returns the get_gold_price tool definition
func Tool(lookup PriceLookup) (agent.Tool, error) {
	return agent.NewGenericTool(Name, getPricePrompt, makeGetPriceHandler(lookup))
}

// makeGetPriceHandler creates a type-safe handler for the get_gold_price tool
func makeGetPriceHandler(lookup PriceLookup) func(ctx context.Context, input GetGoldPriceInput) (GetGoldPriceOutput, error) {
	return func(ctx context.Context, input GetGoldPriceInput) (GetGoldPriceOutput, error) {
		select {
		case <-ctx.Done():
			return GetGoldPriceOutput{}, fmt.Errorf("operation cancelled")
		default:
		}

		// Lookup never fails; degraded results arrive with Source "cached".
		quote := lookup.Lookup(ctx, input.Country)

		return GetGoldPriceOutput{
			Currency:  quote.Currency,
			Price:     quote.Price,
			Country:   quote.Country,
			Timestamp: quote.Timestamp,
			Source:    string(quote.Source),
		}, nil
	}
}
