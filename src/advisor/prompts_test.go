package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChatPrompt(t *testing.T) {
	prompt := ChatPrompt("Gold")
	assert.Contains(t, prompt, "specializing in gold investments")
	assert.Contains(t, prompt, "get_gold_price")
	assert.Contains(t, prompt, "generate_gold_investment_advice")

	assert.Contains(t, ChatPrompt("Crypto"), "specializing in crypto investments")
	assert.Contains(t, ChatPrompt(""), "specializing in gold investments")
}

func TestInvestmentAdvicePrompt(t *testing.T) {
	prompt := InvestmentAdvicePrompt("moderate-high", 85000000, "VND", "vietnam", "Fair pricing at 8.5e+07 VND.")
	assert.Contains(t, prompt, "Current gold price: 8.5e+07 VND")
	assert.Contains(t, prompt, "Country/Market: vietnam")
	assert.Contains(t, prompt, "Risk Level: MODERATE-HIGH")
	assert.Contains(t, prompt, "Acknowledges the moderate-high risk level")
}

func TestTranslatePrompt(t *testing.T) {
	prompt := TranslatePrompt("Vietnamese")
	assert.Contains(t, prompt, "Translate the given text to Vietnamese")
	assert.Contains(t, prompt, "Only return the Vietnamese translation")
}
