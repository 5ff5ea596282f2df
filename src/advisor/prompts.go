package advisor

import (
	"fmt"
	"strings"
)

// Static prompt templates
const (
	chatPromptTemplate = `You are a professional financial investment advisor specializing in %[1]s investments. Provide concise and actionable advice based on current market data and risk assessments.
Here is the protocol to follow:
- if the user asks for the current price of %[1]s in a country, call the function get_gold_price(country).
- if the user asks for analysis, suggestions, investment advice, or recommendations, call the function generate_gold_investment_advice after obtaining the %[1]s price.
- If there is no %[1]s price in the history, please ask for it first by calling the get_gold_price function.
- Always base your advice on the latest price data.
- Keep your responses concise (2-3 sentences) and professional.
- Use the tools as needed to provide accurate information.
- If the user's query is unrelated to %[1]s investment, politely inform them that your expertise is limited to %[1]s investments only.`

	advicePromptTemplate = `As a professional gold investment advisor, provide specific investment advice based on these current market conditions:

MARKET DATA:
- Current gold price: %v %s
- Country/Market: %s
- Currency: %s

RISK ASSESSMENT TOOL OUTPUT:
- Risk Level: %s
- Technical Analysis: %s

Based on this risk assessment tool output, provide professional investment advice that:
1. Acknowledges the %s risk level
2. Provides specific timing recommendations
3. Considers currency-specific factors for %s
4. Offers actionable next steps

Keep your advice concise (2-3 sentences), professional, and specific to the %s risk scenario.`

	translatePromptTemplate = `You are a professional translator. Translate the given text to %[1]s.
Maintain the meaning and tone. Only return the %[1]s translation, nothing else.`
)

// ChatPrompt renders the system instruction for the orchestration loop.
func ChatPrompt(investmentType string) string {
	if investmentType == "" {
		investmentType = DefaultInvestmentType
	}
	return fmt.Sprintf(chatPromptTemplate, strings.ToLower(investmentType))
}

// InvestmentAdvicePrompt renders the system instruction for the advice
// generator, embedding the risk engine output as technical analysis context.
func InvestmentAdvicePrompt(riskLevel string, price float64, currency, country, fallbackAdvice string) string {
	return fmt.Sprintf(advicePromptTemplate,
		price, currency,
		country,
		currency,
		strings.ToUpper(riskLevel),
		fallbackAdvice,
		riskLevel,
		currency,
		riskLevel,
	)
}

// TranslatePrompt renders the system instruction for the translation call.
func TranslatePrompt(targetLanguage string) string {
	return fmt.Sprintf(translatePromptTemplate, targetLanguage)
}
