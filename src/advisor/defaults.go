// Package advisor holds the investment-advice domain: prompts, the advice
// generator, the fixed toolbox, and the translation and speech-to-text
// wrappers around the model client.
package advisor

// Defaults mirrored by the CLI flags.
const (
	DefaultInvestmentType = "Gold"
	DefaultTargetLanguage = "Vietnamese"
)
