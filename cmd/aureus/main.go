package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

// CLI represents the main CLI structure
type CLI struct {
	Config      string `help:"Path to config file (JSON)"`
	EnvFile     string `help:"Path to .env file" default:".env"`
	APIKey      string `env:"OPENAI_API_KEY" help:"OpenAI-compatible API key"`
	PriceAPIKey string `env:"METALPRICE_API_KEY" help:"Metal price API key"`
	Model       string `help:"Chat model override"`
	Language    string `help:"Target language for the translated reply"`
	Investment  string `help:"Investment type to advise on" enum:",gold,crypto,stocks" default:""`
	LogLevel    string `default:"warn" help:"Log level"`

	Ask   AskCmd   `cmd:"" help:"Ask a single question"`
	Chat  ChatCmd  `cmd:"" help:"Interactive chat session"`
	Price PriceCmd `cmd:"" help:"Show the current gold price for a country"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("aureus"),
		kong.Description("Gold investment advisor backed by live prices and a rules-based risk engine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	err := ctx.Run(&cli)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
