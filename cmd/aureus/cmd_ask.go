package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/tdnguyen/aureus/src/advisor"
)

// AskCmd sends a single question and prints the reply with its translation.
type AskCmd struct {
	Text  []string `arg:"" optional:"" help:"The question to ask"`
	Audio string   `short:"a" help:"Transcribe this audio file and use it as the question"`
}

func (a *AskCmd) Run(cli *CLI) error {
	application, err := buildApp(cli)
	if err != nil {
		return err
	}
	defer application.Close()

	ctx := context.Background()

	input := strings.Join(a.Text, " ")
	if a.Audio != "" {
		input = advisor.Transcribe(ctx, afero.NewOsFs(), application.client,
			application.cfg.Models.Transcription, a.Audio)
		fmt.Printf("Transcribed: %s\n", input)
	}

	result, err := application.executor.Turn(ctx, application.turnRequest(nil, input))
	if err != nil {
		return err
	}

	if result.Reply == "" {
		return nil
	}

	fmt.Println(result.Reply)
	if result.Translation != "" {
		fmt.Println()
		fmt.Printf("[%s] %s\n", application.cfg.Chat.TargetLanguage, result.Translation)
	}
	return nil
}
