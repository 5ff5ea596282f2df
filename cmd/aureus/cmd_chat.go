package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tdnguyen/aureus/src/aisdk"
)

// ChatCmd runs an interactive session on stdin.
type ChatCmd struct{}

func (c *ChatCmd) Run(cli *CLI) error {
	application, err := buildApp(cli)
	if err != nil {
		return err
	}
	defer application.Close()

	fmt.Printf("aureus - %s investment advisor. Type 'exit' to quit.\n",
		strings.ToLower(application.cfg.Chat.InvestmentType))

	ctx := context.Background()
	var conversation *aisdk.Conversation

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "exit" || input == "quit" {
			break
		}
		// Blank lines are ignored rather than sent to the model.
		if input == "" {
			continue
		}

		result, err := application.executor.Turn(ctx, application.turnRequest(conversation, input))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		conversation = result.Conversation

		fmt.Println(result.Reply)
		if result.Translation != "" {
			fmt.Printf("[%s] %s\n", application.cfg.Chat.TargetLanguage, result.Translation)
		}
	}

	return scanner.Err()
}
