package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdnguyen/aureus/src/advisor"
	"github.com/tdnguyen/aureus/src/advisor/tools"
	"github.com/tdnguyen/aureus/src/agent"
	"github.com/tdnguyen/aureus/src/aisdk"
	"github.com/tdnguyen/aureus/src/config"
	"github.com/tdnguyen/aureus/src/executor"
	"github.com/tdnguyen/aureus/src/goldprice"
	"github.com/tdnguyen/aureus/src/oaiclient"
	"github.com/tdnguyen/aureus/src/pricestore"
)

// app bundles the wired dependencies shared by all commands.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	model    *oaiclient.ModelClient
	client   *oaiclient.Client
	price    *goldprice.Service
	toolbox  *agent.DefaultToolbox
	executor *executor.Service

	store *pricestore.SQLiteStore
}

// turnRequest builds a TurnRequest against the app's wired dependencies.
// Passing a nil conversation starts a fresh one.
func (a *app) turnRequest(conversation *aisdk.Conversation, input string) *executor.TurnRequest {
	return &executor.TurnRequest{
		Conversation: conversation,
		Input:        input,
		ModelClient:  a.model,
		Toolbox:      a.toolbox,
	}
}

// Close releases resources held by the app.
func (a *app) Close() error {
	if a.store != nil {
		return a.store.Close()
	}
	return nil
}

// buildApp loads configuration, applies CLI overrides, and wires the model
// client, price service, toolbox, and turn executor together.
func buildApp(cli *CLI) (*app, error) {
	logger := createCLILogger(cli.LogLevel)

	loader := config.NewLoader(cli.Config, cli.EnvFile)
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	if cli.APIKey != "" {
		cfg.API.APIKey = cli.APIKey
	}
	if cli.PriceAPIKey != "" {
		cfg.Price.APIKey = cli.PriceAPIKey
	}
	if cli.Model != "" {
		cfg.Models.Chat = cli.Model
	}
	if cli.Language != "" {
		cfg.Chat.TargetLanguage = cli.Language
	}
	if cli.Investment != "" {
		cfg.Chat.InvestmentType = cli.Investment
	}

	client := oaiclient.NewClient(oaiclient.Config{
		APIKey:     cfg.API.APIKey,
		BaseURL:    cfg.API.BaseURL,
		RetryCount: cfg.API.MaxRetries,
		Timeout:    cfg.API.Timeout,
		Logger:     logger,
	})
	model := client.Model(cfg.Models.Chat)

	// The sqlite price table survives restarts; fall back to an in-memory
	// table when the state directory is unusable.
	var store pricestore.Store
	_ = os.MkdirAll(filepath.Dir(cfg.Price.CachePath), 0755)
	sqliteStore, err := pricestore.OpenSQLite(cfg.Price.CachePath)
	if err != nil {
		logger.Warn("price cache unavailable, using in-memory store",
			"path", cfg.Price.CachePath, "error", err)
		store = pricestore.NewMemoryStore()
		sqliteStore = nil
	} else {
		store = sqliteStore
	}

	price := goldprice.NewService(goldprice.Config{
		APIKey:  cfg.Price.APIKey,
		BaseURL: cfg.Price.BaseURL,
		Timeout: cfg.Price.Timeout,
		Store:   store,
		Logger:  logger,
	})

	toolbox, err := tools.BuildToolbox(price, model)
	if err != nil {
		return nil, err
	}
	toolbox.RegisterMiddleware(agent.LoggingMiddleware(logger))

	exec := executor.NewService(executor.ServiceConfig{
		SystemPrompt:   advisor.ChatPrompt(strings.ToLower(cfg.Chat.InvestmentType)),
		TargetLanguage: cfg.Chat.TargetLanguage,
		MaxTurns:       cfg.Chat.MaxTurns,
		Logger:         logger,
	})

	return &app{
		cfg:      cfg,
		logger:   logger,
		model:    model,
		client:   client,
		price:    price,
		toolbox:  toolbox,
		executor: exec,
		store:    sqliteStore,
	}, nil
}
