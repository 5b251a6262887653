package main

import (
	"context"
	"fmt"

	"github.com/gestoria-mays/enrique/internal/adapter"
	"github.com/gestoria-mays/enrique/internal/client"
	"github.com/gestoria-mays/enrique/internal/config"
	"github.com/gestoria-mays/enrique/internal/logger"
	"github.com/gestoria-mays/enrique/internal/service"
	"github.com/gestoria-mays/enrique/internal/store"
	"github.com/gestoria-mays/enrique/internal/tui"
	"github.com/gestoria-mays/enrique/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewTUILogger("enrique")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create storages")
	}
	defer func() {
		if closeErr := storages.DocumentRegistry.Close(); closeErr != nil {
			log.Err(closeErr).Msg("close document registry")
		}
	}()

	retrievalClient := adapter.NewRagieClient(adapter.RagieClientConfig{
		BaseURL:    cfg.Adapter.RagieBaseURL,
		APIKey:     cfg.Secrets.RagieAPIKey,
		Timeout:    cfg.Adapter.RequestTimeout,
		RetryCount: cfg.Adapter.RetryCount,
	})

	chatClient := adapter.NewAnthropicClient(adapter.AnthropicClientConfig{
		BaseURL:     cfg.Adapter.AnthropicBaseURL,
		APIKey:      cfg.Secrets.AnthropicAPIKey,
		Model:       cfg.Chat.Model,
		MaxTokens:   cfg.Chat.MaxTokens,
		Temperature: cfg.Chat.Temperature,
		Timeout:     cfg.Adapter.RequestTimeout,
		RetryCount:  cfg.Adapter.RetryCount,
	})

	services := service.NewServices(storages, retrievalClient, chatClient, cfg.Secrets.AppPassword, log)

	ui, err := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("app run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
