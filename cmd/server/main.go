package main

import (
	"github.com/sirupsen/logrus"

	"github.com/katakuxiko/abogado-virtual/internal/api"
	"github.com/katakuxiko/abogado-virtual/internal/config"
	"github.com/katakuxiko/abogado-virtual/internal/logging"
	"github.com/katakuxiko/abogado-virtual/internal/service"
)

func main() {
	// config
	cfg, err := config.Load()
	if err != nil {
		logging.GetLogger().Fatalf("config: %v", err)
	}
	log := logging.InitLogger(cfg.LogLevel, cfg.LogFormat)

	if cfg.GeminiAPIKey == "" {
		log.Warn("GEMINI_API_KEY is not set; every consultation will fail until it is")
	}

	// services
	var connect service.Connector
	switch cfg.Provider {
	case config.ProviderOpenAI:
		connect = service.NewOpenAIConnector(cfg.OpenAIBaseURL)
	case config.ProviderGemini:
		connect = service.NewGeminiConnector(service.GeminiOptions{})
	default:
		log.Fatalf("unknown LLM_PROVIDER %q (expected %q or %q)", cfg.Provider, config.ProviderGemini, config.ProviderOpenAI)
	}
	assistant := service.NewLegalAssistant(cfg.GeminiAPIKey, cfg.ChatModel, connect)

	// api
	app := api.NewApp(api.NewHandler(assistant, cfg.RequestTimeout))

	log.WithFields(logrus.Fields{
		"addr":     cfg.ServerAddr,
		"provider": cfg.Provider,
		"model":    cfg.ChatModel,
	}).Info("server started")
	if err := app.Listen(cfg.ServerAddr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
