package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tasknotes-nlp/config"
	_ "tasknotes-nlp/docs" // Swagger docs
	"tasknotes-nlp/internal/httpserver"
	"tasknotes-nlp/internal/language"
	"tasknotes-nlp/internal/middleware"
	tgDelivery "tasknotes-nlp/internal/parser/delivery/telegram"
	"tasknotes-nlp/internal/parser/usecase"
	"tasknotes-nlp/internal/vocabulary"
	"tasknotes-nlp/pkg/log"
	"tasknotes-nlp/pkg/telegram"
)

const webhookPath = "/webhook/telegram"

// @title       Task Notes NLP API
// @description Natural-language task parsing for English and Spanish: dates, priorities, statuses, tags, contexts, projects, recurrence and estimates.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Notes NLP...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Language packs
	opts, err := vocabulary.FromConfig(cfg.NLP)
	if err != nil {
		logger.Error(ctx, "Failed to load vocabulary: ", err)
		os.Exit(1)
	}
	registry, err := language.NewRegistry(cfg.NLP.Language, opts)
	if err != nil {
		logger.Error(ctx, "Failed to build language packs: ", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "Active language: %s", registry.Current())

	// 4. Parser
	parserUC, err := usecase.New(logger, cfg.NLP.Timezone)
	if err != nil {
		logger.Error(ctx, "Failed to initialize parser: ", err)
		os.Exit(1)
	}

	mw := middleware.New(logger, middleware.Config{
		RateLimitEnabled: cfg.RateLimit.Enabled,
		RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
	})

	// 5. Telegram (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, parserUC, registry, bot, tgDelivery.Config{
			DefaultToScheduled: cfg.NLP.DefaultToScheduled,
		})
		registerWebhook(ctx, logger, bot, cfg.Telegram)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:             logger,
		Port:               cfg.HTTPServer.Port,
		Mode:               cfg.HTTPServer.Mode,
		Environment:        cfg.Environment.Name,
		ParserUC:           parserUC,
		Registry:           registry,
		Middleware:         mw,
		DefaultToScheduled: cfg.NLP.DefaultToScheduled,
		PackCacheSize:      cfg.PackCache.Size,
		TelegramHandler:    telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// registerWebhook points Telegram at this service, auto-detecting an ngrok tunnel
// when no URL is configured.
func registerWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" && cfg.NgrokAPI != "" {
		publicURL, err := newTunnelProbe().publicURL(ctx, cfg.NgrokAPI)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		webhookURL = publicURL + webhookPath
		logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
	}
	if webhookURL == "" {
		return
	}

	if err := bot.SetWebhook(ctx, webhookURL); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}
