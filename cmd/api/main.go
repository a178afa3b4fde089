package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"propfirm-assistant/config"
	_ "propfirm-assistant/docs" // Swagger docs
	tgDelivery "propfirm-assistant/internal/assistant/delivery/telegram"
	sqliteRepo "propfirm-assistant/internal/assistant/repository/sqlite"
	"propfirm-assistant/internal/assistant/usecase"
	"propfirm-assistant/internal/cache"
	"propfirm-assistant/internal/contextfilter"
	"propfirm-assistant/internal/httpserver"
	"propfirm-assistant/internal/intent"
	"propfirm-assistant/internal/middleware"
	"propfirm-assistant/pkg/llmprovider"
	"propfirm-assistant/pkg/log"
	"propfirm-assistant/pkg/telegram"
)

// @title       PropFirm Assistant API
// @description Telegram chatbot core for Spanish-speaking futures prop-firm traders: tiered response cache, intent classification, and context-filtered LLM answers.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
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

	logger.Info(ctx, "Starting PropFirm Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := openDatabase(cfg.Database.Path)
	if err != nil {
		logger.Errorf(ctx, "Failed to open database: %v", err)
		return
	}
	if err := sqliteRepo.InitSchema(ctx, db); err != nil {
		logger.Errorf(ctx, "Failed to migrate schema: %v", err)
		return
	}
	firmRepo := sqliteRepo.New(db, logger)

	// 4. Response cache
	cacheEngine, err := cache.New(logger, cache.Config{
		ExactTTL:        cfg.Cache.ExactTTL,
		SemanticTTL:     cfg.Cache.SemanticTTL,
		SimilarityFloor: cfg.Cache.SimilarityFloor,
		SweepInterval:   cfg.Cache.SweepInterval,
		MaxEntries:      cfg.Cache.MaxEntries,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to build cache: %v", err)
		return
	}
	cacheEngine.Start(ctx)

	// 5. Intent classifier and context filter
	classifier := intent.New(cfg.Intent.ConfidenceFloor)
	filter := contextfilter.New(logger, classifier, cfg.Context.MinTokens)

	// 6. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDurationOr(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDurationOr(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)
	logger.Infof(ctx, "LLM providers initialized: %d", len(providers))

	// 7. Assistant domain
	assistantUC := usecase.New(logger, firmRepo, cacheEngine, classifier, filter, manager)

	// 8. Telegram delivery (optional: API-only deployments skip it)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, assistantUC, telegramBot)

		// Register webhook: auto-detect ngrok or fallback to manual config
		webhookURL := cfg.Telegram.WebhookURL
		if webhookURL == "" {
			detected, ngrokErr := detectWebhookURL(ctx, "http://ngrok:4040")
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
			} else {
				webhookURL = detected
				logger.Infof(ctx, "Auto-detected ngrok webhook URL: %s", webhookURL)
			}
		}

		if webhookURL != "" {
			if whErr := telegramBot.SetWebhook(webhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "TELEGRAM_BOT_TOKEN missing, Telegram delivery disabled")
	}

	// 9. HTTP Server
	mw := middleware.New(logger, middleware.Config{
		AdminToken:      cfg.API.AdminToken,
		RateLimitPerMin: cfg.API.RateLimitPerMin,
	})

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		AssistantUC:     assistantUC,
		TelegramHandler: telegramHandler,
		Middleware:      mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// openDatabase opens the SQLite file with WAL mode and foreign keys enabled.
func openDatabase(path string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_foreign_keys=on", path)
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
}

func parseDurationOr(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
