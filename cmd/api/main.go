package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"smart-task-dashboard/config"
	_ "smart-task-dashboard/docs" // Swagger docs
	"smart-task-dashboard/internal/analyzer"
	"smart-task-dashboard/internal/httpserver"
	"smart-task-dashboard/internal/middleware"
	tgDelivery "smart-task-dashboard/internal/task/delivery/telegram"
	"smart-task-dashboard/internal/task/repository"
	taskCache "smart-task-dashboard/internal/task/repository/cache"
	memoryRepo "smart-task-dashboard/internal/task/repository/memory"
	memosRepo "smart-task-dashboard/internal/task/repository/memos"
	postgreRepo "smart-task-dashboard/internal/task/repository/postgre"
	"smart-task-dashboard/internal/task/usecase"
	"smart-task-dashboard/pkg/datemath"
	"smart-task-dashboard/pkg/gcalendar"
	"smart-task-dashboard/pkg/log"
	"smart-task-dashboard/pkg/telegram"
)

// @title       Smart Task Dashboard API
// @description Task analysis, storage and productivity insights for the smart task dashboard.
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

	ctx := context.Background()
	logger.Info(ctx, "Starting Smart Task Dashboard...")
	logger.Infof(ctx, "Environment: %s, store: %s", cfg.Environment.Name, cfg.Store.Driver)

	// 3. Clock and analyzer
	parser, err := datemath.NewParser(cfg.Analyzer.Timezone)
	if err != nil {
		logger.Errorf(ctx, "Invalid timezone %q: %v", cfg.Analyzer.Timezone, err)
		return
	}
	clock := datemath.NewSystemClock(parser.Location())
	taskAnalyzer := analyzer.New(analyzer.WithParser(parser))

	// 4. Repository
	taskRepo, storeCheck, closeRepo, err := newRepository(ctx, cfg, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize %s store: %v", cfg.Store.Driver, err)
		return
	}
	defer closeRepo()

	opts := []usecase.Option{}
	readiness := []httpserver.ReadinessCheck{storeCheck}

	// 5. Optional collaborators
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			logger.Warnf(ctx, "Redis not reachable at %s, list cache will miss until it is: %v", cfg.Redis.Addr, err)
		} else {
			logger.Infof(ctx, "Redis list cache enabled at %s", cfg.Redis.Addr)
		}
		cancel()
		opts = append(opts, usecase.WithCache(taskCache.New(rdb, cfg.Redis.TTL)))
		readiness = append(readiness, httpserver.ReadinessCheck{
			Name:  "cache",
			Check: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})
	}

	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			logger.Warn(ctx, "→ Run `taskctl gcal-auth` to generate token.json")
		} else {
			logger.Info(ctx, "Google Calendar initialized")
			opts = append(opts, usecase.WithCalendar(calendarClient, cfg.GoogleCalendar.CalendarID))
		}
	}

	var bot *telegram.Bot
	if cfg.Telegram.BotToken != "" {
		bot = telegram.NewBot(cfg.Telegram.BotToken)
		if cfg.Telegram.ChatID != 0 {
			opts = append(opts, usecase.WithNotifier(telegram.NewNotifier(bot, cfg.Telegram.ChatID)))
			logger.Infof(ctx, "Telegram notifications enabled for chat %d", cfg.Telegram.ChatID)
		}
	}

	// 6. Task UseCase
	taskUC := usecase.New(logger, taskRepo, taskAnalyzer, clock, opts...)

	// 7. Telegram delivery
	var telegramHandler tgDelivery.Handler
	if bot != nil {
		telegramHandler = tgDelivery.New(logger, taskUC, bot)

		if cfg.Telegram.WebhookURL != "" {
			if whErr := bot.SetWebhook(ctx, cfg.Telegram.WebhookURL, cfg.Telegram.WebhookSecret); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Info(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is not set")
	}

	// 8. HTTP Server
	telegramGuard := middleware.WebhookConfig{
		Secret:     cfg.Telegram.WebhookSecret,
		AllowedIPs: cfg.Telegram.AllowedIPs,
	}
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:             logger,
		Port:               cfg.HTTPServer.Port,
		Mode:               cfg.HTTPServer.Mode,
		Environment:        cfg.Environment.Name,
		CORSAllowedOrigins: cfg.CORS.AllowedOrigins,
		ReadinessChecks:    readiness,
		TaskUseCase:        taskUC,
		TelegramHandler:    telegramHandler,
		TelegramGuard:      telegramGuard,
		Middleware:         middleware.New(logger, cfg.RateLimit.RequestsPerMin),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// newRepository builds the task store selected by store.driver, a readiness check for it,
// and a function that releases it.
func newRepository(ctx context.Context, cfg *config.Config, l log.Logger) (repository.Repository, httpserver.ReadinessCheck, func(), error) {
	check := httpserver.ReadinessCheck{Name: "store"}

	switch cfg.Store.Driver {
	case config.StorePostgres:
		db, err := postgreRepo.Open(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, check, nil, err
		}
		repo := postgreRepo.New(db, l)
		if err := repo.Migrate(ctx); err != nil {
			db.Close()
			return nil, check, nil, err
		}
		check.Check = db.PingContext
		return repo, check, closeDB(db), nil

	case config.StoreMemos:
		client := memosRepo.NewClient(cfg.Memos.URL, cfg.Memos.AccessToken)
		check.Check = client.Ping
		return memosRepo.New(client, cfg.Memos.ExternalURL, l), check, func() {}, nil

	default:
		l.Warn(ctx, "Using the in-memory store: tasks are lost on restart")
		check.Check = func(context.Context) error { return nil }
		return memoryRepo.New(), check, func() {}, nil
	}
}

func closeDB(db *sql.DB) func() {
	return func() { db.Close() }
}
