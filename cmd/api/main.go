package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/go-redis/redis/v8"

	"smart-daily-planner/config"
	"smart-daily-planner/config/postgre"
	"smart-daily-planner/config/redis"
	_ "smart-daily-planner/docs" // Swagger docs
	"smart-daily-planner/internal/httpserver"
	"smart-daily-planner/pkg/gcalendar"
	"smart-daily-planner/pkg/llmprovider"
	"smart-daily-planner/pkg/log"
	"smart-daily-planner/pkg/scope"
)

// @title       Smart Daily Planner API
// @description Task, fixed schedule and correction management with LLM-assisted daily planning.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
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
		FilePath:     cfg.Logger.FilePath,
		MaxSizeMB:    cfg.Logger.MaxSizeMB,
		MaxBackups:   cfg.Logger.MaxBackups,
		MaxAgeDays:   cfg.Logger.MaxAgeDays,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Daily Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Postgres: ", err)
		return
	}
	defer func() {
		if err := postgre.Disconnect(db); err != nil {
			logger.Warnf(ctx, "Failed to close Postgres: %v", err)
		}
	}()
	logger.Infof(ctx, "Postgres connected: %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 4. Redis (optional session store)
	var redisClient *goredis.Client
	if cfg.Redis.Enabled {
		redisClient, err = redis.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Error(ctx, "Failed to connect to Redis: ", err)
			return
		}
		defer func() { _ = redisClient.Close() }()
		logger.Infof(ctx, "Redis connected: %s", cfg.Redis.Addr)
	}

	// 5. LLM providers
	llmManager := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, logger)

	// 6. Identity
	jwtManager, err := scope.New(cfg.JWT.SecretKey, cfg.JWT.Issuer, cfg.JWT.TTL)
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}

	// 7. Google Calendar (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.Enabled && cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		PostgresDB:     db,
		Redis:          redisClient,
		LLM:            llmManager,
		JWTManager:     jwtManager,
		Calendar:       calendarClient,
		CORS:           cfg.CORS,
		RateLimit:      cfg.RateLimit,
		Planner:        cfg.Planner,
		GoogleCalendar: cfg.GoogleCalendar,
		DevLogin:       cfg.Auth.DevLoginEnabled,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
