package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"reachsync/internal/config"
	"reachsync/internal/publisher"
	"reachsync/internal/registry"
	"reachsync/internal/scheduler"
	"reachsync/internal/service"
	"reachsync/internal/source/instagram"
	"reachsync/internal/source/youtube"
	"reachsync/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Initialize RabbitMQ publisher
	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	// Initialize stores
	assignmentStore := postgres.NewAssignmentStore(db)
	metricsStore := postgres.NewMetricsStore(db, logger)
	txManager := postgres.NewTransactionManager(db)

	linkRegistry := registry.NewRegistry(assignmentStore, txManager, logger)

	// Initialize sources
	youtubeSource := youtube.New(youtube.Config{
		BaseURL:        cfg.Sources.YouTube.BaseURL,
		APIKey:         cfg.Sources.YouTube.APIKey,
		Timeout:        cfg.Sources.YouTube.Timeout,
		MaxAttempts:    cfg.Sources.YouTube.Retry.MaxAttempts,
		InitialBackoff: cfg.Sources.YouTube.Retry.InitialBackoff,
		MaxBackoff:     cfg.Sources.YouTube.Retry.MaxBackoff,
	}, logger)

	instagramSource := instagram.New(instagram.Config{
		BaseURL: cfg.Sources.Instagram.BaseURL,
		Timeout: cfg.Sources.Instagram.Timeout,
	}, logger)

	syncService := service.NewSyncService(
		linkRegistry,
		metricsStore,
		[]service.BatchSource{youtubeSource},
		[]service.SingleSource{instagramSource},
		rabbitMQ,
		logger,
		cfg.Sync,
	)

	sched := scheduler.NewScheduler(syncService, assignmentStore, cfg.Sync.Interval, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting reachsync",
		"interval", cfg.Sync.Interval,
		"item_delay", cfg.Sync.ItemDelay,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
