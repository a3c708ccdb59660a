package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tangbing-xm/tweet-feeds/internal/config"
	"github.com/tangbing-xm/tweet-feeds/internal/database"
	"github.com/tangbing-xm/tweet-feeds/internal/handler"
	"github.com/tangbing-xm/tweet-feeds/internal/metrics"
	"github.com/tangbing-xm/tweet-feeds/internal/publisher"
	"github.com/tangbing-xm/tweet-feeds/internal/scheduler"
	"github.com/tangbing-xm/tweet-feeds/internal/service"
	"github.com/tangbing-xm/tweet-feeds/internal/source/twitterapi"
	"github.com/tangbing-xm/tweet-feeds/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	if err := database.RunMigrations(cfg.Database.URL()); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("migrations applied")

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database")

	// The publisher is optional; without a broker URL ingestion simply
	// stores tweets and emits nothing.
	var pub service.Publisher
	if cfg.RabbitMQ.URL != "" {
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
		pub = rabbitMQ
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(registry)

	tweetStore := postgres.NewTweetStore(db)
	accountStore := postgres.NewAccountStore(db)
	vendorStore := postgres.NewVendorStore(db)
	dailyIndexStore := postgres.NewDailyIndexStore(db)

	source := twitterapi.New(twitterapi.Config{
		BaseURL: cfg.TwitterAPI.BaseURL,
		APIKey:  cfg.TwitterAPI.APIKey,
		Timeout: cfg.TwitterAPI.Timeout,
	}, logger)

	ingestService := service.NewIngestService(
		source,
		tweetStore,
		accountStore,
		dailyIndexStore,
		pub,
		collector,
		logger,
		cfg.Ingest,
	)
	feedService := service.NewFeedService(tweetStore, dailyIndexStore, vendorStore, logger)

	router := handler.NewRouter(handler.RouterConfig{
		Feed:       feedService,
		Ingester:   ingestService,
		DB:         db,
		CronSecret: cfg.Server.CronSecret,
		APIKeySet:  cfg.TwitterAPI.APIKey != "",
		Metrics:    collector,
		MetricsH:   promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		Logger:     logger,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if cfg.Sync.Enabled {
		sched := scheduler.NewScheduler(ingestService, cfg.Sync.Interval, cfg.Sync.RunTimeout, logger)
		go func() {
			if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("scheduler error", "error", err)
			}
		}()
	}

	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", "error", err)
		}
	}()

	logger.Info("starting server",
		"addr", cfg.Server.Addr,
		"scheduler", cfg.Sync.Enabled,
	)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "error", err)
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
