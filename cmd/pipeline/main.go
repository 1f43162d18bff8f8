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

	"newsintel/internal/config"
	"newsintel/internal/oracle"
	"newsintel/internal/publisher"
	"newsintel/internal/scheduler"
	"newsintel/internal/service"
	"newsintel/internal/source/rss"
	"newsintel/internal/storage/postgres"
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

	rabbitMQ, err := publisher.NewRabbitMQ(cfg.RabbitMQ, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	articleStore := postgres.NewArticleStore(db)
	vocabStore := postgres.NewVocabStore(db)
	insightStore := postgres.NewInsightStore(db)
	trendStore := postgres.NewTrendStore(db)
	digestStore := postgres.NewDigestStore(db)
	txManager := postgres.NewTransactionManager(db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := vocabStore.Seed(ctx, cfg.Vocab.Themes, cfg.Vocab.Sectors); err != nil {
		logger.Error("failed to seed vocabulary", "error", err)
		os.Exit(1)
	}

	oracleClient, err := oracle.New(cfg.Oracle, logger)
	if err != nil {
		logger.Error("failed to initialize oracle client", "error", err)
		os.Exit(1)
	}

	rssSource := rss.New(cfg.Source, logger)

	enricher := service.NewEnricher(oracleClient, cfg.Pipeline, logger)
	trendEngine := service.NewTrendEngine(trendStore, articleStore, vocabStore, cfg.Pipeline, logger)
	synthesizer := service.NewSynthesizer(oracleClient, articleStore, insightStore, cfg.Pipeline, logger)
	composer := service.NewComposer(oracleClient, articleStore, insightStore, trendStore, digestStore, rabbitMQ, logger)

	pipeline := service.NewPipelineService(service.PipelineDeps{
		Source:      rssSource,
		Oracle:      oracleClient,
		Articles:    articleStore,
		Vocab:       vocabStore,
		Insights:    insightStore,
		Trends:      trendStore,
		TxManager:   txManager,
		Publisher:   rabbitMQ,
		Enricher:    enricher,
		TrendEngine: trendEngine,
		Synthesizer: synthesizer,
		Config:      cfg.Pipeline,
		Logger:      logger,
	})

	sched := scheduler.NewScheduler(pipeline, composer, cfg.Schedule, logger)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting content pipeline",
		"source", rssSource.Name(),
		"feeds", len(cfg.Source.Feeds),
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
