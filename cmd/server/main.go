package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mcoot/wordscramble/internal/api"
	"github.com/mcoot/wordscramble/internal/config"
	"github.com/mcoot/wordscramble/internal/factory"
	"github.com/mcoot/wordscramble/internal/model"
	"github.com/mcoot/wordscramble/internal/services/dictionary"
	redisstorage "github.com/mcoot/wordscramble/internal/storage/redis"
)

func main() {
	// Load configuration from defaults, optional file and WORDSCRAMBLE_* environment
	cfg, err := config.Load(os.Getenv("WORDSCRAMBLE_CONFIG"))
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up logging with JSON output
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	app, err := factory.New(factoryConfig(cfg, logger))
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = app.Close() }()

	// Word lists must be present before any session can start
	if err := app.LoadWordLists(context.Background(), cfg.CorpusPath, cfg.Dictionary.Path); err != nil {
		if errors.Is(err, model.ErrConfiguration) {
			logger.Error("word lists not available", slog.String("error", err.Error()))
		} else {
			logger.Error("failed to load word lists", slog.String("error", err.Error()))
		}
		os.Exit(1)
	}

	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		GameController:    app.GameController,
		DictionaryService: app.DictionaryService,
		WordSource:        app.WordSource,
	})

	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Host
	serverConfig.Port = cfg.Port
	server := api.NewServer(apiRouter, serverConfig, logger)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("server starting", slog.String("addr", server.Addr()))

	if err := server.Run(ctx); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func factoryConfig(cfg *config.Config, logger *slog.Logger) factory.Config {
	fc := factory.Config{
		Language:           cfg.Dictionary.Language,
		DictionaryCacheTTL: cfg.Dictionary.CacheTTL,
		Logger:             logger,
		StorageType:        cfg.Storage.Type,
	}

	if cfg.Dictionary.URL != "" {
		fc.RemoteDictionary = &dictionary.RemoteConfig{
			BaseURL:           cfg.Dictionary.URL,
			Timeout:           cfg.Dictionary.Timeout,
			RequestsPerSecond: cfg.Dictionary.RateLimit,
			Burst:             int(max(1, cfg.Dictionary.RateLimit)),
		}
	}

	if cfg.Storage.Type == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.Storage.RedisURL
		redisCfg.SessionTTL = cfg.Storage.SessionTTL
		fc.RedisConfig = &redisCfg
	}

	return fc
}
