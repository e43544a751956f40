package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/wordscramble/internal/dependencies/clock"
	"github.com/mcoot/wordscramble/internal/dependencies/random"
	"github.com/mcoot/wordscramble/internal/services/dictionary"
	"github.com/mcoot/wordscramble/internal/services/game"
	"github.com/mcoot/wordscramble/internal/services/validation"
	"github.com/mcoot/wordscramble/internal/services/wordsource"
	"github.com/mcoot/wordscramble/internal/storage"
	"github.com/mcoot/wordscramble/internal/storage/memory"
	redisstorage "github.com/mcoot/wordscramble/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	DictionaryService *dictionary.Service
	Oracle            dictionary.Oracle
	WordSource        *wordsource.Service
	Validator         *validation.Validator
	GameController    *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Language is the dictionary language (optional, defaults to "en")
	Language string
	// RemoteDictionary switches word checks to an HTTP dictionary (optional)
	// If nil, the in-memory DictionaryService answers lookups
	RemoteDictionary *dictionary.RemoteConfig
	// DictionaryCacheTTL is how long remote answers are remembered (optional)
	DictionaryCacheTTL time.Duration
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	dictService := dictionary.New(store, cfg.Language, logger)

	var oracle dictionary.Oracle = dictService
	if cfg.RemoteDictionary != nil {
		ttl := cfg.DictionaryCacheTTL
		if ttl <= 0 {
			ttl = time.Hour
		}
		remote := dictionary.NewRemoteOracle(*cfg.RemoteDictionary, logger)
		oracle = dictionary.NewCachedOracle(remote, ttl, 2*ttl)
	}

	return newWithDependencies(store, dictService, oracle, cfg.Language, clock.New(), random.New(), logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	dictService *dictionary.Service,
	oracle dictionary.Oracle,
	language string,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
) *App {
	wordSource := wordsource.New(store, rnd, logger)
	validator := validation.New(oracle, language)
	gameController := game.NewController(store, wordSource, validator, clk, rnd, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		DictionaryService: dictService,
		Oracle:            oracle,
		WordSource:        wordSource,
		Validator:         validator,
		GameController:    gameController,
	}
}

// LoadWordLists loads the dictionary and the root word corpus.
// A missing corpus is returned as a *wordsource.ConfigurationError; the
// dictionary file is skipped when a remote dictionary is in use.
func (a *App) LoadWordLists(ctx context.Context, corpusPath, dictionaryPath string) error {
	if err := a.WordSource.LoadFromFile(ctx, corpusPath); err != nil {
		return err
	}
	if _, local := a.Oracle.(*dictionary.Service); !local || dictionaryPath == "" {
		return nil
	}
	return a.DictionaryService.LoadFromFile(ctx, dictionaryPath)
}

// Close releases storage connections
func (a *App) Close() error {
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
