package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/pitwall/pitgames/internal/dependencies/clock"
	"github.com/pitwall/pitgames/internal/dependencies/random"
	"github.com/pitwall/pitgames/internal/entity"
	"github.com/pitwall/pitgames/internal/entity/fsstore"
	"github.com/pitwall/pitgames/internal/services/guesswho"
	"github.com/pitwall/pitgames/internal/services/puzzle"
	"github.com/pitwall/pitgames/internal/storage"
	"github.com/pitwall/pitgames/internal/storage/memory"
	redisstorage "github.com/pitwall/pitgames/internal/storage/redis"
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

	// Entity store
	EntityStore entity.Store

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	PuzzleService   *puzzle.Service
	GuessWhoService *guesswho.Service
}

// Config holds configuration for the application factory
type Config struct {
	// DataDir is the entity store root directory (drivers, championships,
	// pictures)
	DataDir string
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

	if cfg.DataDir == "" {
		return nil, errors.New("DataDir is required")
	}
	entities := fsstore.New(cfg.DataDir, logger)

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, entities, clk, rnd, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	entities entity.Store,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
) *App {
	puzzleService := puzzle.New(store, entities, clk, logger)
	guessWhoService := guesswho.New(store, entities, clk, rnd, logger)

	return &App{
		Storage:         store,
		EntityStore:     entities,
		Clock:           clk,
		Random:          rnd,
		PuzzleService:   puzzleService,
		GuessWhoService: guessWhoService,
	}
}
