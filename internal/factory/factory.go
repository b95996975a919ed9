package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/blockgame-go/internal/dependencies/clock"
	"github.com/mcoot/blockgame-go/internal/dependencies/random"
	"github.com/mcoot/blockgame-go/internal/model"
	"github.com/mcoot/blockgame-go/internal/services/bot"
	"github.com/mcoot/blockgame-go/internal/services/engine"
	"github.com/mcoot/blockgame-go/internal/services/leaderboard"
	"github.com/mcoot/blockgame-go/internal/services/scheduler"
	"github.com/mcoot/blockgame-go/internal/services/scoring"
	"github.com/mcoot/blockgame-go/internal/storage"
	"github.com/mcoot/blockgame-go/internal/storage/memory"
	redisstorage "github.com/mcoot/blockgame-go/internal/storage/redis"
	"github.com/mcoot/blockgame-go/internal/tuning"
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
	Logger *slog.Logger

	// Services
	ScoringService     *scoring.Service
	LeaderboardService *leaderboard.Service
	BotService         *bot.Service

	// Settings used for every new game
	Settings tuning.Settings
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Settings overrides the game tuning (optional)
	// If nil, tuning.Defaults() is used
	Settings *tuning.Settings
	// Seed fixes the shape sequence (optional)
	// If zero, a random seed is drawn
	Seed uint64
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

	settings := tuning.Defaults()
	if cfg.Settings != nil {
		settings = *cfg.Settings
	}

	// Create external dependencies
	clk := clock.New()
	var rnd random.Random
	if cfg.Seed != 0 {
		rnd = random.NewSeeded(cfg.Seed)
	} else {
		rnd = random.New()
	}

	return newWithDependencies(store, clk, rnd, settings, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, settings tuning.Settings, logger *slog.Logger) (*App, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	scoringService, err := scoring.New(settings.Scoring)
	if err != nil {
		return nil, err
	}
	leaderboardService := leaderboard.New(store, clk, rnd, logger)
	botService := bot.NewService(bot.DefaultStrategies(rnd), logger)

	return &App{
		Storage:            store,
		Clock:              clk,
		Random:             rnd,
		Logger:             logger,
		ScoringService:     scoringService,
		LeaderboardService: leaderboardService,
		BotService:         botService,
		Settings:           settings,
	}, nil
}

// Game is an engine paired with the runner that drives it
type Game struct {
	Engine *engine.Engine
	Runner *scheduler.Runner
}

// NewGame wires a fresh engine and runner for one session in the given mode.
// Events go to sink, which may be nil.
func (a *App) NewGame(mode model.GameMode, sink engine.EventSink) (*Game, error) {
	cfg := a.Settings.Engine
	cfg.Mode = mode

	eng, err := engine.New(cfg, a.ScoringService, a.Clock, a.Random, sink, a.Logger)
	if err != nil {
		return nil, err
	}
	runner, err := scheduler.New(eng, a.Clock, a.Settings.Scheduler, a.Logger)
	if err != nil {
		return nil, err
	}
	return &Game{Engine: eng, Runner: runner}, nil
}
