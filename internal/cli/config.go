package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mcoot/blockgame-go/internal/factory"
	"github.com/mcoot/blockgame-go/internal/model"
	redisstorage "github.com/mcoot/blockgame-go/internal/storage/redis"
	"github.com/mcoot/blockgame-go/internal/tuning"
)

// Config holds CLI configuration
type Config struct {
	ServerURL   string
	Player      string
	TuningFile  string
	StorageType string
	RedisURL    string
	LogFile     string
	Output      string
	Verbose     bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:   getEnvOrDefault("BLOCKGAME_SERVER", "http://localhost:8080"),
		Player:      getEnvOrDefault("BLOCKGAME_PLAYER", os.Getenv("USER")),
		TuningFile:  os.Getenv("BLOCKGAME_TUNING"),
		StorageType: getEnvOrDefault("STORAGE_TYPE", factory.StorageTypeMemory),
		RedisURL:    os.Getenv("REDIS_URL"),
		LogFile:     os.Getenv("BLOCKGAME_LOG_FILE"),
		Output:      "text",
		Verbose:     false,
	}
}

// LoadSettings returns the tuning file's settings, or the defaults when none is set
func (c *Config) LoadSettings() (tuning.Settings, error) {
	if c.TuningFile == "" {
		return tuning.Defaults(), nil
	}
	settings, err := tuning.Load(c.TuningFile)
	if err != nil {
		return tuning.Settings{}, fmt.Errorf("failed to load tuning file: %w", err)
	}
	return settings, nil
}

// FactoryConfig builds the application config for a local game
func (c *Config) FactoryConfig(logger *slog.Logger, seed uint64) (factory.Config, error) {
	settings, err := c.LoadSettings()
	if err != nil {
		return factory.Config{}, err
	}

	fc := factory.Config{
		Logger:      logger,
		StorageType: c.StorageType,
		Settings:    &settings,
		Seed:        seed,
	}
	if c.StorageType == factory.StorageTypeRedis {
		if c.RedisURL == "" {
			return factory.Config{}, fmt.Errorf("REDIS_URL required when STORAGE_TYPE=redis")
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		fc.RedisConfig = &redisCfg
	}
	return fc, nil
}

// Logger opens the log destination. The terminal belongs to the game, so
// without a log file everything is discarded. The returned closer is never nil.
func (c *Config) Logger() (*slog.Logger, io.Closer, error) {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	if c.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, f, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

var modeUsage = "Game mode: " + strings.Join(modeNames(), ", ")

func modeNames() []string {
	modes := model.ValidGameModes()
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = string(m)
	}
	return names
}
