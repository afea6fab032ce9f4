package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr     string
	LogLevel     slog.Level
	MaxReelItems int
	RemoveWinner bool
	ItemDuration time.Duration
	Roster       string
}

// Load reads configuration from the environment, with an optional
// .env file overlay for local development.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	c := Config{
		HTTPAddr:     envOr("HTTP_ADDR", ":8080"),
		MaxReelItems: 30,
		RemoveWinner: true,
		ItemDuration: 100 * time.Millisecond,
		Roster:       os.Getenv("ROSTER"),
	}

	if v := os.Getenv("MAX_REEL_ITEMS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid MAX_REEL_ITEMS %q: %w", v, err)
		}
		if n < 1 {
			return Config{}, fmt.Errorf("MAX_REEL_ITEMS must be at least 1, got %d", n)
		}
		c.MaxReelItems = n
	}

	if v := os.Getenv("REMOVE_WINNER"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid REMOVE_WINNER %q: %w", v, err)
		}
		c.RemoveWinner = b
	}

	if v := os.Getenv("ITEM_DURATION"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ITEM_DURATION %q: %w", v, err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("ITEM_DURATION must be positive, got %s", d)
		}
		c.ItemDuration = d
	}

	level, err := parseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	return c, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
