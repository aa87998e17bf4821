package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	LogLevel    slog.Level

	// Seed drives patrol waypoints and search jitter. Zero picks a
	// time-based seed.
	Seed           int64
	LevelFile      string
	AdversaryWalls bool
	AxisSliding    bool
	AssetDir       string
}

// Load reads the process environment, after merging a .env file from the
// working directory when one exists.
func Load() *Config {
	_ = godotenv.Load()
	return &Config{
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       parseLogLevel(getEnv("LOG_LEVEL", "info")),
		Seed:           parseInt(getEnv("SIM_SEED", "0")),
		LevelFile:      getEnv("LEVEL_FILE", ""),
		AdversaryWalls: parseBool(getEnv("ADVERSARY_WALLS", "false")),
		AxisSliding:    parseBool(getEnv("AXIS_SLIDING", "false")),
		AssetDir:       getEnv("ASSET_DIR", "assets"),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && b
}

func parseInt(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
