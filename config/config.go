package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/kova98/redditmcp/enums"
)

const defaultUserAgent = "redditmcp/1.0 (github.com/kova98/redditmcp)"

// AppConfig is built once in main and passed down; nothing below main reads
// the environment.
type AppConfig struct {
	UserAgent        string
	BaseURL          string
	FetchTimeout     time.Duration
	DefaultOutput    enums.OutputKind
	DefaultVerbosity enums.Verbosity
	MetricsAddr      string
	LogLevel         slog.Level
}

func Load() AppConfig {
	cfg := AppConfig{
		UserAgent:   loadOptional("REDDIT_USER_AGENT", defaultUserAgent),
		BaseURL:     loadOptional("REDDIT_BASE_URL", "https://www.reddit.com"),
		MetricsAddr: os.Getenv("METRICS_ADDR"),
	}

	// Unrecognized values fall back to the fixed defaults, never an error.
	cfg.DefaultOutput = enums.ParseOutputKind(loadOptional("MCP_OUTPUT", "text"))
	if cfg.DefaultOutput == enums.OutputInvalid {
		cfg.DefaultOutput = enums.OutputText
	}
	cfg.DefaultVerbosity = enums.ParseVerbosity(loadOptional("MCP_VERBOSITY", "compact"))
	if cfg.DefaultVerbosity == enums.VerbosityInvalid {
		cfg.DefaultVerbosity = enums.VerbosityCompact
	}

	seconds, err := strconv.Atoi(loadOptional("FETCH_TIMEOUT_SECONDS", "10"))
	if err != nil || seconds <= 0 {
		seconds = 10
	}
	cfg.FetchTimeout = time.Duration(seconds) * time.Second

	lvlString := loadOptional("LOG_LEVEL", "INFO")
	cfg.LogLevel, err = parseLogLevel(lvlString)
	if err != nil {
		slog.Error("Invalid LOG_LEVEL", "error", err)
		cfg.LogLevel = slog.LevelInfo
	}

	return cfg
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	var err = level.UnmarshalText([]byte(s))
	return level, err
}

func loadOptional(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
