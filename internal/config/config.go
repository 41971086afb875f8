package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dtnitsch/daily-ratings/models"
	"github.com/dtnitsch/daily-ratings/pkg/analytics"
	"github.com/dtnitsch/daily-ratings/pkg/session"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read when --config is not given. It may be absent.
const DefaultFile = "daily-ratings.yaml"

const (
	EnvPassword = "DAILY_RATING_PASSWORD"
	EnvDataDir  = "DAILY_RATINGS_DATA_DIR"
	EnvLogLevel = "DAILY_RATINGS_LOG_LEVEL"
)

// Defaults returns the configuration used when no file is present.
func Defaults() models.Config {
	return models.Config{
		DataDir:        ".",
		Users:          []string{"Martin", "Moritz", "Example"},
		ExtraStopwords: append([]string(nil), analytics.DefaultExtraStopwords...),
		Language:       string(analytics.LanguageAuto),
		Top:            25,
		LogLevel:       "INFO",
		SessionFile:    session.DefaultFile,
	}
}

// Load reads path over the defaults, then applies environment overrides.
// A missing file at the default path is not an error; a missing file that
// was asked for explicitly is.
func Load(path string) (models.Config, error) {
	cfg := Defaults()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
	default:
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg.DataDir = getEnv(EnvDataDir, cfg.DataDir)
	cfg.LogLevel = getEnv(EnvLogLevel, cfg.LogLevel)

	if cfg.DataDir == "" {
		cfg.DataDir = "."
	}
	if cfg.SessionFile == "" {
		cfg.SessionFile = session.DefaultFile
	}
	if _, err := analytics.ParseLanguage(cfg.Language); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Password returns the shared secret from the environment.
func Password() string {
	return os.Getenv(EnvPassword)
}

// AnalyticsOptions maps the config onto pipeline options.
func AnalyticsOptions(cfg models.Config) (analytics.Options, error) {
	lang, err := analytics.ParseLanguage(cfg.Language)
	if err != nil {
		return analytics.Options{}, err
	}
	return analytics.Options{
		ExtraStopwords:    cfg.ExtraStopwords,
		Language:          lang,
		Stem:              cfg.Stem,
		PerTokenStopwords: cfg.PerTokenStopwords,
	}, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// ParseLogLevel maps a level name to slog.Level, defaulting to INFO.
func ParseLogLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
