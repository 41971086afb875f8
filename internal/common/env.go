// Package common builds the per-invocation environment shared by CLI actions.
package common

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dtnitsch/daily-ratings/internal/config"
	"github.com/dtnitsch/daily-ratings/models"
	"github.com/dtnitsch/daily-ratings/pkg/dashboard"
	"github.com/dtnitsch/daily-ratings/pkg/journal"
	"github.com/dtnitsch/daily-ratings/pkg/session"
	"github.com/dtnitsch/daily-ratings/pkg/storage"
	"github.com/urfave/cli/v2"
)

// Env is everything one command invocation needs.
type Env struct {
	Config  models.Config
	Logger  *slog.Logger
	Store   *storage.Storage
	Service *dashboard.Service
	Gate    session.Gate
	Clock   dashboard.Clock

	cleanup func() error
}

// Setup loads config, applies global flags and wires the service.
func Setup(c *cli.Context) (*Env, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("data-dir") {
		cfg.DataDir = c.String("data-dir")
	}
	if c.IsSet("per-token-stopwords") {
		cfg.PerTokenStopwords = c.Bool("per-token-stopwords")
	}
	if c.IsSet("stem") {
		cfg.Stem = c.Bool("stem")
	}
	if c.IsSet("language") {
		cfg.Language = c.String("language")
	}

	level := config.ParseLogLevel(cfg.LogLevel)
	if c.Bool("quiet") {
		level = slog.LevelError
	}
	logger, cleanup := config.SetupLogger(cfg.LogFile, level)

	opts, err := config.AnalyticsOptions(cfg)
	if err != nil {
		_ = cleanup()
		return nil, err
	}

	var clock dashboard.Clock = dashboard.SystemClock{}
	if today := c.String("today"); today != "" {
		day, err := models.ParseDay(today)
		if err != nil {
			_ = cleanup()
			return nil, fmt.Errorf("invalid --today %q: %w", today, err)
		}
		clock = dashboard.FixedClock(day)
	}

	store := &storage.Storage{BaseDir: cfg.DataDir}
	return &Env{
		Config:  cfg,
		Logger:  logger,
		Store:   store,
		Service: dashboard.NewService(store, opts, logger),
		Gate:    session.NewFileGate(cfg.SessionFile),
		Clock:   clock,
		cleanup: cleanup,
	}, nil
}

// SetupAuthorized is Setup followed by the session gate check.
func SetupAuthorized(c *cli.Context) (*Env, error) {
	env, err := Setup(c)
	if err != nil {
		return nil, err
	}
	if err := session.Require(env.Gate); err != nil {
		_ = env.Close()
		return nil, err
	}
	return env, nil
}

func (e *Env) Close() error {
	if e.cleanup == nil {
		return nil
	}
	return e.cleanup()
}

// Identity resolves --user against the configured users.
func (e *Env) Identity(c *cli.Context) (string, error) {
	return dashboard.UserList{Allowed: e.Config.Users, Chosen: c.String("user")}.Identity()
}

// Date resolves --date, defaulting to the clock's today.
func (e *Env) Date(c *cli.Context) (time.Time, error) {
	raw := c.String("date")
	if raw == "" {
		return e.Clock.Today(), nil
	}
	day, err := models.ParseDay(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q (want YYYY-MM-DD)", raw)
	}
	return day, nil
}

// Window resolves --window.
func (e *Env) Window(c *cli.Context) (models.Window, error) {
	return models.ParseWindow(c.String("window"))
}

// JournalForRead loads the journal for display. A corrupt store is reported
// as a warning and shown as empty; any other error is returned.
func (e *Env) JournalForRead(identity string) (journal.Journal, error) {
	j, err := e.Service.GetJournal(identity)
	var corrupt *journal.CorruptStoreError
	if errors.As(err, &corrupt) {
		e.Logger.Warn("store is corrupt, showing an empty journal", "user", identity, "path", corrupt.Path, "line", corrupt.Line, "error", corrupt.Err)
		return journal.Journal{}, nil
	}
	return j, err
}

// JournalForWrite loads the journal for a mutation. A corrupt store is an
// error so it is never overwritten.
func (e *Env) JournalForWrite(identity string) (journal.Journal, error) {
	j, err := e.Service.GetJournal(identity)
	if err != nil {
		return journal.Journal{}, fmt.Errorf("refusing to modify journal for %s: %w", identity, err)
	}
	return j, nil
}
