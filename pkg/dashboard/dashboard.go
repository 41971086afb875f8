// Package dashboard exposes the journal operations the UI layer calls. Each
// call is one synchronous request/response pass: the caller passes the
// current journal in and receives the next one back. Nothing is cached here.
package dashboard

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/dtnitsch/daily-ratings/models"
	"github.com/dtnitsch/daily-ratings/pkg/analytics"
	"github.com/dtnitsch/daily-ratings/pkg/journal"
	"github.com/dtnitsch/daily-ratings/pkg/window"
)

// Store loads and saves one journal per identity.
type Store interface {
	Load(identity string) (journal.Journal, error)
	Save(j journal.Journal, identity string) error
}

// Clock supplies the reference "today".
type Clock interface {
	Today() time.Time
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

func (SystemClock) Today() time.Time { return models.Day(time.Now()) }

// FixedClock always returns the same day.
type FixedClock time.Time

func (c FixedClock) Today() time.Time { return models.Day(time.Time(c)) }

// IdentitySelector supplies the active user identity.
type IdentitySelector interface {
	Identity() (string, error)
}

// UserList selects Chosen if it is one of Allowed. An empty Allowed accepts
// any non-empty identity.
type UserList struct {
	Allowed []string
	Chosen  string
}

func (u UserList) Identity() (string, error) {
	if u.Chosen == "" {
		return "", fmt.Errorf("no user selected (choose one of %v)", u.Allowed)
	}
	if len(u.Allowed) > 0 && !slices.Contains(u.Allowed, u.Chosen) {
		return "", fmt.Errorf("unknown user %q (choose one of %v)", u.Chosen, u.Allowed)
	}
	return u.Chosen, nil
}

type Service struct {
	store    Store
	analysis analytics.Options
	logger   *slog.Logger
}

func NewService(store Store, analysis analytics.Options, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{store: store, analysis: analysis, logger: logger}
}

// GetJournal loads the journal for identity. A missing store is an empty
// journal; a corrupt one returns *journal.CorruptStoreError.
func (s *Service) GetJournal(identity string) (journal.Journal, error) {
	j, err := s.store.Load(identity)
	if err != nil {
		s.logger.Error("failed to load journal", "user", identity, "error", err)
		return journal.Journal{}, err
	}
	s.logger.Debug("journal loaded", "user", identity, "entries", j.Len())
	return j, nil
}

// UpsertEntry applies the upsert and saves before returning. On
// *journal.InvalidRatingError the input journal is returned unchanged. On
// *journal.PersistenceError the mutated journal is returned with the error:
// the change is visible in memory but not durable.
func (s *Service) UpsertEntry(j journal.Journal, identity string, date time.Time, rating int, comment string) (journal.Journal, error) {
	next, err := j.Upsert(date, rating, comment)
	if err != nil {
		s.logger.Warn("rejected rating", "user", identity, "date", date.Format(models.DateLayout), "rating", rating)
		return j, err
	}
	if err := s.store.Save(next, identity); err != nil {
		s.logger.Error("failed to save journal", "user", identity, "error", err)
		return next, err
	}
	s.logger.Info("rating saved", "user", identity, "date", models.Day(date).Format(models.DateLayout), "rating", rating)
	return next, nil
}

// DeleteEntry removes the entry for date and saves before returning.
// Deleting a missing date still saves, so the store always mirrors the
// returned journal.
func (s *Service) DeleteEntry(j journal.Journal, identity string, date time.Time) (journal.Journal, error) {
	next := j.Delete(date)
	if err := s.store.Save(next, identity); err != nil {
		s.logger.Error("failed to save journal", "user", identity, "error", err)
		return next, err
	}
	s.logger.Info("rating deleted", "user", identity, "date", models.Day(date).Format(models.DateLayout), "removed", next.Len() < j.Len())
	return next, nil
}

// GetEntry returns the entry for date, or a default-rated blank entry.
func (s *Service) GetEntry(j journal.Journal, date time.Time) (models.RatingEntry, bool) {
	if e, ok := j.Get(date); ok {
		return e, true
	}
	return models.RatingEntry{Date: models.Day(date), Rating: models.DefaultRating}, false
}

// GetWeeklyMeans filters j by w relative to reference and buckets by week.
func (s *Service) GetWeeklyMeans(j journal.Journal, reference time.Time, w models.Window) []models.WeeklyBucket {
	return window.WeeklyMeans(window.FilterWindow(j, reference, w))
}

// GetDailySeries filters j by w relative to reference, ordered by date.
func (s *Service) GetDailySeries(j journal.Journal, reference time.Time, w models.Window) []models.DailyPoint {
	return window.DailySeries(window.FilterWindow(j, reference, w))
}

// GetBigramFrequencies runs the analytics pipeline over the comments in the
// window. extraStopwords are added to the configured ones.
func (s *Service) GetBigramFrequencies(j journal.Journal, reference time.Time, w models.Window, extraStopwords []string) map[string]int {
	return s.AnalyzeWindow(j, reference, w, extraStopwords).Frequencies
}

// AnalyzeWindow is GetBigramFrequencies with the detected language and token count.
func (s *Service) AnalyzeWindow(j journal.Journal, reference time.Time, w models.Window, extraStopwords []string) analytics.Result {
	opts := s.analysis
	opts.ExtraStopwords = append(slices.Clone(opts.ExtraStopwords), extraStopwords...)

	comments := window.FilterWindow(j, reference, w).Comments()
	res := analytics.New(opts).Analyze(comments)
	s.logger.Debug("comments analyzed",
		"window", w.String(),
		"comments", len(comments),
		"tokens", res.Tokens,
		"bigrams", len(res.Frequencies),
		"language", res.Language,
	)
	return res
}
