// Package journal holds one identity's date-keyed rating entries.
//
// A Journal is a value: Upsert and Delete return a new Journal and never
// modify the receiver, so callers can hand the same snapshot to renderers
// while a mutation is being persisted.
package journal

import (
	"sort"
	"strings"
	"time"

	"github.com/dtnitsch/daily-ratings/models"
)

// Journal is an insertion-ordered set of entries with at most one entry per day.
type Journal struct {
	entries []models.RatingEntry
}

// New builds a journal from entries. Later duplicates of a day replace
// earlier ones, and out-of-range ratings are rejected.
func New(entries []models.RatingEntry) (Journal, error) {
	var j Journal
	for _, e := range entries {
		var err error
		j, err = j.Upsert(e.Date, e.Rating, e.Comment)
		if err != nil {
			return Journal{}, err
		}
	}
	return j, nil
}

// ValidateRating reports whether r is inside the accepted rating domain.
func ValidateRating(r int) error {
	if r < models.MinRating || r > models.MaxRating {
		return &InvalidRatingError{Rating: r}
	}
	return nil
}

// Len returns the number of entries.
func (j Journal) Len() int { return len(j.entries) }

// Empty reports whether the journal has no entries.
func (j Journal) Empty() bool { return len(j.entries) == 0 }

func (j Journal) index(day time.Time) int {
	for i, e := range j.entries {
		if e.Date.Equal(day) {
			return i
		}
	}
	return -1
}

// Get returns the entry for the day containing date.
func (j Journal) Get(date time.Time) (models.RatingEntry, bool) {
	if i := j.index(models.Day(date)); i >= 0 {
		return j.entries[i], true
	}
	return models.RatingEntry{}, false
}

// Upsert replaces the rating and comment of the entry for date's day, or
// appends a new entry. Applying the same arguments twice is a no-op the
// second time. CRLF line breaks in comment are stored as LF, which is what
// the store returns on load.
func (j Journal) Upsert(date time.Time, rating int, comment string) (Journal, error) {
	if err := ValidateRating(rating); err != nil {
		return j, err
	}
	day := models.Day(date)
	entry := models.RatingEntry{Date: day, Rating: rating, Comment: strings.ReplaceAll(comment, "\r\n", "\n")}

	next := make([]models.RatingEntry, len(j.entries), len(j.entries)+1)
	copy(next, j.entries)
	if i := j.index(day); i >= 0 {
		next[i] = entry
	} else {
		next = append(next, entry)
	}
	return Journal{entries: next}, nil
}

// Delete removes the entry for date's day. Deleting a missing day returns
// an equal journal.
func (j Journal) Delete(date time.Time) Journal {
	i := j.index(models.Day(date))
	if i < 0 {
		return j
	}
	next := make([]models.RatingEntry, 0, len(j.entries)-1)
	next = append(next, j.entries[:i]...)
	next = append(next, j.entries[i+1:]...)
	return Journal{entries: next}
}

// Records returns the entries in insertion order, the order they are saved in.
func (j Journal) Records() []models.RatingEntry {
	out := make([]models.RatingEntry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Entries returns the entries sorted by date ascending.
func (j Journal) Entries() []models.RatingEntry {
	out := j.Records()
	sort.Slice(out, func(a, b int) bool {
		return out[a].Date.Before(out[b].Date)
	})
	return out
}

// Comments returns the non-empty comments in insertion order.
func (j Journal) Comments() []string {
	var out []string
	for _, e := range j.entries {
		if e.Comment != "" {
			out = append(out, e.Comment)
		}
	}
	return out
}

// Filter returns the entries for which keep returns true, preserving order.
func (j Journal) Filter(keep func(models.RatingEntry) bool) Journal {
	var next []models.RatingEntry
	for _, e := range j.entries {
		if keep(e) {
			next = append(next, e)
		}
	}
	return Journal{entries: next}
}
