package models

import "time"

// DateLayout is the on-disk and CLI representation of a journal date.
const DateLayout = "2006-01-02"

// MinRating and MaxRating bound the accepted rating domain (inclusive).
const (
	MinRating     = 1
	MaxRating     = 10
	DefaultRating = 5 // pre-filled when no entry exists for the picked date
)

// RatingEntry is one day's rating and optional comment.
// Date is always truncated to midnight UTC; it is the entry's unique key.
type RatingEntry struct {
	Date    time.Time `yaml:"date"`
	Rating  int       `yaml:"rating"`
	Comment string    `yaml:"comment,omitempty"`
}

// Day truncates t to its calendar day. The wall-clock year/month/day of t are
// kept and re-anchored in UTC so that date arithmetic never crosses DST.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string into a day value.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}

// WeeklyBucket is the mean rating of all entries in one ISO week.
type WeeklyBucket struct {
	WeekStart  time.Time `yaml:"week_start"`
	MeanRating float64   `yaml:"mean_rating"`
	Count      int       `yaml:"count"`
}

// DailyPoint is one point of the daily ratings series.
type DailyPoint struct {
	Date   time.Time `yaml:"date"`
	Rating int       `yaml:"rating"`
}

// BigramCount is one ranked row of a bigram frequency table.
type BigramCount struct {
	Phrase string `yaml:"phrase"`
	Count  int    `yaml:"count"`
}
