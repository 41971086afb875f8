// Package window filters a journal by a relative date range and buckets the
// result into weekly means. Every function here is pure.
package window

import (
	"sort"
	"time"

	"github.com/dtnitsch/daily-ratings/models"
	"github.com/dtnitsch/daily-ratings/pkg/journal"
)

// Start returns the earliest day kept by w relative to reference, and false
// for WindowAll.
func Start(reference time.Time, w models.Window) (time.Time, bool) {
	n := w.Days()
	if n == 0 {
		return time.Time{}, false
	}
	return models.Day(reference).AddDate(0, 0, -n), true
}

// FilterWindow keeps entries dated on or after reference minus the window's
// lookback. The lookback counts from reference, not from the latest entry.
// Entries after reference are kept.
func FilterWindow(j journal.Journal, reference time.Time, w models.Window) journal.Journal {
	start, bounded := Start(reference, w)
	if !bounded {
		return j
	}
	return j.Filter(func(e models.RatingEntry) bool {
		return !e.Date.Before(start)
	})
}

// WeekStart returns the Monday of the ISO week containing day.
func WeekStart(day time.Time) time.Time {
	day = models.Day(day)
	offset := (int(day.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return day.AddDate(0, 0, -offset)
}

// WeeklyMeans groups entries by ISO week and returns one bucket per week
// that has at least one entry, ordered by week start ascending.
func WeeklyMeans(j journal.Journal) []models.WeeklyBucket {
	type acc struct {
		sum, count int
	}
	weeks := make(map[time.Time]*acc)
	for _, e := range j.Records() {
		ws := WeekStart(e.Date)
		a, ok := weeks[ws]
		if !ok {
			a = &acc{}
			weeks[ws] = a
		}
		a.sum += e.Rating
		a.count++
	}

	buckets := make([]models.WeeklyBucket, 0, len(weeks))
	for ws, a := range weeks {
		buckets = append(buckets, models.WeeklyBucket{
			WeekStart:  ws,
			MeanRating: float64(a.sum) / float64(a.count),
			Count:      a.count,
		})
	}
	sort.Slice(buckets, func(i, k int) bool {
		return buckets[i].WeekStart.Before(buckets[k].WeekStart)
	})
	return buckets
}

// DailySeries returns one point per entry ordered by date ascending.
func DailySeries(j journal.Journal) []models.DailyPoint {
	entries := j.Entries()
	points := make([]models.DailyPoint, len(entries))
	for i, e := range entries {
		points[i] = models.DailyPoint{Date: e.Date, Rating: e.Rating}
	}
	return points
}
