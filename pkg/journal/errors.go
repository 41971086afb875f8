package journal

import (
	"fmt"

	"github.com/dtnitsch/daily-ratings/models"
)

// InvalidRatingError is returned when a rating falls outside
// [models.MinRating, models.MaxRating]. The journal is left unchanged.
type InvalidRatingError struct {
	Rating int
}

func (e *InvalidRatingError) Error() string {
	return fmt.Sprintf("invalid rating %d: must be between %d and %d", e.Rating, models.MinRating, models.MaxRating)
}

// CorruptStoreError reports a persisted store that exists but cannot be parsed.
// Line is 1-based and counts the header row; 0 means the file as a whole.
type CorruptStoreError struct {
	Path string
	Line int
	Err  error
}

func (e *CorruptStoreError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("corrupt store %s (line %d): %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("corrupt store %s: %v", e.Path, e.Err)
}

func (e *CorruptStoreError) Unwrap() error { return e.Err }

// PersistenceError reports a failed write. The in-memory journal still holds
// the attempted mutation, but it is not durable.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
