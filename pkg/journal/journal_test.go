package journal

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/dtnitsch/daily-ratings/models"
)

func day(s string) time.Time {
	d, err := models.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestUpsert_Boundaries(t *testing.T) {
	tests := []struct {
		name    string
		rating  int
		wantErr bool
	}{
		{name: "zero rejected", rating: 0, wantErr: true},
		{name: "eleven rejected", rating: 11, wantErr: true},
		{name: "negative rejected", rating: -3, wantErr: true},
		{name: "one accepted", rating: 1},
		{name: "ten accepted", rating: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var j Journal
			got, err := j.Upsert(day("2024-01-01"), tt.rating, "")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Upsert() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var invalid *InvalidRatingError
				if !errors.As(err, &invalid) {
					t.Fatalf("Upsert() error type = %T, want *InvalidRatingError", err)
				}
				if invalid.Rating != tt.rating {
					t.Errorf("InvalidRatingError.Rating = %d, want %d", invalid.Rating, tt.rating)
				}
				if got.Len() != 0 {
					t.Errorf("journal changed on rejected rating: len = %d", got.Len())
				}
				return
			}
			if got.Len() != 1 {
				t.Errorf("Len() = %d, want 1", got.Len())
			}
		})
	}
}

func TestUpsert_ReplacesSameDay(t *testing.T) {
	var j Journal
	j, _ = j.Upsert(day("2024-01-01"), 4, "first")
	j, _ = j.Upsert(day("2024-01-02"), 6, "second")

	// A time-of-day on the same calendar date must hit the same entry.
	later := time.Date(2024, 1, 1, 18, 30, 0, 0, time.UTC)
	j, err := j.Upsert(later, 9, "edited")
	if err != nil {
		t.Fatalf("Upsert() failed: %v", err)
	}

	if j.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", j.Len())
	}
	got, ok := j.Get(day("2024-01-01"))
	if !ok {
		t.Fatal("Get() found no entry for 2024-01-01")
	}
	if got.Rating != 9 || got.Comment != "edited" {
		t.Errorf("entry = %+v, want rating 9 comment %q", got, "edited")
	}
	if recs := j.Records(); !recs[0].Date.Equal(day("2024-01-01")) {
		t.Errorf("replaced entry moved: first record = %v", recs[0].Date)
	}
}

func TestUpsert_Idempotent(t *testing.T) {
	base, _ := New([]models.RatingEntry{{Date: day("2024-01-05"), Rating: 3}})

	once, err := base.Upsert(day("2024-01-06"), 7, "walk")
	if err != nil {
		t.Fatalf("Upsert() failed: %v", err)
	}
	twice, err := once.Upsert(day("2024-01-06"), 7, "walk")
	if err != nil {
		t.Fatalf("Upsert() failed: %v", err)
	}

	if !reflect.DeepEqual(once.Records(), twice.Records()) {
		t.Errorf("second upsert changed journal:\n once  = %+v\n twice = %+v", once.Records(), twice.Records())
	}
}

func TestUpsert_NormalizesCRLF(t *testing.T) {
	var j Journal
	j, err := j.Upsert(day("2024-01-06"), 6, "line one\r\nline two\rkept")
	if err != nil {
		t.Fatalf("Upsert() failed: %v", err)
	}
	got, _ := j.Get(day("2024-01-06"))
	if want := "line one\nline two\rkept"; got.Comment != want {
		t.Errorf("Comment = %q, want %q", got.Comment, want)
	}
}

func TestUpsert_DoesNotMutateReceiver(t *testing.T) {
	base, _ := New([]models.RatingEntry{{Date: day("2024-01-05"), Rating: 3, Comment: "old"}})
	before := base.Records()

	if _, err := base.Upsert(day("2024-01-05"), 8, "new"); err != nil {
		t.Fatalf("Upsert() failed: %v", err)
	}

	if !reflect.DeepEqual(base.Records(), before) {
		t.Errorf("receiver changed: %+v, want %+v", base.Records(), before)
	}
}

func TestDelete(t *testing.T) {
	base, _ := New([]models.RatingEntry{
		{Date: day("2024-01-01"), Rating: 4},
		{Date: day("2024-01-02"), Rating: 5},
		{Date: day("2024-01-03"), Rating: 6},
	})

	t.Run("removes existing entry", func(t *testing.T) {
		got := base.Delete(day("2024-01-02"))
		if got.Len() != 2 {
			t.Fatalf("Len() = %d, want 2", got.Len())
		}
		if _, ok := got.Get(day("2024-01-02")); ok {
			t.Error("entry still present after Delete()")
		}
		if base.Len() != 3 {
			t.Errorf("receiver changed: Len() = %d, want 3", base.Len())
		}
	})

	t.Run("missing date is a no-op", func(t *testing.T) {
		got := base.Delete(day("2023-12-31"))
		if !reflect.DeepEqual(got.Records(), base.Records()) {
			t.Errorf("Delete() of missing date changed journal: %+v", got.Records())
		}
	})

	t.Run("empty journal", func(t *testing.T) {
		var j Journal
		if got := j.Delete(day("2024-01-01")); !got.Empty() {
			t.Errorf("Delete() on empty journal returned %d entries", got.Len())
		}
	})
}

func TestEntries_SortedByDate(t *testing.T) {
	j, _ := New([]models.RatingEntry{
		{Date: day("2024-03-01"), Rating: 1},
		{Date: day("2024-01-01"), Rating: 2},
		{Date: day("2024-02-01"), Rating: 3},
	})

	got := j.Entries()
	want := []string{"2024-01-01", "2024-02-01", "2024-03-01"}
	for i, e := range got {
		if e.Date.Format(models.DateLayout) != want[i] {
			t.Errorf("Entries()[%d] = %s, want %s", i, e.Date.Format(models.DateLayout), want[i])
		}
	}
	// Records keeps insertion order.
	if j.Records()[0].Rating != 1 {
		t.Errorf("Records()[0].Rating = %d, want 1", j.Records()[0].Rating)
	}
}

func TestComments_SkipsEmpty(t *testing.T) {
	j, _ := New([]models.RatingEntry{
		{Date: day("2024-01-01"), Rating: 2, Comment: "a"},
		{Date: day("2024-01-02"), Rating: 2},
		{Date: day("2024-01-03"), Rating: 2, Comment: "b"},
	})

	if got := j.Comments(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Comments() = %v, want [a b]", got)
	}
}

func TestNew_RejectsInvalidRating(t *testing.T) {
	_, err := New([]models.RatingEntry{{Date: day("2024-01-01"), Rating: 12}})
	var invalid *InvalidRatingError
	if !errors.As(err, &invalid) {
		t.Errorf("New() error = %v, want *InvalidRatingError", err)
	}
}
