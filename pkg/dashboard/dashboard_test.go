package dashboard

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/dtnitsch/daily-ratings/models"
	"github.com/dtnitsch/daily-ratings/pkg/analytics"
	"github.com/dtnitsch/daily-ratings/pkg/journal"
	"github.com/dtnitsch/daily-ratings/pkg/storage"
)

// failingStore loads nothing and fails every save.
type failingStore struct{}

func (failingStore) Load(string) (journal.Journal, error) { return journal.Journal{}, nil }
func (failingStore) Save(journal.Journal, string) error {
	return &journal.PersistenceError{Path: "nowhere", Err: errors.New("disk full")}
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := models.ParseDay(s)
	if err != nil {
		t.Fatalf("ParseDay(%q): %v", s, err)
	}
	return d
}

func setupTestService(t *testing.T) (*Service, *storage.Storage) {
	t.Helper()
	store := &storage.Storage{BaseDir: t.TempDir()}
	return NewService(store, analytics.Options{}, nil), store
}

func TestUpsertEntry_WritesThrough(t *testing.T) {
	svc, store := setupTestService(t)

	j, err := svc.GetJournal("Martin")
	if err != nil {
		t.Fatalf("GetJournal() failed: %v", err)
	}
	j, err = svc.UpsertEntry(j, "Martin", day(t, "2024-01-01"), 7, "long walk, sunny")
	if err != nil {
		t.Fatalf("UpsertEntry() failed: %v", err)
	}

	loaded, err := store.Load("Martin")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(loaded.Records(), j.Records()) {
		t.Errorf("persisted = %+v, in memory = %+v", loaded.Records(), j.Records())
	}
	got, ok := loaded.Get(day(t, "2024-01-01"))
	if !ok || got.Rating != 7 || got.Comment != "long walk, sunny" {
		t.Errorf("loaded entry = %+v, %v", got, ok)
	}
}

func TestUpsertEntry_InvalidRatingLeavesJournal(t *testing.T) {
	svc, store := setupTestService(t)

	j, _ := svc.UpsertEntry(journal.Journal{}, "Martin", day(t, "2024-01-01"), 5, "")
	got, err := svc.UpsertEntry(j, "Martin", day(t, "2024-01-02"), 0, "")

	var invalid *journal.InvalidRatingError
	if !errors.As(err, &invalid) {
		t.Fatalf("UpsertEntry() error = %v, want *journal.InvalidRatingError", err)
	}
	if got.Len() != 1 {
		t.Errorf("journal changed: Len() = %d, want 1", got.Len())
	}
	loaded, _ := store.Load("Martin")
	if loaded.Len() != 1 {
		t.Errorf("store changed: Len() = %d, want 1", loaded.Len())
	}
}

func TestUpsertEntry_PersistenceError(t *testing.T) {
	svc := NewService(failingStore{}, analytics.Options{}, nil)

	got, err := svc.UpsertEntry(journal.Journal{}, "Martin", day(t, "2024-01-01"), 5, "x")
	var perr *journal.PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("UpsertEntry() error = %v, want *journal.PersistenceError", err)
	}
	if got.Len() != 1 {
		t.Errorf("in-memory journal should keep the attempted mutation, Len() = %d", got.Len())
	}
}

func TestDeleteEntry(t *testing.T) {
	svc, store := setupTestService(t)

	j, _ := svc.UpsertEntry(journal.Journal{}, "Moritz", day(t, "2024-01-01"), 5, "")
	j, _ = svc.UpsertEntry(j, "Moritz", day(t, "2024-01-02"), 6, "")

	j, err := svc.DeleteEntry(j, "Moritz", day(t, "2024-01-01"))
	if err != nil {
		t.Fatalf("DeleteEntry() failed: %v", err)
	}
	if j.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", j.Len())
	}

	same, err := svc.DeleteEntry(j, "Moritz", day(t, "2023-01-01"))
	if err != nil {
		t.Fatalf("DeleteEntry() of missing date failed: %v", err)
	}
	if !reflect.DeepEqual(same.Records(), j.Records()) {
		t.Errorf("DeleteEntry() of missing date changed journal")
	}

	loaded, _ := store.Load("Moritz")
	if loaded.Len() != 1 {
		t.Errorf("store Len() = %d, want 1", loaded.Len())
	}
}

func TestGetJournal_IdentitiesAreSeparate(t *testing.T) {
	svc, _ := setupTestService(t)

	if _, err := svc.UpsertEntry(journal.Journal{}, "Martin", day(t, "2024-01-01"), 5, ""); err != nil {
		t.Fatal(err)
	}
	other, err := svc.GetJournal("Moritz")
	if err != nil {
		t.Fatalf("GetJournal() failed: %v", err)
	}
	if !other.Empty() {
		t.Errorf("Moritz sees %d of Martin's entries", other.Len())
	}
}

func TestGetEntry_Prefill(t *testing.T) {
	svc, _ := setupTestService(t)
	j, _ := svc.UpsertEntry(journal.Journal{}, "Martin", day(t, "2024-01-01"), 8, "ok")

	if e, ok := svc.GetEntry(j, day(t, "2024-01-01")); !ok || e.Rating != 8 {
		t.Errorf("GetEntry(existing) = %+v, %v", e, ok)
	}
	if e, ok := svc.GetEntry(j, day(t, "2024-01-02")); ok || e.Rating != models.DefaultRating {
		t.Errorf("GetEntry(missing) = %+v, %v; want default rating %d", e, ok, models.DefaultRating)
	}
}

func TestGetWeeklyMeans_AppliesWindow(t *testing.T) {
	svc, _ := setupTestService(t)
	var j journal.Journal
	for d, r := range map[string]int{"2024-01-01": 4, "2024-01-03": 6, "2024-01-08": 8} {
		j, _ = j.Upsert(day(t, d), r, "")
	}

	all := svc.GetWeeklyMeans(j, day(t, "2024-01-10"), models.WindowAll)
	if len(all) != 2 || all[0].MeanRating != 5.0 || all[1].MeanRating != 8.0 {
		t.Errorf("GetWeeklyMeans(all) = %+v", all)
	}

	recent := svc.GetWeeklyMeans(j, day(t, "2024-01-10"), models.WindowLast7Days)
	if len(recent) != 2 || recent[0].MeanRating != 6.0 {
		t.Errorf("GetWeeklyMeans(7d) = %+v", recent)
	}
}

func TestGetBigramFrequencies(t *testing.T) {
	svc := NewService(&storage.Storage{BaseDir: t.TempDir()}, analytics.Options{ExtraStopwords: []string{"my dog"}}, nil)
	var j journal.Journal
	j, _ = j.Upsert(day(t, "2024-02-01"), 5, "I love my cat")
	j, _ = j.Upsert(day(t, "2024-02-09"), 5, "I love my dog")
	j, _ = j.Upsert(day(t, "2024-02-10"), 5, "")

	got := svc.GetBigramFrequencies(j, day(t, "2024-02-10"), models.WindowAll, nil)
	if got["i love"] != 2 || got["love my"] != 2 || got["my cat"] != 1 {
		t.Errorf("GetBigramFrequencies(all) = %v", got)
	}
	if _, ok := got["my dog"]; ok {
		t.Errorf("configured phrase stopword not applied: %v", got)
	}

	got = svc.GetBigramFrequencies(j, day(t, "2024-02-10"), models.WindowLast7Days, []string{"i love"})
	want := map[string]int{"love my": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GetBigramFrequencies(7d) = %v, want %v", got, want)
	}
}

func TestGetBigramFrequencies_EmptyJournal(t *testing.T) {
	svc, _ := setupTestService(t)
	got := svc.GetBigramFrequencies(journal.Journal{}, day(t, "2024-02-10"), models.WindowAll, nil)
	if got == nil || len(got) != 0 {
		t.Errorf("GetBigramFrequencies(empty) = %v, want empty table", got)
	}
}

func TestUserList(t *testing.T) {
	allowed := []string{"Martin", "Moritz"}
	tests := []struct {
		chosen  string
		wantErr bool
	}{
		{"Martin", false},
		{"Eve", true},
		{"", true},
	}
	for _, tt := range tests {
		_, err := UserList{Allowed: allowed, Chosen: tt.chosen}.Identity()
		if (err != nil) != tt.wantErr {
			t.Errorf("Identity(%q) error = %v, wantErr %v", tt.chosen, err, tt.wantErr)
		}
	}
}

func TestFixedClock(t *testing.T) {
	c := FixedClock(time.Date(2024, 2, 10, 15, 4, 5, 0, time.UTC))
	if got := c.Today(); !got.Equal(day(t, "2024-02-10")) {
		t.Errorf("Today() = %v", got)
	}
}
