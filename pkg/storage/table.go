package storage

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dtnitsch/daily-ratings/models"
	"github.com/dtnitsch/daily-ratings/pkg/journal"
)

// Header is the column row every store starts with.
var Header = []string{"date", "rating", "comment"}

// Load reads the store for identity. A missing store yields an empty journal
// and no error. Any unparseable row fails the whole load with
// *journal.CorruptStoreError; rows are never skipped.
func (s *Storage) Load(identity string) (journal.Journal, error) {
	path := s.PathFor(identity)
	if !s.HasFile(path) {
		return journal.Journal{}, nil
	}
	data, err := s.ReadFile(path)
	if err != nil {
		return journal.Journal{}, fmt.Errorf("failed to load journal for %s: %w", identity, err)
	}

	entries, err := DecodeTable(data)
	if err != nil {
		var corrupt *journal.CorruptStoreError
		if errors.As(err, &corrupt) {
			corrupt.Path = path
		}
		return journal.Journal{}, err
	}

	j, err := journal.New(entries)
	if err != nil {
		return journal.Journal{}, &journal.CorruptStoreError{Path: path, Err: err}
	}
	return j, nil
}

// Save overwrites the store for identity with the full journal.
func (s *Storage) Save(j journal.Journal, identity string) error {
	path := s.PathFor(identity)
	data, err := EncodeTable(j.Records())
	if err != nil {
		return &journal.PersistenceError{Path: path, Err: err}
	}
	if err := s.SaveFile(path, data); err != nil {
		return &journal.PersistenceError{Path: path, Err: err}
	}
	return nil
}

// EncodeTable renders entries as a CSV table with a header row.
func EncodeTable(entries []models.RatingEntry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(Header); err != nil {
		return nil, err
	}
	for _, e := range entries {
		row := []string{e.Date.Format(models.DateLayout), strconv.Itoa(e.Rating), e.Comment}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeTable parses a CSV table produced by EncodeTable. An empty file is
// an empty table. Errors are *journal.CorruptStoreError without a path.
func DecodeTable(data []byte) ([]models.RatingEntry, error) {
	data = bytes.TrimPrefix(data, []byte("\ufeff"))
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, &journal.CorruptStoreError{Line: 1, Err: fmt.Errorf("reading header: %w", err)}
	}
	cols, err := columnIndex(header)
	if err != nil {
		return nil, &journal.CorruptStoreError{Line: 1, Err: err}
	}

	var entries []models.RatingEntry
	seen := make(map[string]int)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			line := 0
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				line = pe.StartLine
			}
			return nil, &journal.CorruptStoreError{Line: line, Err: err}
		}
		line, _ := r.FieldPos(0)
		entry, err := parseRow(row, cols)
		if err != nil {
			return nil, &journal.CorruptStoreError{Line: line, Err: err}
		}
		key := entry.Date.Format(models.DateLayout)
		if first, dup := seen[key]; dup {
			return nil, &journal.CorruptStoreError{Line: line, Err: fmt.Errorf("duplicate date %s (first on line %d)", key, first)}
		}
		seen[key] = line
		entries = append(entries, entry)
	}
	return entries, nil
}

type columns struct {
	date, rating, comment int
}

func columnIndex(header []string) (columns, error) {
	cols := columns{date: -1, rating: -1, comment: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "date":
			cols.date = i
		case "rating":
			cols.rating = i
		case "comment":
			cols.comment = i
		}
	}
	if cols.date < 0 || cols.rating < 0 {
		return cols, fmt.Errorf("header %q is missing date or rating column", strings.Join(header, ","))
	}
	return cols, nil
}

func parseRow(row []string, cols columns) (models.RatingEntry, error) {
	field := func(i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return row[i]
	}

	date, err := parseDate(field(cols.date))
	if err != nil {
		return models.RatingEntry{}, err
	}

	rating, err := parseRating(field(cols.rating))
	if err != nil {
		return models.RatingEntry{}, err
	}

	return models.RatingEntry{Date: date, Rating: rating, Comment: field(cols.comment)}, nil
}

// Older stores written by a dataframe carry a time part: "2024-01-01 00:00:00".
const timestampLayout = "2006-01-02 15:04:05"

// parseDate accepts a bare date or a full timestamp; anything else is invalid.
func parseDate(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	for _, layout := range []string{models.DateLayout, timestampLayout} {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return models.Day(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", raw)
}

// parseRating accepts plain integers and integral floats ("7.0").
func parseRating(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	n, err := strconv.Atoi(raw)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || f != float64(int(f)) {
			return 0, fmt.Errorf("invalid rating %q", raw)
		}
		n = int(f)
	}
	if err := journal.ValidateRating(n); err != nil {
		return 0, err
	}
	return n, nil
}
