package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

// FilePrefix and FileExt name the per-identity store: daily_ratings_<identity>.csv
const (
	FilePrefix = "daily_ratings_"
	FileExt    = ".csv"
)

// Storage owns the directory that holds one store file per identity.
// It performs no locking: at most one writer per identity is assumed.
type Storage struct {
	BaseDir string
}

// FileStats holds metadata about a file without reading its contents.
type FileStats struct {
	SizeBytes int64
	ModTime   time.Time
}

var unsafeIdentityChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// PathFor returns the store path for identity. Characters that are unsafe
// in file names are replaced so an identity can never escape BaseDir.
func (s *Storage) PathFor(identity string) string {
	name := unsafeIdentityChars.ReplaceAllString(identity, "_")
	return filepath.Join(s.BaseDir, FilePrefix+name+FileExt)
}

// SaveFile writes content to filePath atomically: the data goes to a temp
// file in the same directory which then replaces filePath, so a concurrent
// reader sees either the old or the new file, never a partial one.
func (s *Storage) SaveFile(filePath string, content []byte) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp_"+filepath.Base(filePath)+"_*")
	if err != nil {
		return fmt.Errorf("error creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("error saving file: %w", err)
	}
	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("error saving file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("error syncing file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error closing file: %w", err)
	}
	if err := os.Rename(tmpName, filePath); err != nil {
		return fmt.Errorf("error replacing file: %w", err)
	}
	return nil
}

// ReadFile returns the file contents. A missing file is reported with an
// error matching fs.ErrNotExist.
func (s *Storage) ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return data, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !errors.Is(err, fs.ErrNotExist)
}

// HasFile reports whether fn exists. Stat errors other than "not exist"
// count as present so the following read surfaces them.
func (s *Storage) HasFile(fn string) bool {
	return fileExists(fn)
}

// GetFileStats returns metadata about a file using os.Stat (no I/O overhead).
func (s *Storage) GetFileStats(filePath string) (*FileStats, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error getting file stats: %w", err)
	}

	return &FileStats{
		SizeBytes: info.Size(),
		ModTime:   info.ModTime(),
	}, nil
}
