// Package session implements the gate in front of every journal command: a
// shared-secret login whose "authorized" flag is kept in a small YAML file so
// it survives between invocations.
package session

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the session state file used when none is configured.
const DefaultFile = ".daily-ratings-session.yaml"

var (
	ErrNoSecret      = errors.New("no password configured (set DAILY_RATING_PASSWORD)")
	ErrWrongPassword = errors.New("incorrect password")
	ErrNotLoggedIn   = errors.New("not logged in: run 'daily-ratings login' first")
)

// Gate reports and changes whether the caller is authorized.
type Gate interface {
	IsAuthorized() bool
	SetAuthorized(bool) error
}

// State is the on-disk session record.
type State struct {
	Authorized bool      `yaml:"authorized"`
	UpdatedAt  time.Time `yaml:"updated_at"`
}

// FileGate persists State at Path.
type FileGate struct {
	Path string
	Now  func() time.Time
}

func NewFileGate(path string) *FileGate {
	if path == "" {
		path = DefaultFile
	}
	return &FileGate{Path: path, Now: time.Now}
}

// Load reads the state file. A missing file is an unauthorized state.
func (g *FileGate) Load() (State, error) {
	var st State
	data, err := os.ReadFile(g.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return st, nil
		}
		return st, fmt.Errorf("failed to read session file: %w", err)
	}
	if err := yaml.Unmarshal(data, &st); err != nil {
		return State{}, fmt.Errorf("failed to parse session file: %w", err)
	}
	return st, nil
}

// IsAuthorized treats an unreadable session file as logged out.
func (g *FileGate) IsAuthorized() bool {
	st, err := g.Load()
	return err == nil && st.Authorized
}

// SetAuthorized writes the flag. Logging out removes the file.
func (g *FileGate) SetAuthorized(ok bool) error {
	if !ok {
		if err := os.Remove(g.Path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		return nil
	}

	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	out, err := yaml.Marshal(&State{Authorized: true, UpdatedAt: now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if dir := filepath.Dir(g.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("failed to create session directory: %w", err)
		}
	}
	if err := os.WriteFile(g.Path, out, 0o600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Login authorizes the gate when password matches secret.
func Login(g Gate, secret, password string) error {
	if secret == "" {
		return ErrNoSecret
	}
	if subtle.ConstantTimeCompare([]byte(secret), []byte(password)) != 1 {
		return ErrWrongPassword
	}
	return g.SetAuthorized(true)
}

// Require returns ErrNotLoggedIn unless the gate is authorized.
func Require(g Gate) error {
	if !g.IsAuthorized() {
		return ErrNotLoggedIn
	}
	return nil
}
