// Package highscore persists the single best score in a plain text file.
//
// Every operation returns a Result instead of an error so callers can tell
// a missing file from a corrupt one, while still treating anything other
// than StatusOK as "no score available".
package highscore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// Status classifies the outcome of a load or save.
type Status int

const (
	StatusOK Status = iota
	StatusNotFound
	StatusParseError
	StatusReadError
	StatusWriteError
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotFound:
		return "not found"
	case StatusParseError:
		return "parse error"
	case StatusReadError:
		return "read error"
	case StatusWriteError:
		return "write error"
	default:
		return "unknown"
	}
}

// Result is the outcome of a high score operation.
// Score is meaningful only when Status is StatusOK.
type Result struct {
	Status Status
	Score  int
	Err    error
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// ScoreOrZero returns the score, or 0 for any failure.
func (r Result) ScoreOrZero() int {
	if !r.OK() {
		return 0
	}
	return r.Score
}

// Store reads and writes the high score file.
// It is safe for concurrent use.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store for the given path. A leading ~ expands to
// the home directory; if that fails the path is used as given.
func NewStore(path string) *Store {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return &Store{path: path}
}

// Path returns the resolved file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the stored high score.
func (s *Store) Load() Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Result{Status: StatusNotFound, Err: err}
	}
	if err != nil {
		return Result{Status: StatusReadError, Err: fmt.Errorf("highscore: cannot read %s: %w", s.path, err)}
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		// An empty file is how a cleared score looks.
		return Result{Status: StatusOK, Score: 0}
	}
	score, err := strconv.Atoi(text)
	if err != nil {
		return Result{Status: StatusParseError, Err: fmt.Errorf("highscore: cannot parse %s: %w", s.path, err)}
	}
	if score < 0 {
		return Result{Status: StatusParseError, Err: fmt.Errorf("highscore: negative score %d in %s", score, s.path)}
	}
	return Result{Status: StatusOK, Score: score}
}

// Save overwrites the stored high score. The value is written to a
// temporary file in the same directory and renamed into place.
func (s *Store) Save(score int) Result {
	if score < 0 {
		return Result{Status: StatusWriteError, Err: fmt.Errorf("highscore: refusing to save negative score %d", score)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{Status: StatusWriteError, Err: fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)}
	}

	tmp, err := os.CreateTemp(dir, ".highscore-*")
	if err != nil {
		return Result{Status: StatusWriteError, Err: fmt.Errorf("highscore: cannot create temp file: %w", err)}
	}
	tmpName := tmp.Name()

	_, writeErr := tmp.WriteString(strconv.Itoa(score) + "\n")
	closeErr := tmp.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		//nolint:errcheck // Best-effort cleanup, the save already failed
		os.Remove(tmpName)
		return Result{Status: StatusWriteError, Err: fmt.Errorf("highscore: cannot write temp file: %w", err)}
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		//nolint:errcheck // Best-effort cleanup, the save already failed
		os.Remove(tmpName)
		return Result{Status: StatusWriteError, Err: fmt.Errorf("highscore: cannot replace %s: %w", s.path, err)}
	}
	return Result{Status: StatusOK, Score: score}
}

// Clear removes the stored high score. A missing file is not an error.
func (s *Store) Clear() Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Result{Status: StatusWriteError, Err: fmt.Errorf("highscore: cannot remove %s: %w", s.path, err)}
	}
	return Result{Status: StatusOK}
}
