package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/claude/mapfit/internal/workout"
)

// FileStore keeps the workout log in a single JSON file — the zero-setup
// backend for local development. Writes go through a temp file and rename
// so a crash mid-write never leaves a truncated log.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore at path, creating parent directories as
// needed. The file itself is created on first Save.
func NewFileStore(path string) (*FileStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data dir %s: %w", dir, err)
		}
	}
	return &FileStore{path: path}, nil
}

// Save overwrites the log file with the encoded records.
func (s *FileStore) Save(_ context.Context, records []workout.Record) error {
	payload, err := workout.EncodeLog(records)
	if err != nil {
		return fmt.Errorf("encoding workout log: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}

// Load reads and decodes the log file. A missing file is an empty log.
func (s *FileStore) Load(_ context.Context) ([]workout.Record, error) {
	payload, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	return workout.DecodeLog(payload)
}

// Close is a no-op; the file is not held open between calls.
func (s *FileStore) Close() error {
	return nil
}
