package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "modernc.org/sqlite"

	"github.com/claude/mapfit/internal/workout"
)

// SlotStore keeps the workout log in a named slot of a local SQLite file.
type SlotStore struct {
	db *sql.DB
}

// NewSlotStore opens (or creates) the SQLite database at path. The schema
// must already be in place — run RunMigrations first.
func NewSlotStore(ctx context.Context, path string) (*SlotStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data dir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening slot db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging slot db: %w", err)
	}
	return &SlotStore{db: db}, nil
}

// RunMigrations applies all pending migrations to the SQLite file at path.
func RunMigrations(path, migrationsPath string) error {
	m, err := migrate.New("file://"+migrationsPath, "sqlite://"+path)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

// Save overwrites the workout slot with the encoded log.
func (s *SlotStore) Save(ctx context.Context, records []workout.Record) error {
	payload, err := workout.EncodeLog(records)
	if err != nil {
		return fmt.Errorf("encoding workout log: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO slots (name, payload, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP`,
		SlotName, payload)
	if err != nil {
		return fmt.Errorf("writing slot %s: %w", SlotName, err)
	}
	return nil
}

// Load reads and decodes the workout slot. A missing slot is an empty log.
func (s *SlotStore) Load(ctx context.Context) ([]workout.Record, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM slots WHERE name = ?`, SlotName).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading slot %s: %w", SlotName, err)
	}
	return workout.DecodeLog(payload)
}

// Close closes the underlying database.
func (s *SlotStore) Close() error {
	return s.db.Close()
}
