// Package store provides persistent storage for named holiday calendars
package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	bizerror "github.com/msto63/bizclock/foundation/core/error"
	"github.com/msto63/bizclock/foundation/utils/timex"
)

// Holiday is one closed calendar date
type Holiday struct {
	ID        string
	Calendar  string
	Date      string
	Name      string
	CreatedAt time.Time
}

// Store is the interface for holiday storage
type Store interface {
	Add(ctx context.Context, calendar, date, name string) (*Holiday, error)
	Remove(ctx context.Context, calendar, date string) error
	List(ctx context.Context, calendar string) ([]*Holiday, error)
	Dates(ctx context.Context, calendar string) ([]string, error)
	Close() error
}

// SQLiteHolidayStore implements Store using SQLite
type SQLiteHolidayStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// Config holds configuration for the SQLite holiday store
type Config struct {
	Path string
}

// DefaultConfig returns the default store configuration
func DefaultConfig() Config {
	return Config{
		Path: "./data/holidays.db",
	}
}

// NewSQLiteHolidayStore opens or creates the database at cfg.Path
func NewSQLiteHolidayStore(cfg Config) (*SQLiteHolidayStore, error) {
	if cfg.Path == "" {
		cfg = DefaultConfig()
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		return nil, dbError(err, "failed to create data directory", "store.Open")
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, dbError(err, "failed to open database", "store.Open")
	}

	store := &SQLiteHolidayStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, dbError(err, "failed to initialize schema", "store.Open")
	}

	return store, nil
}

func (s *SQLiteHolidayStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS holidays (
		id TEXT PRIMARY KEY,
		calendar TEXT NOT NULL,
		date TEXT NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL,
		UNIQUE (calendar, date)
	);

	CREATE INDEX IF NOT EXISTS idx_holidays_calendar ON holidays(calendar, date);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Add records date as a holiday of calendar. The date is normalized to
// YYYY-MM-DD; adding the same date twice fails with DUPLICATE_ENTRY.
func (s *SQLiteHolidayStore) Add(ctx context.Context, calendar, date, name string) (*Holiday, error) {
	day, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	h := &Holiday{
		ID:        uuid.New().String(),
		Calendar:  calendar,
		Date:      day,
		Name:      strings.TrimSpace(name),
		CreatedAt: time.Now().UTC(),
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO holidays (id, calendar, date, name, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, h.ID, h.Calendar, h.Date, h.Name, h.CreatedAt)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return nil, bizerror.Newf("holiday %s already exists in calendar %q", day, calendar).
				WithCode(bizerror.CodeDuplicateEntry).
				WithOperation("store.Add").
				WithDetail("calendar", calendar).
				WithDetail("date", day)
		}
		return nil, dbError(err, "failed to insert holiday", "store.Add")
	}

	return h, nil
}

// Remove deletes date from calendar
func (s *SQLiteHolidayStore) Remove(ctx context.Context, calendar, date string) error {
	day, err := normalizeDate(date)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, `DELETE FROM holidays WHERE calendar = ? AND date = ?`, calendar, day)
	if err != nil {
		return dbError(err, "failed to delete holiday", "store.Remove")
	}

	if n, _ := result.RowsAffected(); n == 0 {
		return bizerror.Newf("holiday %s not found in calendar %q", day, calendar).
			WithCode(bizerror.CodeNotFound).
			WithOperation("store.Remove").
			WithDetail("calendar", calendar).
			WithDetail("date", day)
	}
	return nil
}

// List returns the holidays of calendar ordered by date
func (s *SQLiteHolidayStore) List(ctx context.Context, calendar string) ([]*Holiday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, calendar, date, name, created_at
		FROM holidays
		WHERE calendar = ?
		ORDER BY date ASC
	`, calendar)
	if err != nil {
		return nil, dbError(err, "failed to query holidays", "store.List")
	}
	defer rows.Close()

	var holidays []*Holiday
	for rows.Next() {
		h := &Holiday{}
		if err := rows.Scan(&h.ID, &h.Calendar, &h.Date, &h.Name, &h.CreatedAt); err != nil {
			return nil, dbError(err, "failed to scan holiday", "store.List")
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(err, "failed to read holidays", "store.List")
	}

	return holidays, nil
}

// Dates returns the dates of calendar as YYYY-MM-DD strings
func (s *SQLiteHolidayStore) Dates(ctx context.Context, calendar string) ([]string, error) {
	holidays, err := s.List(ctx, calendar)
	if err != nil {
		return nil, err
	}

	dates := make([]string, len(holidays))
	for i, h := range holidays {
		dates[i] = h.Date
	}
	return dates, nil
}

// Close closes the database connection
func (s *SQLiteHolidayStore) Close() error {
	return s.db.Close()
}

func normalizeDate(date string) (string, error) {
	t, err := time.Parse(timex.ISO8601Date, strings.TrimSpace(date))
	if err != nil {
		return "", bizerror.Wrap(err, "holiday date must be YYYY-MM-DD").
			WithCode(bizerror.CodeInvalidInput).
			WithDetail("date", date)
	}
	return t.Format(timex.ISO8601Date), nil
}

func dbError(err error, msg, op string) *bizerror.Error {
	return bizerror.Wrap(err, msg).
		WithCode(bizerror.CodeDatabaseError).
		WithOperation(op)
}
