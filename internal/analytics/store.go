package analytics

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

// SQLite emits DATETIME values as "YYYY-MM-DD HH:MM:SS" (UTC). All
// cutoff parameters are formatted the same way so string comparison
// matches chronological order.
const (
	sqliteTimeLayout = "2006-01-02 15:04:05"
	dateLayout       = "2006-01-02"
)

// Store defines the analytics engine operations.
type Store interface {
	RecordEvent(ctx context.Context, event *Event) (RecordResult, error)
	RefreshDailyRollup(ctx context.Context, date string) error
	Stats(ctx context.Context) (*Stats, error)
	DailyActive(ctx context.Context, days int) ([]DailyRollup, error)
	OptimizationsPerDay(ctx context.Context, days int) ([]DailyCount, error)
	CleanupOldEvents(ctx context.Context) (int64, error)
	RecentRequestCount(ctx context.Context, appID string, minutes int) (int64, error)
	Close() error
}

// SQLiteStore implements Store backed by a single SQLite database.
// All writes go through this one handle; WAL mode (enabled during
// migration) keeps concurrent readers unblocked.
type SQLiteStore struct {
	db  *sql.DB
	log zerolog.Logger

	// Prepared statements
	insertEvent  *sql.Stmt
	upsertRollup *sql.Stmt
	recentCount  *sql.Stmt
}

// NewSQLiteStore creates a SQLiteStore from an already-opened and
// migrated database.
func NewSQLiteStore(db *sql.DB, logger zerolog.Logger) (*SQLiteStore, error) {
	s := &SQLiteStore{db: db, log: logger}

	if err := s.prepareStatements(); err != nil {
		return nil, fmt.Errorf("prepare statements: %w", err)
	}

	return s, nil
}

// Open opens (creating if necessary) the database file at path, runs
// migrations, and returns a ready-to-use store. The parent directory is
// created if absent. Any failure here is an unrecoverable startup error.
func Open(path string, logger zerolog.Logger) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := NewMigrationRunner(db).Run(); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	store, err := NewSQLiteStore(db, logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init store: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) prepareStatements() error {
	var err error

	s.insertEvent, err = s.db.Prepare(`
		INSERT INTO events (app_id, event_type, version, platform, locale, metadata)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}

	s.upsertRollup, err = s.db.Prepare(`
		INSERT INTO daily_rollup (date, unique_count, event_count, last_updated)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(date) DO UPDATE SET
			unique_count = excluded.unique_count,
			event_count  = excluded.event_count,
			last_updated = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return err
	}

	s.recentCount, err = s.db.Prepare(`
		SELECT COUNT(*) FROM events WHERE app_id = ? AND created_at > ?
	`)
	if err != nil {
		return err
	}

	return nil
}

// RecordEvent appends one event to the log. The id and created_at are
// assigned by the database; events are immutable once written. After a
// successful insert the current day's rollup is refreshed in the same
// call; a refresh failure never fails the write — it is logged and
// reported via RecordResult.RollupWarning, and the rollup corrects
// itself on the next event for that date.
func (s *SQLiteStore) RecordEvent(ctx context.Context, event *Event) (RecordResult, error) {
	metadata := event.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return RecordResult{}, fmt.Errorf("serialize metadata: %w", err)
	}

	var locale sql.NullString
	if event.Locale != "" {
		locale = sql.NullString{String: event.Locale, Valid: true}
	}

	res, err := s.insertEvent.ExecContext(ctx,
		event.AppID, event.EventType, event.Version, event.Platform,
		locale, string(metadataJSON),
	)
	if err != nil {
		return RecordResult{}, fmt.Errorf("insert event: %w", err)
	}

	if id, err := res.LastInsertId(); err == nil {
		event.ID = id
	}

	result := RecordResult{}
	today := time.Now().UTC().Format(dateLayout)
	if err := s.RefreshDailyRollup(ctx, today); err != nil {
		s.log.Warn().Err(err).Str("date", today).Msg("daily rollup refresh failed")
		result.RollupWarning = err
	}

	return result, nil
}

// CountEvents returns the total number of rows in the event log.
func (s *SQLiteStore) CountEvents(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM events").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return n, nil
}

// parseTimestamp tries the SQLite timestamp formats seen in practice.
func parseTimestamp(s string) (time.Time, error) {
	formats := []string{
		sqliteTimeLayout,
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05Z",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse timestamp: %s", s)
}

// Close releases all prepared statements and the database connection.
func (s *SQLiteStore) Close() error {
	stmts := []*sql.Stmt{s.insertEvent, s.upsertRollup, s.recentCount}
	for _, stmt := range stmts {
		if stmt != nil {
			stmt.Close()
		}
	}
	return s.db.Close()
}
