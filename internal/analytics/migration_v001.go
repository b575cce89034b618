package analytics

import "database/sql"

// migrateV001 creates the initial Beacon schema: the append-only events
// log, the materialized daily_rollup table, and all secondary indexes.
// Every statement uses IF NOT EXISTS for idempotency.
func migrateV001(tx *sql.Tx) error {
	stmts := []string{
		// ── Tables ──────────────────────────────────────────────

		`CREATE TABLE IF NOT EXISTS events (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			app_id     TEXT NOT NULL,
			event_type TEXT NOT NULL,
			version    TEXT NOT NULL,
			platform   TEXT NOT NULL,
			locale     TEXT,
			metadata   TEXT NOT NULL DEFAULT '{}',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS daily_rollup (
			date         DATE PRIMARY KEY,
			unique_count INTEGER NOT NULL DEFAULT 0,
			event_count  INTEGER NOT NULL DEFAULT 0,
			last_updated DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,

		// ── Indexes ────────────────────────────────────────────

		`CREATE INDEX IF NOT EXISTS idx_events_app_id     ON events(app_id)`,
		`CREATE INDEX IF NOT EXISTS idx_events_event_type ON events(event_type)`,
		`CREATE INDEX IF NOT EXISTS idx_events_created_at ON events(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_events_version    ON events(version)`,
		`CREATE INDEX IF NOT EXISTS idx_events_platform   ON events(platform)`,
		`CREATE INDEX IF NOT EXISTS idx_rollup_date       ON daily_rollup(date)`,
	}

	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
