package analytics

import (
	"context"
	"fmt"
)

// RefreshDailyRollup recomputes the aggregate counters for one calendar
// date (UTC, "2006-01-02") from the raw event log and upserts the
// daily_rollup row, overwriting any previous values. The recompute is a
// full scan-and-replace rather than an increment, so concurrent
// refreshes for the same date are last-writer-wins and always correct,
// and a failed refresh is repaired by the next one.
//
// This runs on every event write and is O(events-per-day) per call. The
// upstream design accepts that cost for the idempotency it buys; an
// incremental counter with periodic reconciliation would be the next
// step if write volume ever makes this scan noticeable.
func (s *SQLiteStore) RefreshDailyRollup(ctx context.Context, date string) error {
	var uniqueCount int64
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT app_id) FROM events WHERE DATE(created_at) = ?
	`, date).Scan(&uniqueCount)
	if err != nil {
		return fmt.Errorf("count unique apps for %s: %w", date, err)
	}

	var eventCount int64
	err = s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM events WHERE DATE(created_at) = ?
	`, date).Scan(&eventCount)
	if err != nil {
		return fmt.Errorf("count events for %s: %w", date, err)
	}

	if _, err := s.upsertRollup.ExecContext(ctx, date, uniqueCount, eventCount); err != nil {
		return fmt.Errorf("upsert rollup for %s: %w", date, err)
	}

	return nil
}
