package analytics

import (
	"context"
	"fmt"
	"time"
)

// windowStats computes distinct-user and total-event counts for events
// whose calendar date satisfies the given comparison against date.
func (s *SQLiteStore) windowStats(ctx context.Context, op, date string) (WindowStats, error) {
	var w WindowStats
	query := fmt.Sprintf(`
		SELECT COUNT(DISTINCT app_id), COUNT(*)
		FROM events
		WHERE DATE(created_at) %s ?
	`, op)
	if err := s.db.QueryRowContext(ctx, query, date).Scan(&w.Users, &w.Events); err != nil {
		return WindowStats{}, err
	}
	return w, nil
}

// valueCounts returns distinct-user counts grouped by the given column
// (version or platform) over events since the given date, most popular
// first. The column name is a compile-time constant, never user input.
func (s *SQLiteStore) valueCounts(ctx context.Context, column, since string) ([]ValueCount, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(DISTINCT app_id) AS cnt
		FROM events
		WHERE DATE(created_at) >= ?
		GROUP BY %s
		ORDER BY cnt DESC
	`, column, column)

	rows, err := s.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []ValueCount
	for rows.Next() {
		var vc ValueCount
		if err := rows.Scan(&vc.Value, &vc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, vc)
	}
	return counts, rows.Err()
}

// Stats reports aggregate usage relative to now: counts for today, the
// trailing week and trailing month (calendar-date boundaries, inclusive),
// plus version and platform distributions over the month window. All
// numbers are computed live from the event log, not the rollup table.
func (s *SQLiteStore) Stats(ctx context.Context) (*Stats, error) {
	now := time.Now().UTC()
	today := now.Format(dateLayout)
	weekAgo := now.AddDate(0, 0, -7).Format(dateLayout)
	monthAgo := now.AddDate(0, 0, -30).Format(dateLayout)

	stats := &Stats{}
	var err error

	if stats.Today, err = s.windowStats(ctx, "=", today); err != nil {
		return nil, fmt.Errorf("today stats: %w", err)
	}
	if stats.Week, err = s.windowStats(ctx, ">=", weekAgo); err != nil {
		return nil, fmt.Errorf("week stats: %w", err)
	}
	if stats.Month, err = s.windowStats(ctx, ">=", monthAgo); err != nil {
		return nil, fmt.Errorf("month stats: %w", err)
	}

	if stats.Versions, err = s.valueCounts(ctx, "version", monthAgo); err != nil {
		return nil, fmt.Errorf("version distribution: %w", err)
	}
	if stats.Platforms, err = s.valueCounts(ctx, "platform", monthAgo); err != nil {
		return nil, fmt.Errorf("platform distribution: %w", err)
	}

	return stats, nil
}

// DailyActive returns the materialized per-date rollup rows for the last
// days days, ascending by date. Dates on which no event triggered a
// rollup refresh have no row and are simply absent from the result.
func (s *SQLiteStore) DailyActive(ctx context.Context, days int) ([]DailyRollup, error) {
	if days < 1 {
		days = 30
	}
	startDate := time.Now().UTC().AddDate(0, 0, -days).Format(dateLayout)

	rows, err := s.db.QueryContext(ctx, `
		SELECT date, unique_count, event_count, last_updated
		FROM daily_rollup
		WHERE date >= ?
		ORDER BY date ASC
	`, startDate)
	if err != nil {
		return nil, fmt.Errorf("query daily rollup: %w", err)
	}
	defer rows.Close()

	results := []DailyRollup{}
	for rows.Next() {
		var r DailyRollup
		var updatedStr string
		if err := rows.Scan(&r.Date, &r.UniqueCount, &r.EventCount, &updatedStr); err != nil {
			return nil, fmt.Errorf("scan rollup row: %w", err)
		}
		r.LastUpdated, _ = parseTimestamp(updatedStr)
		results = append(results, r)
	}
	return results, rows.Err()
}

// OptimizationsPerDay counts completed-optimization events per calendar
// date over the last days days, ascending. Computed live from the event
// log, independent of the rollup table.
func (s *SQLiteStore) OptimizationsPerDay(ctx context.Context, days int) ([]DailyCount, error) {
	if days < 1 {
		days = 30
	}
	startDate := time.Now().UTC().AddDate(0, 0, -days).Format(dateLayout)

	rows, err := s.db.QueryContext(ctx, `
		SELECT DATE(created_at) AS date, COUNT(*) AS count
		FROM events
		WHERE event_type = ? AND DATE(created_at) >= ?
		GROUP BY DATE(created_at)
		ORDER BY date ASC
	`, EventOptimizationCompleted, startDate)
	if err != nil {
		return nil, fmt.Errorf("query optimizations per day: %w", err)
	}
	defer rows.Close()

	results := []DailyCount{}
	for rows.Next() {
		var dc DailyCount
		if err := rows.Scan(&dc.Date, &dc.Count); err != nil {
			return nil, fmt.Errorf("scan daily count: %w", err)
		}
		results = append(results, dc)
	}
	return results, rows.Err()
}
