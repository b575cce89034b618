package analytics

import (
	"context"
	"fmt"
	"time"
)

// RetentionDays is the fixed horizon beyond which raw events are
// deleted. Rollup rows are never pruned; they are the durable summary
// that outlives the raw log.
const RetentionDays = 90

// CleanupOldEvents deletes all events whose created_at timestamp is
// older than the retention horizon and returns how many rows were
// removed. Scheduling is the caller's concern — nothing in the engine
// invokes this on a timer.
func (s *SQLiteStore) CleanupOldEvents(ctx context.Context) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -RetentionDays).Format(sqliteTimeLayout)

	res, err := s.db.ExecContext(ctx, "DELETE FROM events WHERE created_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup old events: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		s.log.Info().Int64("deleted", deleted).Msg("cleaned up old events")
	}
	return deleted, nil
}
