package analytics

import (
	"context"
	"fmt"
	"time"
)

// RecentRequestCount returns how many events the given app recorded in
// the last minutes minutes. It only reports the count; whether to admit
// or reject the next request is the caller's policy.
func (s *SQLiteStore) RecentRequestCount(ctx context.Context, appID string, minutes int) (int64, error) {
	if minutes < 1 {
		minutes = 1
	}
	cutoff := time.Now().UTC().Add(-time.Duration(minutes) * time.Minute).Format(sqliteTimeLayout)

	var count int64
	err := s.recentCount.QueryRowContext(ctx, appID, cutoff).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count recent requests: %w", err)
	}
	return count, nil
}
