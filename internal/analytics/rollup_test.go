package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rollupRow(t *testing.T, s *SQLiteStore, date string) (int64, int64) {
	t.Helper()
	var uniqueCount, eventCount int64
	err := s.db.QueryRow(
		"SELECT unique_count, event_count FROM daily_rollup WHERE date = ?", date,
	).Scan(&uniqueCount, &eventCount)
	require.NoError(t, err)
	return uniqueCount, eventCount
}

func TestRefreshDailyRollup_Idempotent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	day := time.Now().UTC().AddDate(0, 0, -3)
	date := day.Format(dateLayout)

	for _, appID := range []string{"a", "b", "b", "c"} {
		e := &Event{AppID: appID, EventType: "x", Version: "1.0", Platform: "linux"}
		recordAt(t, store, e, day)
	}

	require.NoError(t, store.RefreshDailyRollup(ctx, date))
	u1, e1 := rollupRow(t, store, date)

	require.NoError(t, store.RefreshDailyRollup(ctx, date))
	u2, e2 := rollupRow(t, store, date)

	assert.Equal(t, u1, u2, "refresh must be idempotent")
	assert.Equal(t, e1, e2, "refresh must be idempotent")
	assert.Equal(t, int64(3), u1, "distinct app ids")
	assert.Equal(t, int64(4), e1, "total events")
}

func TestRefreshDailyRollup_MatchesRawScan(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	day := time.Now().UTC().AddDate(0, 0, -1)
	date := day.Format(dateLayout)

	for i, appID := range []string{"x", "y", "x", "z", "y", "y"} {
		e := &Event{AppID: appID, EventType: "x", Version: "1.0", Platform: "linux"}
		recordAt(t, store, e, day.Add(time.Duration(i)*time.Minute))
	}

	require.NoError(t, store.RefreshDailyRollup(ctx, date))
	uniqueCount, eventCount := rollupRow(t, store, date)

	var scanUnique, scanTotal int64
	err := store.db.QueryRow(
		"SELECT COUNT(DISTINCT app_id), COUNT(*) FROM events WHERE DATE(created_at) = ?", date,
	).Scan(&scanUnique, &scanTotal)
	require.NoError(t, err)

	assert.Equal(t, scanUnique, uniqueCount, "rollup must equal a direct scan")
	assert.Equal(t, scanTotal, eventCount, "rollup must equal a direct scan")
}

func TestRefreshDailyRollup_OverwritesStaleRow(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	day := time.Now().UTC().AddDate(0, 0, -2)
	date := day.Format(dateLayout)

	// Seed a stale row with bogus counts; the refresh is a full
	// scan-and-replace, not a merge.
	_, err := store.db.Exec(
		"INSERT INTO daily_rollup (date, unique_count, event_count) VALUES (?, 99, 99)", date,
	)
	require.NoError(t, err)

	e := &Event{AppID: "a", EventType: "x", Version: "1.0", Platform: "linux"}
	recordAt(t, store, e, day)

	require.NoError(t, store.RefreshDailyRollup(ctx, date))
	uniqueCount, eventCount := rollupRow(t, store, date)
	assert.Equal(t, int64(1), uniqueCount)
	assert.Equal(t, int64(1), eventCount)
}

func TestRefreshDailyRollup_ZeroEventDate(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	date := "2001-01-01"
	require.NoError(t, store.RefreshDailyRollup(ctx, date))

	uniqueCount, eventCount := rollupRow(t, store, date)
	assert.Equal(t, int64(0), uniqueCount)
	assert.Equal(t, int64(0), eventCount)
}
