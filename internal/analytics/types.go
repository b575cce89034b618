package analytics

import "time"

// EventOptimizationCompleted is the event type emitted when a client
// finishes an optimization run. OptimizationsPerDay counts these.
const EventOptimizationCompleted = "optimization_completed"

// Event represents a single telemetry occurrence reported by a client app.
type Event struct {
	ID        int64
	AppID     string
	EventType string
	Version   string
	Platform  string
	Locale    string         // optional, stored as NULL when empty
	Metadata  map[string]any // serialized to JSON text, "{}" when nil
	CreatedAt time.Time
}

// RecordResult reports the outcome of RecordEvent. The event insert
// itself either succeeded (error was nil) or failed; RollupWarning
// carries a non-fatal failure of the same-call daily rollup refresh.
// Callers may ignore it — the rollup self-heals on the next event.
type RecordResult struct {
	RollupWarning error
}

// DailyRollup is one materialized per-date aggregate row.
type DailyRollup struct {
	Date        string // calendar date, "2006-01-02" (UTC)
	UniqueCount int64
	EventCount  int64
	LastUpdated time.Time
}

// WindowStats holds distinct-user and total-event counts for one
// time window.
type WindowStats struct {
	Users  int64 `json:"users"`
	Events int64 `json:"events"`
}

// ValueCount pairs a version or platform value with its distinct-user
// count. Slices of ValueCount are ordered by Count descending.
type ValueCount struct {
	Value string
	Count int64
}

// Stats is the aggregate report returned by the Stats query.
// Versions and Platforms are ordered most-popular first.
type Stats struct {
	Today     WindowStats
	Week      WindowStats
	Month     WindowStats
	Versions  []ValueCount
	Platforms []ValueCount
}

// DailyCount pairs a calendar date with an event count.
type DailyCount struct {
	Date  string
	Count int64
}
