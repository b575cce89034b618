package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/runnerr0/beacon/internal/analytics"
)

// Execute implements the go-flags Commander interface for RecordCommand.
func (c *RecordCommand) Execute(args []string) error {
	if c.AppID == "" {
		return fmt.Errorf("--app-id is required for record command")
	}
	if c.EventType == "" {
		return fmt.Errorf("--event-type is required for record command")
	}
	if c.AppVer == "" {
		return fmt.Errorf("--app-version is required for record command")
	}
	if c.Platform == "" {
		return fmt.Errorf("--platform is required for record command")
	}

	var metadata map[string]any
	if c.Metadata != "" {
		if err := json.Unmarshal([]byte(c.Metadata), &metadata); err != nil {
			return fmt.Errorf("invalid --metadata JSON: %w", err)
		}
	}

	store, _, err := openStore(c.globals)
	if err != nil {
		return err
	}
	defer store.Close()

	event := &analytics.Event{
		AppID:     c.AppID,
		EventType: c.EventType,
		Version:   c.AppVer,
		Platform:  c.Platform,
		Locale:    c.Locale,
		Metadata:  metadata,
	}

	result, err := store.RecordEvent(context.Background(), event)
	if err != nil {
		return fmt.Errorf("record event: %w", err)
	}

	if c.globals.JSON {
		out := map[string]any{"id": event.ID, "status": "ok"}
		if result.RollupWarning != nil {
			out["rollup_warning"] = result.RollupWarning.Error()
		}
		return printJSON(out)
	}

	fmt.Printf("Recorded event %d (%s)\n", event.ID, event.EventType)
	if result.RollupWarning != nil {
		fmt.Printf("Warning: daily rollup refresh failed: %v\n", result.RollupWarning)
	}
	return nil
}
