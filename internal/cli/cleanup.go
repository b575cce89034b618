package cli

import (
	"context"
	"fmt"

	"github.com/runnerr0/beacon/internal/analytics"
)

// Execute implements the go-flags Commander interface for CleanupCommand.
// Scheduling is deliberately external: cron or a supervisor invokes this
// command, the engine never runs it on its own.
func (c *CleanupCommand) Execute(args []string) error {
	store, _, err := openStore(c.globals)
	if err != nil {
		return err
	}
	defer store.Close()

	return c.executeWithStore(store)
}

func (c *CleanupCommand) executeWithStore(store analytics.Store) error {
	deleted, err := store.CleanupOldEvents(context.Background())
	if err != nil {
		return fmt.Errorf("cleanup old events: %w", err)
	}

	if c.globals != nil && c.globals.JSON {
		return printJSON(map[string]int64{"deleted": deleted})
	}

	fmt.Printf("Deleted %d events older than %d days\n", deleted, analytics.RetentionDays)
	return nil
}
