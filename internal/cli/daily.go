package cli

import (
	"context"
	"fmt"

	"github.com/runnerr0/beacon/internal/analytics"
)

// Execute implements the go-flags Commander interface for DailyCommand.
func (c *DailyCommand) Execute(args []string) error {
	store, _, err := openStore(c.globals)
	if err != nil {
		return err
	}
	defer store.Close()

	return c.executeWithStore(store)
}

func (c *DailyCommand) executeWithStore(store analytics.Store) error {
	rows, err := store.DailyActive(context.Background(), c.Days)
	if err != nil {
		return fmt.Errorf("get daily active: %w", err)
	}

	if c.globals != nil && c.globals.JSON {
		type dailyJSON struct {
			Date        string `json:"date"`
			UniqueCount int64  `json:"unique_count"`
			EventCount  int64  `json:"event_count"`
		}
		out := make([]dailyJSON, len(rows))
		for i, r := range rows {
			out[i] = dailyJSON{Date: r.Date, UniqueCount: r.UniqueCount, EventCount: r.EventCount}
		}
		return printJSON(out)
	}

	if len(rows) == 0 {
		fmt.Println("No rollup data in window")
		return nil
	}

	fmt.Printf("%-12s %8s %8s\n", "Date", "Users", "Events")
	for _, r := range rows {
		fmt.Printf("%-12s %8d %8d\n", r.Date, r.UniqueCount, r.EventCount)
	}
	return nil
}
