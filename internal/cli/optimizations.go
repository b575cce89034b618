package cli

import (
	"context"
	"fmt"

	"github.com/runnerr0/beacon/internal/analytics"
)

// Execute implements the go-flags Commander interface for OptimizationsCommand.
func (c *OptimizationsCommand) Execute(args []string) error {
	store, _, err := openStore(c.globals)
	if err != nil {
		return err
	}
	defer store.Close()

	return c.executeWithStore(store)
}

func (c *OptimizationsCommand) executeWithStore(store analytics.Store) error {
	rows, err := store.OptimizationsPerDay(context.Background(), c.Days)
	if err != nil {
		return fmt.Errorf("get optimizations per day: %w", err)
	}

	if c.globals != nil && c.globals.JSON {
		type countJSON struct {
			Date  string `json:"date"`
			Count int64  `json:"count"`
		}
		out := make([]countJSON, len(rows))
		for i, r := range rows {
			out[i] = countJSON{Date: r.Date, Count: r.Count}
		}
		return printJSON(out)
	}

	if len(rows) == 0 {
		fmt.Println("No optimizations in window")
		return nil
	}

	fmt.Printf("%-12s %8s\n", "Date", "Count")
	for _, r := range rows {
		fmt.Printf("%-12s %8d\n", r.Date, r.Count)
	}
	return nil
}
