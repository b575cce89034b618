package cli

import (
	"context"
	"fmt"

	"github.com/runnerr0/beacon/internal/analytics"
)

// statsJSON is the JSON output structure for the stats command.
type statsJSON struct {
	Version   string                `json:"version"`
	Today     analytics.WindowStats `json:"today"`
	Week      analytics.WindowStats `json:"week"`
	Month     analytics.WindowStats `json:"month"`
	Versions  map[string]int64      `json:"versions"`
	Platforms map[string]int64      `json:"platforms"`
}

// Execute implements the go-flags Commander interface for StatsCommand.
func (c *StatsCommand) Execute(args []string) error {
	store, _, err := openStore(c.globals)
	if err != nil {
		return err
	}
	defer store.Close()

	return c.executeWithStore(store)
}

// executeWithStore runs stats against a provided store (for testing).
func (c *StatsCommand) executeWithStore(store analytics.Store) error {
	stats, err := store.Stats(context.Background())
	if err != nil {
		return fmt.Errorf("get stats: %w", err)
	}

	if c.globals != nil && c.globals.JSON {
		return c.printStatsJSON(stats)
	}
	return c.printStatsHuman(stats)
}

func (c *StatsCommand) printStatsHuman(stats *analytics.Stats) error {
	fmt.Println("Beacon Usage")
	fmt.Println("============")
	fmt.Printf("Today:   %6d users  %8d events\n", stats.Today.Users, stats.Today.Events)
	fmt.Printf("Week:    %6d users  %8d events\n", stats.Week.Users, stats.Week.Events)
	fmt.Printf("Month:   %6d users  %8d events\n", stats.Month.Users, stats.Month.Events)

	if len(stats.Versions) > 0 {
		fmt.Println()
		fmt.Println("Versions (distinct users, past month):")
		for _, vc := range stats.Versions {
			fmt.Printf("  %-20s %d\n", vc.Value, vc.Count)
		}
	}

	if len(stats.Platforms) > 0 {
		fmt.Println()
		fmt.Println("Platforms (distinct users, past month):")
		for _, vc := range stats.Platforms {
			fmt.Printf("  %-20s %d\n", vc.Value, vc.Count)
		}
	}

	return nil
}

func (c *StatsCommand) printStatsJSON(stats *analytics.Stats) error {
	out := statsJSON{
		Version:   c.version,
		Today:     stats.Today,
		Week:      stats.Week,
		Month:     stats.Month,
		Versions:  make(map[string]int64, len(stats.Versions)),
		Platforms: make(map[string]int64, len(stats.Platforms)),
	}
	for _, vc := range stats.Versions {
		out.Versions[vc.Value] = vc.Count
	}
	for _, vc := range stats.Platforms {
		out.Platforms[vc.Value] = vc.Count
	}
	return printJSON(out)
}
