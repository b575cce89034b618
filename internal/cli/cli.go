package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
)

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	Init          *InitCommand
	Record        *RecordCommand
	Stats         *StatsCommand
	Daily         *DailyCommand
	Optimizations *OptimizationsCommand
	Cleanup       *CleanupCommand
	Serve         *ServeCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "beacon"
	parser.LongDescription = "Embedded application analytics: append-only event log, daily rollups, and usage reporting over SQLite."

	cmds := &commands{
		Init:          &InitCommand{globals: &globals, version: version},
		Record:        &RecordCommand{globals: &globals, version: version},
		Stats:         &StatsCommand{globals: &globals, version: version},
		Daily:         &DailyCommand{globals: &globals, version: version},
		Optimizations: &OptimizationsCommand{globals: &globals, version: version},
		Cleanup:       &CleanupCommand{globals: &globals, version: version},
		Serve:         &ServeCommand{globals: &globals, version: version},
	}

	parser.AddCommand("init", "Initialize the analytics database", "Create the database file and schema. Safe to run repeatedly.", cmds.Init)
	parser.AddCommand("record", "Record a single event", "Append one event to the analytics log.", cmds.Record)
	parser.AddCommand("stats", "Show aggregate usage statistics", "Show today/week/month usage plus version and platform distributions.", cmds.Stats)
	parser.AddCommand("daily", "Show daily active users", "Show the materialized per-day unique user and event counts.", cmds.Daily)
	parser.AddCommand("optimizations", "Show optimizations per day", "Count completed optimizations per day from the raw event log.", cmds.Optimizations)
	parser.AddCommand("cleanup", "Delete events past retention", "Delete raw events older than the retention horizon. Rollup rows are kept.", cmds.Cleanup)
	parser.AddCommand("serve", "Start the analytics HTTP server", "Serve the event-recording and stats endpoints over HTTP.", cmds.Serve)

	return parser, &globals, cmds
}

// Run is the main entry point for the Beacon CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and executes the matched subcommand.
func RunWithArgs(version string, args []string) error {
	// Handle --version before parser (go-flags requires a subcommand, but
	// --version is valid without one).
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	for _, arg := range checkArgs {
		if arg == "--version" {
			fmt.Printf("beacon %s\n", version)
			return nil
		}
		if arg == "--" {
			break
		}
	}

	parser, _, _ := buildParser(version)

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}

	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok {
			if flagsErr.Type == goflags.ErrHelp {
				return nil
			}
		}
		return err
	}

	return nil
}
