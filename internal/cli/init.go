package cli

import "fmt"

// Execute implements the go-flags Commander interface for InitCommand.
// A failure here is an unrecoverable startup error: the process exits
// non-zero and nothing is retried.
func (c *InitCommand) Execute(args []string) error {
	store, cfg, err := openStore(c.globals)
	if err != nil {
		return fmt.Errorf("initialize schema: %w", err)
	}
	defer store.Close()

	dbPath, err := resolveDBPath(c.globals, cfg)
	if err != nil {
		return err
	}
	fmt.Printf("Database initialized at %s\n", dbPath)
	return nil
}
