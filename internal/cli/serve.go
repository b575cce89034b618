package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/runnerr0/beacon/internal/server"
)

// Execute implements the go-flags Commander interface for ServeCommand.
// The server runs until SIGINT or SIGTERM, then shuts down gracefully.
func (c *ServeCommand) Execute(args []string) error {
	store, cfg, err := openStore(c.globals)
	if err != nil {
		return err
	}
	defer store.Close()

	if c.Host != "" {
		cfg.Server.Host = c.Host
	}
	if c.Port != 0 {
		cfg.Server.Port = c.Port
	}

	logger := newLogger(c.globals, cfg)
	srv := server.New(store, cfg, logger)
	defer srv.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	return srv.ListenAndServe(ctx, addr)
}
