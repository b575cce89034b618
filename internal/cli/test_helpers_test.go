package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/beacon/internal/analytics"
	"github.com/runnerr0/beacon/internal/config"
)

// captureOutput captures stdout during fn execution and returns it as a string.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// openTempStore opens a file-backed store under a temp dir.
func openTempStore(t *testing.T) *analytics.SQLiteStore {
	t.Helper()
	store, err := analytics.Open(filepath.Join(t.TempDir(), "test.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// isolateDB points BEACON_DB_PATH into a temp dir so commands that open
// the default store never touch the real one.
func isolateDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "analytics.db")
	t.Setenv(config.EnvDBPath, path)
	return path
}
