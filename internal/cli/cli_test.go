package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionFlag(t *testing.T) {
	output := captureOutput(t, func() {
		err := RunWithArgs("0.1.0-test", []string{"--version"})
		assert.NoError(t, err)
	})
	assert.Contains(t, output, "beacon 0.1.0-test")
}

func TestVersionOutputFormat(t *testing.T) {
	output := captureOutput(t, func() {
		_ = RunWithArgs("1.2.3", []string{"--version"})
	})
	assert.Equal(t, "beacon 1.2.3", strings.TrimSpace(output))
}

func TestInitSubcommandRecognized(t *testing.T) {
	isolateDB(t)
	parser, _, _ := buildParser("test")
	_, err := parser.ParseArgs([]string{"--config", "/nonexistent/config.yaml", "init"})
	assert.NoError(t, err)
}

func TestStatsSubcommandRecognized(t *testing.T) {
	isolateDB(t)
	parser, _, _ := buildParser("test")
	_, err := parser.ParseArgs([]string{"--config", "/nonexistent/config.yaml", "stats"})
	assert.NoError(t, err)
}

func TestDailySubcommandRecognized(t *testing.T) {
	isolateDB(t)
	parser, _, _ := buildParser("test")
	_, err := parser.ParseArgs([]string{"--config", "/nonexistent/config.yaml", "daily", "--days", "7"})
	assert.NoError(t, err)
}

func TestOptimizationsSubcommandRecognized(t *testing.T) {
	isolateDB(t)
	parser, _, _ := buildParser("test")
	_, err := parser.ParseArgs([]string{"--config", "/nonexistent/config.yaml", "optimizations"})
	assert.NoError(t, err)
}

func TestCleanupSubcommandRecognized(t *testing.T) {
	isolateDB(t)
	parser, _, _ := buildParser("test")
	_, err := parser.ParseArgs([]string{"--config", "/nonexistent/config.yaml", "cleanup"})
	assert.NoError(t, err)
}

func TestRecordSubcommandRecognized(t *testing.T) {
	isolateDB(t)
	parser, _, _ := buildParser("test")
	_, err := parser.ParseArgs([]string{
		"--config", "/nonexistent/config.yaml", "record",
		"--app-id", "a", "--event-type", "x", "--app-version", "1.0", "--platform", "linux",
	})
	assert.NoError(t, err)
}

func TestRecordRequiresAppID(t *testing.T) {
	isolateDB(t)
	err := RunWithArgs("test", []string{"record", "--event-type", "x", "--app-version", "1.0", "--platform", "linux"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--app-id is required")
}

func TestRecordRequiresEventType(t *testing.T) {
	isolateDB(t)
	err := RunWithArgs("test", []string{"record", "--app-id", "a", "--app-version", "1.0", "--platform", "linux"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--event-type is required")
}

func TestRecordRejectsInvalidMetadata(t *testing.T) {
	isolateDB(t)
	err := RunWithArgs("test", []string{
		"record", "--app-id", "a", "--event-type", "x",
		"--app-version", "1.0", "--platform", "linux",
		"--metadata", "{not json",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --metadata JSON")
}
