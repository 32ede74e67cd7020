package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveOutDir(t *testing.T) {
	assert.Equal(t, "/tmp/reports", resolveOutDir("/tmp/reports", "ignored"))
	assert.Equal(t, "/var/out", resolveOutDir("", "/var/out"))
	// An empty value from both sources must never reach os.MkdirAll.
	assert.Equal(t, ".", resolveOutDir("", ""))
}

func TestDebugFlagRegistered(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("debug")
	require.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)
}

func TestWriteReportEmptyDir(t *testing.T) {
	dir := t.TempDir()
	path, err := writeReport(dir, "report.txt", "content")
	require.NoError(t, err)
	assert.Contains(t, path, dir)
}
