package sysinfo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerfLogPath(t *testing.T) {
	assert.Equal(t, filepath.Join("/tmp", "alice-sysbanner.log"), PerfLogPath("/tmp", "alice"))
	assert.Equal(t, filepath.Join("/tmp", "unknown-sysbanner.log"), PerfLogPath("/tmp", ""))
}

func TestOpenPerfLogTruncatesAndWritesHeader(t *testing.T) {
	dir := t.TempDir()
	path := PerfLogPath(dir, "alice")
	require.NoError(t, os.WriteFile(path, []byte("stale content from an earlier run\n"), 0o644))

	w, err := OpenPerfLog(dir, "alice", time.Date(2024, 3, 1, 9, 5, 7, 0, time.UTC))
	require.NoError(t, err)
	_, err = w.Write([]byte("user, 0.001\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "sysbanner performance log 2024-03-01 09:05:07\nuser, 0.001\n", string(data))
}

func TestOpenPerfLogMissingDir(t *testing.T) {
	_, err := OpenPerfLog(filepath.Join(t.TempDir(), "missing"), "alice", time.Now())

	assert.Error(t, err)
}
