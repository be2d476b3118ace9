package sysinfo

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

const perfLogTimeLayout = "2006-01-02 15:04:05"

// PerfLogPath returns the per-user performance log location inside dir.
func PerfLogPath(dir, user string) string {
	if user == "" {
		user = "unknown"
	}
	return filepath.Join(dir, user+"-sysbanner.log")
}

// OpenPerfLog truncates the performance log and writes its header. The
// returned file receives one timing line per collector.
func OpenPerfLog(dir, user string, now time.Time) (io.WriteCloser, error) {
	path := PerfLogPath(dir, user)
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create performance log %s: %w", path, err)
	}
	if _, err := fmt.Fprintf(f, "sysbanner performance log %s\n", now.Format(perfLogTimeLayout)); err != nil {
		f.Close()
		return nil, fmt.Errorf("write performance log header: %w", err)
	}
	return f, nil
}
