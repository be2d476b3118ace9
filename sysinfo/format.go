// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatBytes converts a byte count to a human-readable string with appropriate units.
//
// Parameters:
//   - bytes: The number of bytes to format
//
// Returns:
//   - A formatted string with the most appropriate unit (B, KB, MB, GB, TB)
//
// Example: FormatBytes(1536) returns "1.5 KB"
func FormatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KB", "MB", "GB", "TB", "PB"}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), units[exp])
}

// FormatUptime converts a duration into the banner's uptime string.
//
// Parameters:
//   - uptime: The duration to format
//
// Returns:
//   - A string listing days, hours and minutes, e.g. "1 day, 5 hours, 30 minutes."
//
// All three units are always shown, zero values included. Negative durations
// are treated as zero.
func FormatUptime(uptime time.Duration) string {
	if uptime < 0 {
		uptime = 0
	}
	days := int(uptime.Hours() / 24)
	hours := int(uptime.Hours()) % 24
	mins := int(uptime.Minutes()) % 60

	return fmt.Sprintf("%d day%s, %d hour%s, %d minute%s.",
		days, plural(days), hours, plural(hours), mins, plural(mins))
}

// plural returns "s" if count is not 1, empty string otherwise.
func plural(count int) string {
	if count != 1 {
		return "s"
	}
	return ""
}

// FormatCount renders a package count with thousands separators.
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// collapseSpaces replaces runs of spaces with a single space.
func collapseSpaces(s string) string {
	return strings.Join(strings.FieldsFunc(s, func(r rune) bool { return r == ' ' }), " ")
}
