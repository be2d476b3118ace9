package sysinfo

import (
	"testing"
	"time"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in         uint64
		wantPrefix string
	}{
		{512, "512 B"},
		{1536, "1.5 KB"},
		{1024 * 1024, "1.0 MB"},
		{500 * 1024 * 1024 * 1024, "500.0 GB"},
	}

	for _, tc := range tests {
		got := FormatBytes(tc.in)
		if len(got) < len(tc.wantPrefix) || got[:len(tc.wantPrefix)] != tc.wantPrefix {
			t.Fatalf("FormatBytes(%d) = %q; want prefix %q", tc.in, got, tc.wantPrefix)
		}
	}
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0 days, 0 hours, 0 minutes."},
		{time.Minute, "0 days, 0 hours, 1 minute."},
		{25*time.Hour + 2*time.Minute, "1 day, 1 hour, 2 minutes."},
		{3*24*time.Hour + 5*time.Hour + 59*time.Second, "3 days, 5 hours, 0 minutes."},
		{-time.Hour, "0 days, 0 hours, 0 minutes."},
	}

	for _, tc := range tests {
		if got := FormatUptime(tc.in); got != tc.want {
			t.Fatalf("FormatUptime(%v) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatCount(t *testing.T) {
	if got := FormatCount(1834); got != "1,834" {
		t.Fatalf("FormatCount thousands failed: got %q", got)
	}
	if got := FormatCount(7); got != "7" {
		t.Fatalf("FormatCount small failed: got %q", got)
	}
}

func TestCollapseSpaces(t *testing.T) {
	if got := collapseSpaces("Intel(R)  Core(TM)   i7  CPU"); got != "Intel(R) Core(TM) i7 CPU" {
		t.Fatalf("collapseSpaces failed: got %q", got)
	}
	if got := collapseSpaces(" padded "); got != "padded" {
		t.Fatalf("collapseSpaces trim failed: got %q", got)
	}
}
