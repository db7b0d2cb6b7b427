package utils

import (
	"testing"
	"time"
)

func TestToEpochMillis(t *testing.T) {
	tests := []struct {
		name string
		in   int64
		want int64
	}{
		{"ten-digit seconds scaled", 1_700_000_000, 1_700_000_000_000},
		{"thirteen-digit millis passed through", 1_700_000_000_000, 1_700_000_000_000},
		{"just below threshold scaled", 999_999_999_999, 999_999_999_999_000},
		{"at threshold passed through", 1_000_000_000_000, 1_000_000_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToEpochMillis(tt.in); got != tt.want {
				t.Fatalf("ToEpochMillis(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestRelativeAge(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)

	tests := []struct {
		name string
		at   int64
		want string
	}{
		{"fresh", now.UnixMilli() - 2_000, "just now"},
		{"seconds", now.UnixMilli() - 42_000, "42s ago"},
		{"minutes", now.UnixMilli() - 5*60_000, "5m ago"},
		{"hours", now.UnixMilli() - 3*3_600_000, "3h ago"},
		{"days", now.UnixMilli() - 2*86_400_000, "2d ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RelativeAge(tt.at, now); got != tt.want {
				t.Fatalf("RelativeAge = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestShortAddress(t *testing.T) {
	if got := ShortAddress("0x1234567890abcdef1234"); got != "0x1234...1234" {
		t.Fatalf("unexpected short address: %s", got)
	}
	if got := ShortAddress("0xshort"); got != "0xshort" {
		t.Fatalf("short input should pass through, got %s", got)
	}
}
