package utils

import (
	"fmt"
	"time"
)

// epochMillisThreshold separates second from millisecond epochs. Upstream
// writers are inconsistent about the unit, so anything below 1e12 (before
// Sep 2001 when read as milliseconds) is assumed to be seconds. Heuristic,
// not a contract.
const epochMillisThreshold = 1_000_000_000_000

// ToEpochMillis normalizes an epoch of ambiguous unit to milliseconds.
func ToEpochMillis(ts int64) int64 {
	if ts < epochMillisThreshold {
		return ts * 1000
	}
	return ts
}

// RelativeAge renders a millisecond epoch as a short age like "42s ago".
func RelativeAge(epochMillis int64, now time.Time) string {
	age := now.Sub(time.UnixMilli(epochMillis))
	switch {
	case age < 5*time.Second:
		return "just now"
	case age < time.Minute:
		return fmt.Sprintf("%ds ago", int(age.Seconds()))
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	case age < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(age.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(age.Hours()/24))
	}
}

// ShortAddress abbreviates a blockchain address for display.
func ShortAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}
