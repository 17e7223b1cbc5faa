// pkg/strength/cracktime.go

package strength

import (
	"fmt"
	"math"
)

// Canonical tier names, matching DefaultParams.
const (
	TierOnlineThrottled = "online_throttled"
	TierOfflineSlowHash = "offline_slow_hash"
	TierOfflineFastHash = "offline_fast_hash"
)

// CrackEstimate is the expected time to find a password by brute force under
// one attack tier. When Uncrackable is set, Seconds holds the clamp horizon
// and Display reads as the sentinel.
type CrackEstimate struct {
	Tier        string  `json:"tier"`
	Seconds     float64 `json:"seconds"`
	Uncrackable bool    `json:"uncrackable"`
	Display     string  `json:"display"`
}

// CrackTimes converts entropy bits into per-tier estimates. Expected guesses
// for a uniform keyspace of 2^bits is 2^bits / 2 (average case), so
// seconds = 2^bits / rate / 2. Estimates beyond the clamp horizon collapse
// to the uncrackable sentinel instead of overflowing.
func CrackTimes(bits float64, p Params) []CrackEstimate {
	out := make([]CrackEstimate, 0, len(p.Tiers))
	for _, tier := range p.Tiers {
		// Work in log space first: 2^bits overflows float64 past ~1024 bits.
		logSeconds := bits*math.Ln2 - math.Log(tier.GuessesPerSecond) - math.Ln2
		est := CrackEstimate{Tier: tier.Name}
		if logSeconds > math.Log(p.UncrackableSeconds) {
			est.Seconds = p.UncrackableSeconds
			est.Uncrackable = true
			est.Display = "effectively uncrackable"
		} else {
			est.Seconds = math.Exp(logSeconds)
			est.Display = FormatDuration(est.Seconds)
		}
		out = append(out, est)
	}
	return out
}

// FormatDuration renders seconds as a coarse human-readable duration.
func FormatDuration(seconds float64) string {
	const (
		minute = 60
		hour   = 60 * minute
		day    = 24 * hour
		year   = 365.25 * day
	)
	switch {
	case seconds < 1:
		return "instant"
	case seconds < minute:
		return fmt.Sprintf("%.0f seconds", seconds)
	case seconds < hour:
		return fmt.Sprintf("%.0f minutes", seconds/minute)
	case seconds < day:
		return fmt.Sprintf("%.0f hours", seconds/hour)
	case seconds < year:
		return fmt.Sprintf("%.0f days", seconds/day)
	case seconds < 1e6*year:
		return fmt.Sprintf("%.0f years", seconds/year)
	default:
		return fmt.Sprintf("%.1e years", seconds/year)
	}
}
