// pkg/strength/cracktime_test.go

package strength

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func estimateFor(t *testing.T, ests []CrackEstimate, tier string) CrackEstimate {
	t.Helper()
	for _, e := range ests {
		if e.Tier == tier {
			return e
		}
	}
	require.Failf(t, "missing tier", "tier %s not present", tier)
	return CrackEstimate{}
}

func TestCrackTimesTierSpread(t *testing.T) {
	p := DefaultParams()
	ests := CrackTimes(40, p)
	require.Len(t, ests, len(p.Tiers))

	online := estimateFor(t, ests, TierOnlineThrottled)
	slow := estimateFor(t, ests, TierOfflineSlowHash)
	fast := estimateFor(t, ests, TierOfflineFastHash)

	// A faster adversary always finishes sooner.
	assert.Greater(t, online.Seconds, slow.Seconds)
	assert.Greater(t, slow.Seconds, fast.Seconds)

	// 2^40 / 10 / 2 seconds for the throttled tier.
	assert.InEpsilon(t, 54975581388.8, online.Seconds, 1e-6)
}

func TestCrackTimesMonotonicInEntropy(t *testing.T) {
	p := DefaultParams()
	for _, tier := range p.Tiers {
		prev := -1.0
		for bits := 0.0; bits <= 200; bits += 7.3 {
			est := estimateFor(t, CrackTimes(bits, p), tier.Name)
			assert.GreaterOrEqual(t, est.Seconds, prev,
				"tier %s at %.1f bits", tier.Name, bits)
			prev = est.Seconds
		}
	}
}

func TestCrackTimesUncrackableClamp(t *testing.T) {
	p := DefaultParams()

	// 4096 bits would overflow a float64 power; the estimate must clamp to
	// the sentinel instead.
	for _, est := range CrackTimes(4096, p) {
		assert.True(t, est.Uncrackable)
		assert.Equal(t, "effectively uncrackable", est.Display)
		assert.Equal(t, p.UncrackableSeconds, est.Seconds)
	}

	// Zero entropy cracks instantly everywhere.
	for _, est := range CrackTimes(0, p) {
		assert.False(t, est.Uncrackable)
		assert.Equal(t, "instant", est.Display)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{seconds: 0.2, want: "instant"},
		{seconds: 45, want: "45 seconds"},
		{seconds: 600, want: "10 minutes"},
		{seconds: 7200, want: "2 hours"},
		{seconds: 86400 * 3, want: "3 days"},
		{seconds: 86400 * 365.25 * 12, want: "12 years"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.seconds))
	}
}
