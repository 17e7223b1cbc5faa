// pkg/strength/patterns_test.go

package strength

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(findings []Finding) []FindingKind {
	out := make([]FindingKind, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Kind)
	}
	return out
}

func TestDetectDictionaryWord(t *testing.T) {
	d := NewDetector(DefaultParams())

	tests := []struct {
		name      string
		password  string
		wantStart int
		wantEnd   int
	}{
		{name: "embedded word", password: "MyPassword123", wantStart: 2, wantEnd: 10},
		{name: "case insensitive", password: "QWERTY99", wantStart: 0, wantEnd: 6},
		{name: "word is whole password", password: "dragon", wantStart: 0, wantEnd: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dict []Finding
			for _, f := range d.Detect(tt.password) {
				if f.Kind == FindingDictionaryWord {
					dict = append(dict, f)
				}
			}
			require.NotEmpty(t, dict)
			assert.Equal(t, tt.wantStart, dict[0].Start)
			assert.Equal(t, tt.wantEnd, dict[0].End)
		})
	}

	t.Run("no word", func(t *testing.T) {
		assert.NotContains(t, kinds(d.Detect("xk9#Qz")), FindingDictionaryWord)
	})
}

func TestDetectSequentialRun(t *testing.T) {
	d := NewDetector(DefaultParams())

	tests := []struct {
		name     string
		password string
		want     [][2]int // start, end of expected sequential findings
	}{
		{name: "ascending letters", password: "abcX", want: [][2]int{{0, 3}}},
		{name: "descending digits", password: "X321", want: [][2]int{{1, 4}}},
		{name: "direction flip yields two runs", password: "abcba", want: [][2]int{{0, 3}, {2, 5}}},
		{name: "two chars is not a run", password: "abX12", want: nil},
		{name: "repeats are not sequential", password: "aaaa", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got [][2]int
			for _, f := range d.Detect(tt.password) {
				if f.Kind == FindingSequentialRun {
					got = append(got, [2]int{f.Start, f.End})
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectRepeatedRun(t *testing.T) {
	d := NewDetector(DefaultParams())

	t.Run("two separate runs", func(t *testing.T) {
		var got [][2]int
		for _, f := range d.Detect("aaaa1111") {
			if f.Kind == FindingRepeatedRun {
				got = append(got, [2]int{f.Start, f.End})
			}
		}
		assert.Equal(t, [][2]int{{0, 4}, {4, 8}}, got)
	})

	t.Run("pairs do not count", func(t *testing.T) {
		assert.NotContains(t, kinds(d.Detect("aabb")), FindingRepeatedRun)
	})
}

func TestDetectKeyboardAdjacency(t *testing.T) {
	d := NewDetector(DefaultParams())

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{name: "qwerty walk", password: "qwerty", want: true},
		{name: "case insensitive walk", password: "ASDf", want: true},
		{name: "reverse walk", password: "poiu", want: true},
		{name: "digit row walk", password: "x456x", want: true},
		{name: "cross-row jump is not a walk", password: "qaz", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kinds(d.Detect(tt.password))
			if tt.want {
				assert.Contains(t, got, FindingKeyboardAdjacency)
			} else {
				assert.NotContains(t, got, FindingKeyboardAdjacency)
			}
		})
	}
}

func TestDetectSupertypes(t *testing.T) {
	d := NewDetector(DefaultParams())

	assert.Contains(t, kinds(d.Detect("88214907")), FindingAllNumeric)
	assert.Contains(t, kinds(d.Detect("XkWpQz")), FindingAllAlpha)
	assert.NotContains(t, kinds(d.Detect("a1")), FindingAllNumeric)
	assert.NotContains(t, kinds(d.Detect("a1")), FindingAllAlpha)
}

func TestDetectOverlapAndOrder(t *testing.T) {
	d := NewDetector(DefaultParams())

	// "123456" is a sequential run, a keyboard walk and all-numeric at once;
	// rules are independent and never short-circuit.
	got := kinds(d.Detect("123456"))
	assert.Contains(t, got, FindingSequentialRun)
	assert.Contains(t, got, FindingKeyboardAdjacency)
	assert.Contains(t, got, FindingAllNumeric)

	// Findings arrive in rule order, not input order.
	var lastRule FindingKind
	for _, k := range got {
		assert.GreaterOrEqual(t, k, lastRule)
		lastRule = k
	}
}

func TestDetectEmptyAndSeverity(t *testing.T) {
	p := DefaultParams()
	d := NewDetector(p)

	assert.Empty(t, d.Detect(""))

	for _, f := range d.Detect("password123") {
		assert.Equal(t, p.Severities[f.Kind], f.Severity)
	}
}
