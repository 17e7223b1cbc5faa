// pkg/strength/score.go

package strength

import "math"

// Category is the discrete strength bucket for a composite score.
type Category int

const (
	VeryWeak Category = iota
	Weak
	Fair
	Strong
	VeryStrong
)

func (c Category) String() string {
	switch c {
	case VeryWeak:
		return "very weak"
	case Weak:
		return "weak"
	case Fair:
		return "fair"
	case Strong:
		return "strong"
	case VeryStrong:
		return "very strong"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the category as its display string in exports.
func (c Category) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// MarshalYAML mirrors MarshalJSON for YAML exports.
func (c Category) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// CategoryFor maps a composite score to its bucket. The thresholds are a
// fixed contract: <20 very weak, <40 weak, <60 fair, <80 strong, else very
// strong.
func CategoryFor(score int) Category {
	switch {
	case score < 20:
		return VeryWeak
	case score < 40:
		return Weak
	case score < 60:
		return Fair
	case score < 80:
		return Strong
	default:
		return VeryStrong
	}
}

// Score combines entropy and findings into a composite 0..100 score.
// Entropy maps linearly (FullScoreBits -> 100, capped), then the summed
// finding severities are deducted again, capped at PenaltyCap, and the
// result clamps to [0, 100]. Deterministic and order-independent in the
// findings slice.
func Score(bits float64, findings []Finding, p Params) int {
	base := math.Round(bits * 100 / p.FullScoreBits)
	if base > 100 {
		base = 100
	}
	penalty := 0.0
	for _, f := range findings {
		penalty += f.Severity
	}
	if penalty > p.PenaltyCap {
		penalty = p.PenaltyCap
	}
	score := int(base - math.Round(penalty))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
