// pkg/strength/entropy.go

package strength

import "math"

// EntropyBits estimates effective entropy for a password given its detected
// findings: length * log2(alphabet) minus the summed finding severities,
// floored at zero.
//
// This is a heuristic proxy for strength, not cryptographic guess-entropy,
// and must never be presented as a formal security bound.
func EntropyBits(password string, findings []Finding) float64 {
	runes := []rune(password)
	if len(runes) == 0 {
		return 0
	}
	alphabet := AlphabetSize(ClassesPresent(password))
	if alphabet < 2 {
		return 0
	}
	bits := float64(len(runes)) * math.Log2(float64(alphabet))
	for _, f := range findings {
		bits -= f.Severity
	}
	if bits < 0 {
		return 0
	}
	return bits
}
