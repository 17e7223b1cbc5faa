// pkg/strength/evaluate.go

// Package strength is the password security evaluation engine: character
// class modeling, pattern detection, entropy estimation, crack-time
// projection and composite scoring. Every operation is a pure function over
// its inputs; an Evaluator is safe for concurrent use.
package strength

import (
	"time"

	"github.com/google/uuid"
)

// Report is the complete assessment of one candidate password. It never
// contains the password itself. Immutable once built; nothing is cached
// across calls.
type Report struct {
	ID          uuid.UUID       `json:"id" yaml:"id"`
	Length      int             `json:"length" yaml:"length"`
	EntropyBits float64         `json:"entropy_bits" yaml:"entropy_bits"`
	CrackTimes  []CrackEstimate `json:"crack_times" yaml:"crack_times"`
	Findings    []Finding       `json:"findings,omitempty" yaml:"findings,omitempty"`
	Score       int             `json:"score" yaml:"score"`
	Category    Category        `json:"category" yaml:"category"`
	EvaluatedAt time.Time       `json:"evaluated_at" yaml:"evaluated_at"`
}

// Evaluator wires the pipeline together behind one entry point.
type Evaluator struct {
	params   Params
	detector *Detector
}

// NewEvaluator builds an evaluator over an immutable Params value.
func NewEvaluator(p Params) *Evaluator {
	return &Evaluator{params: p, detector: NewDetector(p)}
}

// Params returns the tuning the evaluator was built with.
func (e *Evaluator) Params() Params { return e.params }

// Evaluate assesses a candidate password. Total by contract: any finite
// input, including the empty string, yields a report rather than an error —
// malformed input degrades to a low score.
func (e *Evaluator) Evaluate(password string) Report {
	findings := e.detector.Detect(password)
	bits := EntropyBits(password, findings)
	score := Score(bits, findings, e.params)

	return Report{
		ID:          uuid.New(),
		Length:      len([]rune(password)),
		EntropyBits: bits,
		CrackTimes:  CrackTimes(bits, e.params),
		Findings:    findings,
		Score:       score,
		Category:    CategoryFor(score),
		EvaluatedAt: time.Now().UTC(),
	}
}
