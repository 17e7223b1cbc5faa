// pkg/strength/patterns.go

package strength

import (
	"strings"
	"unicode"
)

// FindingKind names a weakening pattern rule.
type FindingKind int

const (
	FindingDictionaryWord FindingKind = iota
	FindingSequentialRun
	FindingRepeatedRun
	FindingKeyboardAdjacency
	FindingAllNumeric
	FindingAllAlpha
)

func (k FindingKind) String() string {
	switch k {
	case FindingDictionaryWord:
		return "dictionary_word"
	case FindingSequentialRun:
		return "sequential_run"
	case FindingRepeatedRun:
		return "repeated_run"
	case FindingKeyboardAdjacency:
		return "keyboard_adjacency"
	case FindingAllNumeric:
		return "all_numeric"
	case FindingAllAlpha:
		return "all_alpha"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the kind as its display string in exports.
func (k FindingKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// MarshalYAML mirrors MarshalJSON for YAML exports.
func (k FindingKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// Finding is one detected weakness. Start/End are rune offsets into the
// password, End exclusive. Severity is the penalty weight in entropy bits.
type Finding struct {
	Kind     FindingKind `json:"kind"`
	Start    int         `json:"start"`
	End      int         `json:"end"`
	Severity float64     `json:"severity"`
}

// qwertyRows is the reference keyboard layout for the adjacency rule.
// Adjacency means neighboring positions within a row.
var qwertyRows = []string{
	"1234567890",
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
}

// Detector runs the pattern rules. Stateless apart from its read-only
// configuration; safe for concurrent use.
type Detector struct {
	words      []string
	severities map[FindingKind]float64
	keyIndex   map[rune][2]int // rune -> row, column
}

// NewDetector builds a detector from params. Word entries shorter than four
// runes are dropped; matching is case-insensitive.
func NewDetector(p Params) *Detector {
	d := &Detector{
		severities: p.Severities,
		keyIndex:   make(map[rune][2]int),
	}
	for _, w := range p.Words {
		w = strings.ToLower(strings.TrimSpace(w))
		if len([]rune(w)) >= 4 {
			d.words = append(d.words, w)
		}
	}
	for row, keys := range qwertyRows {
		for col, r := range keys {
			d.keyIndex[r] = [2]int{row, col}
		}
	}
	return d
}

// Detect runs every rule and accumulates findings in rule order. Rules never
// short-circuit each other, so overlapping findings are expected: "123" is
// both a sequential run and a keyboard walk.
func (d *Detector) Detect(password string) []Finding {
	if password == "" {
		return nil
	}
	runes := []rune(password)
	var findings []Finding
	findings = append(findings, d.dictionaryWords(runes)...)
	findings = append(findings, d.sequentialRuns(runes)...)
	findings = append(findings, d.repeatedRuns(runes)...)
	findings = append(findings, d.keyboardRuns(runes)...)
	findings = append(findings, d.supertypes(runes)...)
	return findings
}

func (d *Detector) finding(kind FindingKind, start, end int) Finding {
	return Finding{Kind: kind, Start: start, End: end, Severity: d.severities[kind]}
}

func (d *Detector) dictionaryWords(runes []rune) []Finding {
	lowered := make([]rune, len(runes))
	for i, r := range runes {
		lowered[i] = unicode.ToLower(r)
	}

	var out []Finding
	for _, w := range d.words {
		word := []rune(w)
		for start := 0; start+len(word) <= len(lowered); start++ {
			match := true
			for j, wr := range word {
				if lowered[start+j] != wr {
					match = false
					break
				}
			}
			if match {
				out = append(out, d.finding(FindingDictionaryWord, start, start+len(word)))
			}
		}
	}
	return out
}

func (d *Detector) sequentialRuns(runes []rune) []Finding {
	return maximalRuns(runes, FindingSequentialRun, d, func(a, b rune) int {
		switch b - a {
		case 1:
			return 1
		case -1:
			return -1
		default:
			return 0
		}
	})
}

func (d *Detector) repeatedRuns(runes []rune) []Finding {
	var out []Finding
	start := 0
	for i := 1; i <= len(runes); i++ {
		if i == len(runes) || runes[i] != runes[start] {
			if i-start >= 3 {
				out = append(out, d.finding(FindingRepeatedRun, start, i))
			}
			start = i
		}
	}
	return out
}

func (d *Detector) keyboardRuns(runes []rune) []Finding {
	return maximalRuns(runes, FindingKeyboardAdjacency, d, func(a, b rune) int {
		pa, oka := d.keyIndex[unicode.ToLower(a)]
		pb, okb := d.keyIndex[unicode.ToLower(b)]
		if !oka || !okb || pa[0] != pb[0] {
			return 0
		}
		switch pb[1] - pa[1] {
		case 1:
			return 1
		case -1:
			return -1
		default:
			return 0
		}
	})
}

// maximalRuns reports maximal runs of length >= 3 where every adjacent pair
// steps consistently in one direction per the step function (+1 or -1,
// 0 = no step).
func maximalRuns(runes []rune, kind FindingKind, d *Detector, step func(a, b rune) int) []Finding {
	var out []Finding
	start, dir := 0, 0
	for i := 1; i <= len(runes); i++ {
		s := 0
		if i < len(runes) {
			s = step(runes[i-1], runes[i])
		}
		if s != 0 && dir == 0 {
			start, dir = i-1, s
			continue
		}
		if s != 0 && s == dir {
			continue
		}
		if dir != 0 && i-start >= 3 {
			out = append(out, d.finding(kind, start, i))
		}
		// The broken pair may begin a new run in the other direction.
		if s != 0 {
			start, dir = i-1, s
		} else {
			dir = 0
		}
	}
	return out
}

func (d *Detector) supertypes(runes []rune) []Finding {
	allDigit, allAlpha := true, true
	for _, r := range runes {
		if !unicode.IsDigit(r) {
			allDigit = false
		}
		if !unicode.IsLetter(r) {
			allAlpha = false
		}
	}
	var out []Finding
	if allDigit {
		out = append(out, d.finding(FindingAllNumeric, 0, len(runes)))
	}
	if allAlpha {
		out = append(out, d.finding(FindingAllAlpha, 0, len(runes)))
	}
	return out
}
