// pkg/breachsim/breachsim.go

// Package breachsim is a local, simulated breach check. It compares a
// password's SHA-256 digest against a small built-in corpus of notoriously
// breached passwords with illustrative exposure counts. It never touches
// the network and must never be presented as a real breach-database lookup.
package breachsim

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SimulationNote marks every result as a local heuristic.
const SimulationNote = "simulated local check only — not a live breach database query"

// Result of one breach check.
type Result struct {
	Breached bool   `json:"breached"`
	Count    int    `json:"count"`
	Note     string `json:"note"`
}

// corpusEntries pairs well-known breached passwords with rough exposure
// counts in the spirit of public breach statistics. The checker stores only
// digests; the plaintexts here are public knowledge, not secrets.
var corpusEntries = map[string]int{
	"123456":     37359195,
	"password":   9707564,
	"123456789":  7870694,
	"qwerty":     3946737,
	"12345678":   2944615,
	"111111":     3124368,
	"12345":      2389787,
	"iloveyou":   1645337,
	"admin":      1470547,
	"welcome":    1118822,
	"monkey":     980209,
	"abc123":     887843,
	"dragon":     981245,
	"letmein":    676216,
	"sunshine":   851554,
	"princess":   740788,
	"football":   714622,
	"baseball":   531969,
	"trustno1":   448183,
	"master":     512694,
	"shadow":     543870,
	"superman":   424842,
	"qwerty123":  630389,
	"password1":  2413945,
	"p@ssw0rd":   51334,
	"passw0rd":   61352,
}

// Checker holds the digest corpus, built once and read-only afterwards.
type Checker struct {
	digests map[string]int
}

// NewChecker builds the simulated corpus.
func NewChecker() *Checker {
	c := &Checker{digests: make(map[string]int, len(corpusEntries))}
	for pw, count := range corpusEntries {
		c.digests[digest(pw)] = count
	}
	return c
}

// Check reports whether the password appears in the simulated corpus. The
// lowercased form is checked too: attackers try trivial case variants first.
func (c *Checker) Check(password string) Result {
	res := Result{Note: SimulationNote}
	if password == "" {
		return res
	}
	if count, ok := c.digests[digest(password)]; ok {
		res.Breached = true
		res.Count = count
		return res
	}
	if count, ok := c.digests[digest(strings.ToLower(password))]; ok {
		res.Breached = true
		res.Count = count
	}
	return res
}

func digest(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
