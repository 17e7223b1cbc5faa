// pkg/breachsim/breachsim_test.go

package breachsim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	c := NewChecker()

	tests := []struct {
		name      string
		password  string
		breached  bool
		wantCount int
	}{
		{name: "top corpus entry", password: "123456", breached: true, wantCount: 37359195},
		{name: "classic", password: "password", breached: true, wantCount: 9707564},
		{name: "case variant matches lowered form", password: "PASSWORD", breached: true, wantCount: 9707564},
		{name: "leet variant present verbatim", password: "p@ssw0rd", breached: true, wantCount: 51334},
		{name: "strong password clean", password: "kT7#mQ2v!xR4", breached: false},
		{name: "empty password clean", password: "", breached: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := c.Check(tt.password)
			assert.Equal(t, tt.breached, res.Breached)
			assert.Equal(t, tt.wantCount, res.Count)
			assert.Equal(t, SimulationNote, res.Note)
		})
	}
}

func TestCheckerStoresOnlyDigests(t *testing.T) {
	c := NewChecker()
	for key := range c.digests {
		// SHA-256 hex is 64 characters; a plaintext corpus entry is not.
		assert.Len(t, key, 64)
	}
}
