// pkg/passgen/generator_test.go

package passgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/strength"
)

func TestGenerateRoundTrip(t *testing.T) {
	cfg := Config{
		Length: 16,
		Classes: []strength.Class{
			strength.ClassLower,
			strength.ClassUpper,
			strength.ClassDigit,
			strength.ClassSymbol,
		},
	}

	for i := 0; i < 1000; i++ {
		pw, err := Generate(cfg)
		require.NoError(t, err)
		require.Equal(t, 16, len([]rune(pw)))

		set := strength.ClassesPresent(pw)
		for _, class := range cfg.Classes {
			assert.True(t, set.Has(class), "password %q missing class %s", pw, class)
		}
	}
}

func TestGenerateHonorsExclusions(t *testing.T) {
	cfg := Config{
		Length:  24,
		Classes: []strength.Class{strength.ClassLower, strength.ClassDigit},
		Exclude: "l1o0",
	}

	for i := 0; i < 200; i++ {
		pw, err := Generate(cfg)
		require.NoError(t, err)
		assert.False(t, strings.ContainsAny(pw, cfg.Exclude), "password %q contains an excluded character", pw)
	}
}

func TestGenerateInvalidConfiguration(t *testing.T) {
	fourClasses := []strength.Class{
		strength.ClassLower,
		strength.ClassUpper,
		strength.ClassDigit,
		strength.ClassSymbol,
	}

	tests := []struct {
		name    string
		cfg     Config
		wantMsg string
	}{
		{
			name:    "no classes",
			cfg:     Config{Length: 16},
			wantMsg: "at least one character class",
		},
		{
			name:    "length below bounds",
			cfg:     Config{Length: 0, Classes: fourClasses},
			wantMsg: "length must be within",
		},
		{
			name:    "length above bounds",
			cfg:     Config{Length: 300, Classes: fourClasses},
			wantMsg: "length must be within",
		},
		{
			name:    "four classes cannot fit in two characters",
			cfg:     Config{Length: 2, Classes: fourClasses},
			wantMsg: "cannot fit",
		},
		{
			name: "exclusions empty a required class",
			cfg: Config{
				Length:  12,
				Classes: []strength.Class{strength.ClassLower, strength.ClassDigit},
				Exclude: "0123456789",
			},
			wantMsg: "empty the digit alphabet",
		},
		{
			name:    "extended class has no alphabet",
			cfg:     Config{Length: 12, Classes: []strength.Class{strength.ClassExtended}},
			wantMsg: "no enumerable alphabet",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pw, err := Generate(tt.cfg)
			require.Error(t, err)
			assert.Empty(t, pw, "nothing may be partially generated")
			assert.True(t, IsInvalidConfiguration(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestGenerateMinimalLength(t *testing.T) {
	// Length exactly equal to the class count is the tightest valid config.
	cfg := Config{
		Length:  2,
		Classes: []strength.Class{strength.ClassLower, strength.ClassDigit},
	}
	pw, err := Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, len([]rune(pw)))
	set := strength.ClassesPresent(pw)
	assert.True(t, set.Has(strength.ClassLower))
	assert.True(t, set.Has(strength.ClassDigit))
}

func TestGenerateDuplicateClassesDeduped(t *testing.T) {
	cfg := Config{
		Length: 3,
		Classes: []strength.Class{
			strength.ClassLower, strength.ClassLower, strength.ClassLower,
		},
	}
	pw, err := Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, 3, len([]rune(pw)))
}

func TestGenerateOutputVaries(t *testing.T) {
	cfg := DefaultConfig()
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		pw, err := Generate(cfg)
		require.NoError(t, err)
		seen[pw] = struct{}{}
	}
	// 50 collisions over a 16-char pool would mean the randomness source is
	// broken.
	assert.Greater(t, len(seen), 45)
}

func TestDefaultConfigIsValid(t *testing.T) {
	pw, err := Generate(DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 16, len([]rune(pw)))
}
