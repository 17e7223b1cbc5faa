// pkg/strength/charclass_test.go

package strength

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want Class
	}{
		{name: "lowercase", r: 'g', want: ClassLower},
		{name: "uppercase", r: 'Q', want: ClassUpper},
		{name: "digit", r: '7', want: ClassDigit},
		{name: "symbol", r: '#', want: ClassSymbol},
		{name: "space is a symbol", r: ' ', want: ClassSymbol},
		{name: "unicode letter falls back to extended", r: 'é', want: ClassExtended},
		{name: "emoji falls back to extended", r: '🔒', want: ClassExtended},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.r))
		})
	}
}

func TestCardinality(t *testing.T) {
	assert.Equal(t, 26, Cardinality(ClassLower))
	assert.Equal(t, 26, Cardinality(ClassUpper))
	assert.Equal(t, 10, Cardinality(ClassDigit))
	assert.Equal(t, len(SymbolChars), Cardinality(ClassSymbol))
	assert.Equal(t, 94, Cardinality(ClassExtended))
	assert.Equal(t, 0, Cardinality(Class(99)))
}

func TestClassesPresent(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     []Class
		absent   []Class
	}{
		{
			name:     "mixed four classes",
			password: "aB3!",
			want:     []Class{ClassLower, ClassUpper, ClassDigit, ClassSymbol},
		},
		{
			name:     "digits only",
			password: "123456",
			want:     []Class{ClassDigit},
			absent:   []Class{ClassLower, ClassUpper, ClassSymbol, ClassExtended},
		},
		{
			name:     "empty",
			password: "",
			absent:   []Class{ClassLower, ClassUpper, ClassDigit, ClassSymbol, ClassExtended},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := ClassesPresent(tt.password)
			for _, c := range tt.want {
				assert.True(t, set.Has(c), "expected class %s", c)
			}
			for _, c := range tt.absent {
				assert.False(t, set.Has(c), "unexpected class %s", c)
			}
		})
	}
}

func TestAlphabetSize(t *testing.T) {
	assert.Equal(t, 0, AlphabetSize(0))
	assert.Equal(t, 26, AlphabetSize(ClassSet(0).Add(ClassLower)))
	assert.Equal(t, 62, AlphabetSize(ClassSet(0).Add(ClassLower).Add(ClassUpper).Add(ClassDigit)))
	// Adding a class twice must not double-count.
	assert.Equal(t, 26, AlphabetSize(ClassSet(0).Add(ClassLower).Add(ClassLower)))
}
