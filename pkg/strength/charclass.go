// pkg/strength/charclass.go

package strength

import "strings"

// Class identifies one of the recognized character classes.
type Class int

const (
	ClassLower Class = iota
	ClassUpper
	ClassDigit
	ClassSymbol
	// ClassExtended is the fallback pool for runes outside the four core
	// classes (unicode letters, control runes, emoji, ...). They still
	// contribute alphabet size, just with a fixed assumed pool.
	ClassExtended

	numClasses
)

// Alphabets for the four concrete classes. Symbol matches the printable
// ASCII punctuation set.
const (
	LowerChars  = "abcdefghijklmnopqrstuvwxyz"
	UpperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DigitChars  = "0123456789"
	SymbolChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~ "
)

// cardinalities is fixed at init and read-only afterwards. Extended has no
// enumerable alphabet; 94 is the assumed pool size for unknown runes.
var cardinalities = [numClasses]int{
	ClassLower:    len(LowerChars),
	ClassUpper:    len(UpperChars),
	ClassDigit:    len(DigitChars),
	ClassSymbol:   len(SymbolChars),
	ClassExtended: 94,
}

func (c Class) String() string {
	switch c {
	case ClassLower:
		return "lowercase"
	case ClassUpper:
		return "uppercase"
	case ClassDigit:
		return "digit"
	case ClassSymbol:
		return "symbol"
	case ClassExtended:
		return "extended"
	default:
		return "unknown"
	}
}

// Alphabet returns the concrete alphabet for a class, or "" for Extended.
func (c Class) Alphabet() string {
	switch c {
	case ClassLower:
		return LowerChars
	case ClassUpper:
		return UpperChars
	case ClassDigit:
		return DigitChars
	case ClassSymbol:
		return SymbolChars
	default:
		return ""
	}
}

// Cardinality returns the alphabet size assumed for the class.
func Cardinality(c Class) int {
	if c < 0 || c >= numClasses {
		return 0
	}
	return cardinalities[c]
}

// Classify maps a rune to its character class. Every rune classifies; runes
// outside the four core classes land in ClassExtended.
func Classify(r rune) Class {
	switch {
	case r >= 'a' && r <= 'z':
		return ClassLower
	case r >= 'A' && r <= 'Z':
		return ClassUpper
	case r >= '0' && r <= '9':
		return ClassDigit
	case strings.ContainsRune(SymbolChars, r):
		return ClassSymbol
	default:
		return ClassExtended
	}
}

// ClassSet is a small bitset over Class values.
type ClassSet uint8

// Add returns the set with c included.
func (s ClassSet) Add(c Class) ClassSet { return s | 1<<uint(c) }

// Has reports whether c is in the set.
func (s ClassSet) Has(c Class) bool { return s&(1<<uint(c)) != 0 }

// Count returns the number of classes in the set.
func (s ClassSet) Count() int {
	n := 0
	for c := Class(0); c < numClasses; c++ {
		if s.Has(c) {
			n++
		}
	}
	return n
}

// ClassesPresent returns the set of classes occurring in password. This is
// the sole input to the entropy alphabet-size calculation.
func ClassesPresent(password string) ClassSet {
	var set ClassSet
	for _, r := range password {
		set = set.Add(Classify(r))
	}
	return set
}

// AlphabetSize sums the cardinalities of every class in the set.
func AlphabetSize(set ClassSet) int {
	total := 0
	for c := Class(0); c < numClasses; c++ {
		if set.Has(c) {
			total += cardinalities[c]
		}
	}
	return total
}
