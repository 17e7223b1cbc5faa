// pkg/passgen/generator.go

// Package passgen generates passwords under configurable composition
// constraints. Randomness comes from crypto/rand only: generated output is
// offered as a secret, so a CSPRNG is a correctness requirement here, not a
// style preference.
package passgen

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/strength"
)

// Length bounds accepted by Config.
const (
	MinLength = 1
	MaxLength = 256
)

// Config describes one generation request.
type Config struct {
	// Length of the requested password, inclusive of the guaranteed
	// per-class characters.
	Length int `validate:"gte=1,lte=256"`

	// Classes every one of which must contribute at least one character.
	// Must be concrete classes (extended has no enumerable alphabet).
	Classes []strength.Class `validate:"min=1"`

	// Exclude lists characters removed from every class alphabet, e.g.
	// shell metacharacters or easily-confused glyphs.
	Exclude string
}

// InvalidConfigurationError reports a generation request that cannot be
// satisfied, naming the violated constraint. Nothing is partially generated.
type InvalidConfigurationError struct {
	Constraint string
}

func (e *InvalidConfigurationError) Error() string {
	return "invalid configuration: " + e.Constraint
}

// IsInvalidConfiguration reports whether err is a configuration rejection.
func IsInvalidConfiguration(err error) bool {
	var e *InvalidConfigurationError
	return cerr.As(err, &e)
}

func invalidf(format string, args ...interface{}) error {
	return cerr.WithStack(&InvalidConfigurationError{Constraint: fmt.Sprintf(format, args...)})
}

// DefaultConfig requests a 16-character password drawing on all four
// concrete classes.
func DefaultConfig() Config {
	return Config{
		Length: 16,
		Classes: []strength.Class{
			strength.ClassLower,
			strength.ClassUpper,
			strength.ClassDigit,
			strength.ClassSymbol,
		},
	}
}

// validate runs struct tags plus the domain checks the tags cannot express.
// Check order is fixed so callers get the most specific violation first.
func (c Config) validate() error {
	if len(c.Classes) == 0 {
		return invalidf("at least one character class is required")
	}
	if err := validator.New().Struct(c); err != nil {
		return invalidf("length must be within [%d, %d], got %d", MinLength, MaxLength, c.Length)
	}

	classes := dedupe(c.Classes)
	if c.Length < len(classes) {
		return invalidf("length %d cannot fit one character from each of %d required classes",
			c.Length, len(classes))
	}
	for _, class := range classes {
		alphabet := classAlphabet(class, c.Exclude)
		if class.Alphabet() == "" {
			return invalidf("class %q has no enumerable alphabet", class)
		}
		if alphabet == "" {
			return invalidf("exclusions empty the %s alphabet", class)
		}
	}
	return nil
}

// Generate produces a password satisfying cfg, or fails with
// InvalidConfiguration. One cryptographically random character from each
// required class is placed first, the remainder fills from the unioned
// pool, and a final shuffle hides the mandated positions.
func Generate(cfg Config) (string, error) {
	if err := cfg.validate(); err != nil {
		return "", err
	}

	classes := dedupe(cfg.Classes)
	var pool strings.Builder
	for _, class := range classes {
		pool.WriteString(classAlphabet(class, cfg.Exclude))
	}
	allowed := []rune(pool.String())

	pw := make([]rune, 0, cfg.Length)

	// Guarantee one character from every required class.
	for _, class := range classes {
		r, err := randomRune([]rune(classAlphabet(class, cfg.Exclude)))
		if err != nil {
			return "", cerr.Wrap(err, "draw class character")
		}
		pw = append(pw, r)
	}

	for len(pw) < cfg.Length {
		r, err := randomRune(allowed)
		if err != nil {
			return "", cerr.Wrap(err, "draw pool character")
		}
		pw = append(pw, r)
	}

	if err := shuffle(pw); err != nil {
		return "", cerr.Wrap(err, "shuffle password")
	}
	return string(pw), nil
}

func dedupe(classes []strength.Class) []strength.Class {
	seen := make(map[strength.Class]struct{}, len(classes))
	out := make([]strength.Class, 0, len(classes))
	for _, c := range classes {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

func classAlphabet(c strength.Class, exclude string) string {
	var b strings.Builder
	for _, r := range c.Alphabet() {
		if !strings.ContainsRune(exclude, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func randomRune(charset []rune) (rune, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}

// shuffle is a Fisher-Yates shuffle driven by crypto/rand.
func shuffle(rs []rune) error {
	for i := len(rs) - 1; i > 0; i-- {
		jBig, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return err
		}
		j := int(jBig.Int64())
		rs[i], rs[j] = rs[j], rs[i]
	}
	return nil
}
