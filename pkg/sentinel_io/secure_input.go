// pkg/sentinel_io/secure_input.go

package sentinel_io

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"golang.org/x/term"
)

// MaxPasswordLength bounds prompted password input.
const MaxPasswordLength = 256

var (
	// controlCharRegex matches control characters that have no business in
	// a password prompt and usually indicate paste accidents.
	controlCharRegex = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)

	// ansiEscapeRegex matches ANSI escape sequences.
	ansiEscapeRegex = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)
)

// PromptPassword reads a password with echo disabled. The raw value is
// returned untrimmed apart from the trailing newline: leading and inner
// whitespace are legitimate password characters.
func PromptPassword(prompt string) (string, error) {
	fmt.Fprintf(os.Stderr, "%s: ", prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", cerr.Wrap(err, "read password")
	}
	password := strings.TrimRight(string(raw), "\r\n")
	if err := ValidatePasswordInput(password); err != nil {
		return "", err
	}
	return password, nil
}

// ValidatePasswordInput rejects input that cannot be a deliberate password:
// over-long strings, embedded control characters or terminal escapes.
func ValidatePasswordInput(password string) error {
	if len(password) > MaxPasswordLength {
		return cerr.Newf("password too long (%d bytes, max %d)", len(password), MaxPasswordLength)
	}
	if controlCharRegex.MatchString(password) {
		return cerr.New("password contains control characters")
	}
	if ansiEscapeRegex.MatchString(password) {
		return cerr.New("password contains terminal escape sequences")
	}
	return nil
}
