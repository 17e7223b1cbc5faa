// cmd/generate/generate.go

package generate

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/passgen"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/report"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/sentinel_cli"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/sentinel_err"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/sentinel_io"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/strength"
)

var (
	length     int
	useLower   bool
	useUpper   bool
	useDigits  bool
	useSymbols bool
	exclude    string
	count      int
	quiet      bool
)

// GenerateCmd produces one or more passwords under the requested
// composition constraints.
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate cryptographically secure passwords",
	Long: `Generates passwords guaranteed to contain at least one character
from every requested class, using a cryptographically secure random source.
Each generated password is re-evaluated through the analysis pipeline so
you see what you are getting.`,
	RunE: sentinel_cli.Wrap(runGenerate),
}

func init() {
	GenerateCmd.Flags().IntVar(&length, "length", 16, "password length")
	GenerateCmd.Flags().BoolVar(&useLower, "lower", true, "include lowercase letters")
	GenerateCmd.Flags().BoolVar(&useUpper, "upper", true, "include uppercase letters")
	GenerateCmd.Flags().BoolVar(&useDigits, "digits", true, "include digits")
	GenerateCmd.Flags().BoolVar(&useSymbols, "symbols", true, "include symbols")
	GenerateCmd.Flags().StringVar(&exclude, "exclude", "", "characters to exclude from every class")
	GenerateCmd.Flags().IntVar(&count, "count", 1, "number of passwords to generate (1-100)")
	GenerateCmd.Flags().BoolVar(&quiet, "quiet", false, "print passwords only, no analysis")
}

func buildConfig() passgen.Config {
	cfg := passgen.Config{Length: length, Exclude: exclude}
	if useLower {
		cfg.Classes = append(cfg.Classes, strength.ClassLower)
	}
	if useUpper {
		cfg.Classes = append(cfg.Classes, strength.ClassUpper)
	}
	if useDigits {
		cfg.Classes = append(cfg.Classes, strength.ClassDigit)
	}
	if useSymbols {
		cfg.Classes = append(cfg.Classes, strength.ClassSymbol)
	}
	return cfg
}

func runGenerate(rc *sentinel_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	if count < 1 || count > 100 {
		return sentinel_err.NewExpectedErrorf("count must be within [1, 100], got %d", count)
	}
	cfg := buildConfig()

	ev, err := sentinel_cli.LoadEvaluator(cmd)
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		password, err := passgen.Generate(cfg)
		if err != nil {
			if passgen.IsInvalidConfiguration(err) {
				return sentinel_err.NewExpectedError(err)
			}
			return err
		}

		if count > 1 || quiet {
			fmt.Println(password)
			continue
		}

		fmt.Println(report.PanelStyle.Render(password))
		fmt.Println()
		rep := ev.Evaluate(password)
		rc.Log.Info("password generated",
			zap.Int("length", rep.Length),
			zap.Int("score", rep.Score))
		fmt.Print(report.RenderStrength(rep, nil))
	}
	return nil
}
