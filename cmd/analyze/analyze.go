// cmd/analyze/analyze.go

package analyze

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/breachsim"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/report"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/sentinel_cli"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/sentinel_err"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/sentinel_io"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/strength"
)

var (
	fromStdin   bool
	checkBreach bool
	format      string
)

// AnalyzeCmd assesses a single password.
var AnalyzeCmd = &cobra.Command{
	Use:   "analyze [password]",
	Short: "Analyze password strength",
	Long: `Analyzes a candidate password: entropy, estimated crack times,
detected weaknesses and a composite 0-100 score.

Without an argument the password is read from a hidden prompt, which keeps
it out of shell history. Analysis never fails: any input degrades to a low
score rather than an error.`,
	Args: cobra.MaximumNArgs(1),
	RunE: sentinel_cli.Wrap(runAnalyze),
}

func init() {
	AnalyzeCmd.Flags().BoolVar(&fromStdin, "stdin", false, "read the password from stdin instead of prompting")
	AnalyzeCmd.Flags().BoolVar(&checkBreach, "breach", false, "include the simulated breach check")
	AnalyzeCmd.Flags().StringVar(&format, "format", "text", "output format: text, json or yaml")
}

// analysisExport is the machine-readable shape for --format json/yaml.
type analysisExport struct {
	Report strength.Report   `json:"report" yaml:"report"`
	Breach *breachsim.Result `json:"breach,omitempty" yaml:"breach,omitempty"`
}

func runAnalyze(rc *sentinel_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	outFormat, err := report.ParseFormat(format)
	if err != nil {
		return sentinel_err.NewExpectedError(err)
	}

	password, err := readPassword(rc, args)
	if err != nil {
		return err
	}

	ev, err := sentinel_cli.LoadEvaluator(cmd)
	if err != nil {
		return err
	}

	rep := ev.Evaluate(password)
	rc.Log.Info("password analyzed",
		zap.Int("length", rep.Length),
		zap.Int("score", rep.Score),
		zap.String("category", rep.Category.String()))

	var breach *breachsim.Result
	if checkBreach {
		res := breachsim.NewChecker().Check(password)
		breach = &res
	}

	if outFormat == report.FormatText {
		fmt.Print(report.RenderStrength(rep, breach))
		return nil
	}
	out, err := report.Export(analysisExport{Report: rep, Breach: breach}, outFormat)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func readPassword(rc *sentinel_io.RuntimeContext, args []string) (string, error) {
	if len(args) == 1 {
		rc.Log.Warn("password passed as an argument; prefer the hidden prompt to keep it out of shell history")
		return args[0], nil
	}
	if fromStdin {
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", nil
		}
		return strings.TrimRight(scanner.Text(), "\r\n"), nil
	}
	password, err := sentinel_io.PromptPassword("Password")
	if err != nil {
		return "", sentinel_err.NewExpectedError(err)
	}
	return password, nil
}
