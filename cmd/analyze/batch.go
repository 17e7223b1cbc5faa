// cmd/analyze/batch.go

package analyze

import (
	"bufio"
	"fmt"
	"os"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/report"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/sentinel_cli"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/sentinel_err"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/sentinel_io"
)

// batchLimit caps one audit run; beyond this the report stops being
// readable and the input is probably a cracking wordlist, not an audit.
const batchLimit = 1000

var (
	weakThreshold int
	batchFormat   string
)

// BatchCmd audits a file of passwords, one per line.
var BatchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Audit a file of passwords, one per line",
	Args:  cobra.ExactArgs(1),
	RunE:  sentinel_cli.Wrap(runBatch),
}

func init() {
	AnalyzeCmd.AddCommand(BatchCmd)
	BatchCmd.Flags().IntVar(&weakThreshold, "threshold", 40, "score below which a password counts as weak")
	BatchCmd.Flags().StringVar(&batchFormat, "format", "text", "output format: text, json or yaml")
}

func runBatch(rc *sentinel_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	outFormat, err := report.ParseFormat(batchFormat)
	if err != nil {
		return sentinel_err.NewExpectedError(err)
	}
	if weakThreshold < 0 || weakThreshold > 100 {
		return sentinel_err.NewExpectedErrorf("threshold must be within [0, 100], got %d", weakThreshold)
	}

	passwords, err := readLines(args[0])
	if err != nil {
		return sentinel_err.NewExpectedError(err)
	}
	if len(passwords) > batchLimit {
		rc.Log.Warn("input truncated", zap.Int("limit", batchLimit), zap.Int("lines", len(passwords)))
		passwords = passwords[:batchLimit]
	}

	ev, err := sentinel_cli.LoadEvaluator(cmd)
	if err != nil {
		return err
	}

	summary := report.BuildBatchSummary(ev, passwords, weakThreshold)
	rc.Log.Info("batch audit complete",
		zap.Int("total", summary.Total),
		zap.Int("weak", summary.Weak))

	if outFormat == report.FormatText {
		fmt.Print(report.RenderBatch(summary))
		return nil
	}
	out, err := report.Export(summary, outFormat)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, cerr.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, cerr.Wrapf(err, "read %s", path)
	}
	return lines, nil
}
