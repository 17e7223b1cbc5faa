// cmd/scan/scan.go

package scan

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/report"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/sentinel_cli"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/sentinel_err"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/sentinel_io"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/wifisim"
)

var (
	audit  bool
	format string
)

// ScanCmd runs the simulated wireless survey.
var ScanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run a simulated wireless security survey",
	Long: `Surveys a simulated wireless neighborhood and grades each network's
security posture. No radio hardware is accessed and no privileges are
required: the scan is a local simulation for demonstration and report
rendering.`,
	RunE: sentinel_cli.Wrap(runScan),
}

func init() {
	ScanCmd.Flags().BoolVar(&audit, "audit", false, "include per-network assessments")
	ScanCmd.Flags().StringVar(&format, "format", "text", "output format: text, json or yaml")
}

func runScan(rc *sentinel_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	outFormat, err := report.ParseFormat(format)
	if err != nil {
		return sentinel_err.NewExpectedError(err)
	}

	survey := wifisim.NewScanner().Scan()
	rc.Log.Info("survey complete", zap.Int("networks", len(survey.Networks)))

	if outFormat == report.FormatText {
		fmt.Print(report.RenderSurvey(survey, audit))
		return nil
	}
	out, err := report.Export(survey, outFormat)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
