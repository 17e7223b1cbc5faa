// cmd/report/report.go

package report

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/breachsim"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/report"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/sentinel_cli"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/sentinel_err"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/sentinel_io"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/wifisim"
)

// ReportCmd groups the standalone report renderings.
var ReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render security reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var quickCmd = &cobra.Command{
	Use:   "quick",
	Short: "Quick security overview",
	RunE: sentinel_cli.Wrap(func(rc *sentinel_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		ev, err := sentinel_cli.LoadEvaluator(cmd)
		if err != nil {
			return err
		}
		survey := wifisim.NewScanner().Scan()
		fmt.Print(report.RenderQuick(ev, survey))
		return nil
	}),
}

var wifiCmd = &cobra.Command{
	Use:   "wifi",
	Short: "Full wireless audit report (simulated)",
	RunE: sentinel_cli.Wrap(func(rc *sentinel_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		survey := wifisim.NewScanner().Scan()
		fmt.Print(report.RenderSurvey(survey, true))
		return nil
	}),
}

var passwordCmd = &cobra.Command{
	Use:   "password",
	Short: "Full password report for a prompted password",
	RunE: sentinel_cli.Wrap(func(rc *sentinel_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		password, err := sentinel_io.PromptPassword("Password")
		if err != nil {
			return sentinel_err.NewExpectedError(err)
		}
		ev, err := sentinel_cli.LoadEvaluator(cmd)
		if err != nil {
			return err
		}
		breach := breachsim.NewChecker().Check(password)
		fmt.Print(report.RenderStrength(ev.Evaluate(password), &breach))
		return nil
	}),
}

func init() {
	ReportCmd.AddCommand(quickCmd, wifiCmd, passwordCmd)
}
