// cmd/root.go

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/CodeMonkeyCybersecurity/sentinel/cmd/analyze"
	"github.com/CodeMonkeyCybersecurity/sentinel/cmd/dashboard"
	"github.com/CodeMonkeyCybersecurity/sentinel/cmd/generate"
	reportcmd "github.com/CodeMonkeyCybersecurity/sentinel/cmd/report"
	"github.com/CodeMonkeyCybersecurity/sentinel/cmd/scan"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/sentinel_err"
)

// RootCmd is the base command for sentinel.
var RootCmd = &cobra.Command{
	Use:   "sentinel",
	Short: "Password and wireless security toolkit",
	Long: `Sentinel analyzes password strength, generates strong passwords,
runs a simulated wireless survey and renders security reports.

Breach checks and wireless scans are local simulations: sentinel never
queries breach databases or touches radio hardware.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// RegisterCommands wires all subcommands onto the root.
func RegisterCommands() {
	RootCmd.PersistentFlags().String("config", "", "path to sentinel.yaml (default: auto-discover)")

	for _, sub := range []*cobra.Command{
		analyze.AnalyzeCmd,
		generate.GenerateCmd,
		scan.ScanCmd,
		reportcmd.ReportCmd,
		dashboard.DashboardCmd,
	} {
		RootCmd.AddCommand(sub)
	}
}

// Execute runs the CLI and exits nonzero on failure.
func Execute() {
	defer logger.Sync()

	RegisterCommands()

	if err := RootCmd.Execute(); err != nil {
		sentinel_err.PrintError("command failed", err)
		os.Exit(1)
	}
}
