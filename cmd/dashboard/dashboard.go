// cmd/dashboard/dashboard.go

package dashboard

import (
	"github.com/spf13/cobra"

	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/dashboard"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/sentinel_cli"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/sentinel_io"
)

// DashboardCmd starts the interactive shell.
var DashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Interactive dashboard (analyze, generate, scan)",
	RunE: sentinel_cli.Wrap(func(rc *sentinel_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		ev, err := sentinel_cli.LoadEvaluator(cmd)
		if err != nil {
			return err
		}
		return dashboard.Run(ev)
	}),
}
