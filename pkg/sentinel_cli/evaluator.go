// pkg/sentinel_cli/evaluator.go

package sentinel_cli

import (
	"github.com/spf13/cobra"

	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/config"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/strength"
)

// LoadEvaluator builds the strength evaluator for a command invocation,
// honoring the root --config flag when set.
func LoadEvaluator(cmd *cobra.Command) (*strength.Evaluator, error) {
	path := ""
	if f := cmd.Flag("config"); f != nil {
		path = f.Value.String()
	}
	params, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return strength.NewEvaluator(params), nil
}
