// pkg/sentinel_cli/wrap.go

// Package sentinel_cli adapts command handlers to cobra: every RunE body
// gets panic recovery, a runtime context and structured outcome logging.
package sentinel_cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/sentinel_io"
)

// Wrap turns a runtime-context handler into a cobra RunE.
func Wrap(fn func(rc *sentinel_io.RuntimeContext, cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		rc := sentinel_io.NewContext(context.Background(), cmd.Name())
		defer rc.End(&err)
		defer rc.HandlePanic(&err)

		err = fn(rc, cmd, args)
		return err
	}
}
