package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bffd/bffd/pkg/cli/internal/output"
)

func newStatusCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check that a server is running",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			health, err := g.client().Health()
			if err != nil {
				return fmt.Errorf("%s", FormatConnectionError(err))
			}

			w := cmd.OutOrStdout()
			if g.jsonOutput {
				return output.JSON(w, health)
			}

			fmt.Fprintf(w, "Status:  %s\n", health.Status)
			fmt.Fprintf(w, "Uptime:  %s\n", time.Duration(health.Uptime)*time.Second)
			fmt.Fprintf(w, "Routes:  %d\n", health.Routes)
			fmt.Fprintf(w, "Logs:    %d\n", health.Logs)
			return nil
		},
	}
}
