package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bffd/bffd/pkg/cli/internal/output"
)

func newLogsCmd(g *globalFlags) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show recent requests handled by the dispatcher",
		Example: `  # Show the last 20 requests
  bffd logs

  # Show everything retained
  bffd logs -n 0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative")
			}

			entries, err := g.client().ListLogs(limit)
			if err != nil {
				return fmt.Errorf("%s", FormatConnectionError(err))
			}

			w := cmd.OutOrStdout()
			if g.jsonOutput {
				return output.JSON(w, entries)
			}

			if len(entries) == 0 {
				fmt.Fprintln(w, "No requests logged")
				return nil
			}

			tw := output.Table(w)
			fmt.Fprintln(tw, "TIME\tMETHOD\tPATH\tSTATUS\tLATENCY")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%dms\n",
					e.Timestamp.Local().Format(time.TimeOnly), e.Method, e.Path, e.Status, e.LatencyMs)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of entries to show (0 = all)")
	return cmd
}
