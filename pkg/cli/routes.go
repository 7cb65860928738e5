package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bffd/bffd/pkg/cli/internal/output"
	"github.com/bffd/bffd/pkg/config"
	"github.com/bffd/bffd/pkg/route"
)

func newRoutesCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Manage routes on a running server",
	}
	cmd.AddCommand(
		newRoutesListCmd(g),
		newRoutesAddCmd(g),
		newRoutesApplyCmd(g),
	)
	return cmd
}

func newRoutesListCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List registered routes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			routes, err := g.client().ListRoutes()
			if err != nil {
				return fmt.Errorf("%s", FormatConnectionError(err))
			}

			w := cmd.OutOrStdout()
			if g.jsonOutput {
				return output.JSON(w, routes)
			}

			if len(routes) == 0 {
				fmt.Fprintln(w, "No routes registered")
				return nil
			}

			tw := output.Table(w)
			fmt.Fprintln(tw, "ID\tMETHOD\tPATH\tMODE\tTARGET\tDESCRIPTION")
			for _, rt := range routes {
				target := ""
				if rt.TargetPath != nil {
					target = *rt.TargetPath
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
					rt.ID, strings.ToUpper(rt.Method), rt.Path, rt.Mode, output.Dash(target), output.Dash(rt.Description))
			}
			return tw.Flush()
		},
	}
}

// routeFlags holds the flags for routes add.
type routeFlags struct {
	id          int
	path        string
	method      string
	mode        string
	targetPath  string
	description string
}

func newRoutesAddCmd(g *globalFlags) *cobra.Command {
	f := &routeFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a route or replace the one with the same id",
		Example: `  # Forward GET /api/users upstream
  bffd routes add --id 1 --method GET --path /api/users --mode proxy

  # Forward to a different upstream path
  bffd routes add --id 2 --method GET --path /me --mode proxy --target-path /v2/users/me

  # Acknowledge locally
  bffd routes add --id 3 --method POST --path /track`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := route.ParseMode(f.mode)
			if err != nil {
				return err
			}
			rt := route.Route{
				ID:          f.id,
				Path:        f.path,
				Method:      f.method,
				Mode:        mode,
				Description: f.description,
			}
			if cmd.Flags().Changed("target-path") {
				rt.TargetPath = &f.targetPath
			}
			return saveRoutes(cmd, g, []route.Route{rt})
		},
	}

	cmd.Flags().IntVar(&f.id, "id", 0, "Route id (required)")
	cmd.Flags().StringVar(&f.path, "path", "", "Request path to match exactly (required)")
	cmd.Flags().StringVarP(&f.method, "method", "m", "GET", "HTTP method to match")
	cmd.Flags().StringVar(&f.mode, "mode", string(route.ModeHandled), "Dispatch mode (proxy, handled)")
	cmd.Flags().StringVar(&f.targetPath, "target-path", "", "Upstream path for proxy mode (defaults to --path)")
	cmd.Flags().StringVarP(&f.description, "description", "d", "", "Free-form description")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("path")

	return cmd
}

func newRoutesApplyCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "apply <file>",
		Short: "Register every route in a JSON or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			routes, err := config.LoadRoutes(args[0])
			if err != nil {
				return err
			}
			return saveRoutes(cmd, g, routes)
		},
	}
}

// routeSaveOutput is the JSON shape of one saved route.
type routeSaveOutput struct {
	ID      int    `json:"id"`
	Created bool   `json:"created"`
	Message string `json:"message"`
}

func saveRoutes(cmd *cobra.Command, g *globalFlags, routes []route.Route) error {
	client := g.client()
	w := cmd.OutOrStdout()

	results := make([]routeSaveOutput, 0, len(routes))
	for _, rt := range routes {
		res, err := client.SaveRoute(rt)
		if err != nil {
			return fmt.Errorf("route %d: %s", rt.ID, FormatConnectionError(err))
		}
		results = append(results, routeSaveOutput{ID: rt.ID, Created: res.Created, Message: res.Message})
		if !g.jsonOutput {
			fmt.Fprintf(w, "%s: %d %s %s\n", res.Message, rt.ID, strings.ToUpper(rt.Method), rt.Path)
		}
	}

	if g.jsonOutput {
		return output.JSON(w, results)
	}
	return nil
}
