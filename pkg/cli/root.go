package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bffd/bffd/pkg/config"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	adminURL   string
	jsonOutput bool
	timeout    time.Duration
}

func (g *globalFlags) client() AdminClient {
	return NewAdminClient(g.adminURL, WithTimeout(g.timeout))
}

// NewRootCommand builds the bffd command tree.
func NewRootCommand() *cobra.Command {
	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "bffd",
		Short: "bffd is a backend-for-frontend dispatch and proxy server",
		Long: `bffd is a backend-for-frontend server that sits between a single-page
application and its backend.

It serves the SPA's static assets, forwards registered routes to an upstream
API, acknowledges locally handled routes, and records recent traffic. Routes
and the request log are managed at runtime through /api/routes and /api/logs.

Configuration comes from flags and environment variables (PORT, FRONTEND_DIR,
TARGET_BFF_URL, BFF_ROUTES_FILE, BFF_LOG_LEVEL, BFF_LOG_FORMAT).`,
		// No Run function here means 'bffd' with no args will print help text by default.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&g.adminURL, "admin-url", config.AdminURL(), "Base URL of a running bffd")
	rootCmd.PersistentFlags().BoolVar(&g.jsonOutput, "json", false, "Output command results in JSON format")
	rootCmd.PersistentFlags().DurationVar(&g.timeout, "timeout", defaultClientTimeout, "Timeout for calls to the management API")

	rootCmd.AddCommand(
		newServeCmd(),
		newRoutesCmd(g),
		newLogsCmd(g),
		newStatusCmd(g),
		newVersionCmd(g),
	)
	return rootCmd
}

// Main runs the CLI with os.Args and returns the process exit code.
func Main() int {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// Execute runs the CLI and exits the process on failure.
// This is called by main.main().
func Execute() {
	if code := Main(); code != 0 {
		os.Exit(code)
	}
}
