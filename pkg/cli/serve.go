package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bffd/bffd/pkg/config"
	"github.com/bffd/bffd/pkg/engine"
	"github.com/bffd/bffd/pkg/logging"
)

// shutdownTimeout bounds how long in-flight requests may take to drain.
const shutdownTimeout = 10 * time.Second

// serveFlags holds all parsed command-line flags for the serve command.
type serveFlags struct {
	port          int
	frontendDir   string
	targetURL     string
	routesFile    string
	logLevel      string
	logFormat     string
	maxLogEntries int
	readTimeout   time.Duration
	writeTimeout  time.Duration
}

func newServeCmd() *cobra.Command {
	cmd, _ := buildServeCmd()
	return cmd
}

// buildServeCmd returns the serve command with the flag values it binds.
func buildServeCmd() (*cobra.Command, *serveFlags) {
	f := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the BFF server",
		Long: `Start the BFF server in the foreground.

Flags override environment variables, which override built-in defaults.`,
		Example: `  # Serve ./frontend/dist and proxy to a local API
  bffd serve

  # Custom port, assets and upstream
  bffd serve -p 9000 --frontend-dir ./dist --target-url http://api:3000

  # Seed routes at startup
  bffd serve --routes routes.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			applyServeFlags(cmd.Flags(), f, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runServe(cmd.Context(), cmd, cfg)
		},
	}

	defaults := config.Default()
	cmd.Flags().IntVarP(&f.port, "port", "p", defaults.Port, "HTTP server port (env PORT)")
	cmd.Flags().StringVar(&f.frontendDir, "frontend-dir", defaults.FrontendDir, "Directory with SPA assets and index.html (env FRONTEND_DIR)")
	cmd.Flags().StringVar(&f.targetURL, "target-url", defaults.TargetURL, "Upstream base URL for proxied routes (env TARGET_BFF_URL)")
	cmd.Flags().StringVar(&f.routesFile, "routes", "", "JSON or YAML file of routes to register at startup (env BFF_ROUTES_FILE)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", defaults.LogLevel, "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&f.logFormat, "log-format", defaults.LogFormat, "Log format (text, json)")
	cmd.Flags().IntVar(&f.maxLogEntries, "max-log-entries", defaults.MaxLogEntries, "Maximum request log entries")
	cmd.Flags().DurationVar(&f.readTimeout, "read-timeout", defaults.ReadTimeout, "HTTP read timeout")
	cmd.Flags().DurationVar(&f.writeTimeout, "write-timeout", defaults.WriteTimeout, "HTTP write timeout")

	return cmd, f
}

// applyServeFlags copies explicitly set flags onto cfg so that unset flags
// leave environment values in place.
func applyServeFlags(fs *pflag.FlagSet, f *serveFlags, cfg *config.Config) {
	if fs.Changed("port") {
		cfg.Port = f.port
	}
	if fs.Changed("frontend-dir") {
		cfg.FrontendDir = f.frontendDir
	}
	if fs.Changed("target-url") {
		cfg.TargetURL = f.targetURL
	}
	if fs.Changed("routes") {
		cfg.RoutesFile = f.routesFile
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if fs.Changed("log-format") {
		cfg.LogFormat = f.logFormat
	}
	if fs.Changed("max-log-entries") {
		cfg.MaxLogEntries = f.maxLogEntries
	}
	if fs.Changed("read-timeout") {
		cfg.ReadTimeout = f.readTimeout
	}
	if fs.Changed("write-timeout") {
		cfg.WriteTimeout = f.writeTimeout
	}
}

// runServe starts the server and blocks until ctx is cancelled or the
// process receives SIGINT or SIGTERM.
func runServe(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	log := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	app := engine.NewApp(cfg, log)

	if cfg.RoutesFile != "" {
		n, err := config.SeedRoutes(app.Routes, cfg.RoutesFile)
		if err != nil {
			return fmt.Errorf("loading routes: %w", err)
		}
		log.Info("routes loaded", "file", cfg.RoutesFile, "count", n)
	}

	srv := engine.NewServer(cfg, app)
	if err := srv.Start(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "BFF listening on http://%s\n", srv.Addr())

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	fmt.Fprintln(cmd.OutOrStdout(), "\nShutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Stop(shutdownCtx)
}
