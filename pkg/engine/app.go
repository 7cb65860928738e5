package engine

import (
	"log/slog"

	"github.com/bffd/bffd/pkg/config"
	"github.com/bffd/bffd/pkg/logging"
	"github.com/bffd/bffd/pkg/requestlog"
	"github.com/bffd/bffd/pkg/route"
	"github.com/bffd/bffd/pkg/upstream"
)

// App is the application context shared by all request handlers.
type App struct {
	Routes    *route.Registry
	Logs      requestlog.Store
	Forwarder *upstream.Forwarder
	Assets    *Assets
	Logger    *slog.Logger
}

// NewApp builds an App from configuration with an empty route registry.
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = logging.Nop()
	}
	return &App{
		Routes:    route.NewRegistry(),
		Logs:      requestlog.NewMemoryStore(cfg.MaxLogEntries),
		Forwarder: upstream.New(cfg.TargetURL, upstream.WithLogger(logger.With("component", "upstream"))),
		Assets:    NewAssets(cfg.FrontendDir),
		Logger:    logger,
	}
}
