package admin

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/bffd/bffd/pkg/logging"
	"github.com/bffd/bffd/pkg/requestlog"
	"github.com/bffd/bffd/pkg/route"
)

// maxRouteBodySize bounds POST /api/routes payloads.
const maxRouteBodySize = 1 << 20

// API exposes the management endpoints over the shared route registry and
// request log.
type API struct {
	routes    *route.Registry
	logs      requestlog.Store
	log       *slog.Logger
	startTime time.Time
}

// Option configures an API.
type Option func(*API)

// WithLogger sets the operational logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *API) {
		if logger != nil {
			a.log = logger
		}
	}
}

// New creates an API over the given registry and log store.
func New(routes *route.Registry, logs requestlog.Store, opts ...Option) *API {
	a := &API{
		routes:    routes,
		logs:      logs,
		log:       logging.Nop(),
		startTime: time.Now(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Handler returns a mux serving only the management endpoints.
func (a *API) Handler() *http.ServeMux {
	mux := http.NewServeMux()
	a.Register(mux)
	return mux
}

// Uptime returns the number of seconds since the API was created.
func (a *API) Uptime() int {
	return int(time.Since(a.startTime).Seconds())
}
