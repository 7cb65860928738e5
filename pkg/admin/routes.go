// Route registration for the management API.

package admin

import "net/http"

// Register adds the management endpoints to mux.
func (a *API) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/routes", a.handleListRoutes)
	mux.HandleFunc("POST /api/routes", a.handleSaveRoute)
	mux.HandleFunc("GET /api/logs", a.handleListLogs)
	mux.HandleFunc("GET /api/health", a.handleHealth)
}
