// Package admin provides the management REST API of bffd.
//
// The API lets callers register and update dispatch routes at runtime and
// inspect the bounded request history without restarting the server.
//
// Endpoints:
//
//	GET  /api/routes   - List all routes in registration order
//	POST /api/routes   - Create a route, or update it in place by id
//	GET  /api/logs     - List request log entries, oldest first (?limit=n for the newest n)
//	GET  /api/health   - Liveness and counters
//
// Any other method or path is left to the dispatch engine; Register only
// adds the exact method and path pairs above to the mux.
package admin
