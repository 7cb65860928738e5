// CORS middleware for the dispatch engine.

package engine

import (
	"net/http"
)

// RouteChecker reports whether a request matches a registered route.
type RouteChecker interface {
	HasMatch(r *http.Request) bool
}

// CORSMiddleware permits every origin, method, and header.
type CORSMiddleware struct {
	handler http.Handler
	checker RouteChecker
}

// NewCORSMiddleware wraps handler with permissive CORS handling.
// The optional checker lets registered OPTIONS routes take precedence over
// preflight handling.
func NewCORSMiddleware(handler http.Handler, checker RouteChecker) *CORSMiddleware {
	return &CORSMiddleware{
		handler: handler,
		checker: checker,
	}
}

// ServeHTTP implements the http.Handler interface.
func (m *CORSMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Expose-Headers", "*")

	if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
		if m.checker != nil && m.checker.HasMatch(r) {
			m.handler.ServeHTTP(w, r)
			return
		}
		h.Set("Access-Control-Allow-Methods", "*")
		h.Set("Access-Control-Allow-Headers", "*")
		h.Add("Vary", "Access-Control-Request-Method")
		h.Add("Vary", "Access-Control-Request-Headers")
		w.WriteHeader(http.StatusOK)
		return
	}

	m.handler.ServeHTTP(w, r)
}
