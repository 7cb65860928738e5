package route

import "sync"

// Registry is a thread-safe, insertion-ordered collection of routes.
type Registry struct {
	mu     sync.RWMutex
	routes []Route
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		routes: make([]Route, 0),
	}
}

// List returns a snapshot of all routes in insertion order.
func (r *Registry) List() []Route {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Route, len(r.routes))
	copy(out, r.routes)
	return out
}

// AddOrUpdate replaces the first route with the same ID, keeping its
// position, or appends the route when no ID matches.
// It returns true when the route was appended.
func (r *Registry) AddOrUpdate(rt Route) bool {
	rt = rt.normalize()

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.routes {
		if r.routes[i].ID == rt.ID {
			r.routes[i] = rt
			return false
		}
	}
	r.routes = append(r.routes, rt)
	return true
}

// Find returns the first route, in registry order, matching method and path.
func (r *Registry) Find(method, path string) (Route, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.routes {
		if r.routes[i].Matches(method, path) {
			return r.routes[i], true
		}
	}
	return Route{}, false
}

// Count returns the number of registered routes.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.routes)
}
