// Package route holds the dynamically registered dispatch rules of bffd.
//
// A Route maps an exact (method, path) pair to a handling mode: either the
// request is forwarded to the configured upstream (ModeProxy) or answered
// locally with a fixed acknowledgment (ModeHandled).
//
// Routes live in a Registry, an in-memory, insertion-ordered collection that
// is safe for concurrent use. Routes are never deleted; AddOrUpdate replaces
// a route in place when its ID is already registered and appends otherwise.
//
//	reg := route.NewRegistry()
//	reg.AddOrUpdate(route.Route{ID: 1, Method: "GET", Path: "/users", Mode: route.ModeProxy})
//	if r, ok := reg.Find("get", "/users"); ok {
//	    // ...
//	}
//
// This is a leaf package with no internal dependencies.
package route
