// Package requestlog provides the bounded history of requests processed by
// the dispatch engine, kept for inspection through the management API.
//
// It is distinct from operational logging (which uses log/slog): each Entry
// records one completed request with its final status, latency, and a
// best-effort text projection of the request and response bodies.
//
// # Store Interface
//
// Store defines the interface for request history storage:
//   - Recording new entries
//   - Listing entries oldest-first
//   - Taking the newest N entries
//
// MemoryStore is the in-memory implementation. It holds at most a fixed
// number of entries and evicts the oldest ones once that capacity is
// exceeded.
//
//	store := requestlog.NewMemoryStore(requestlog.DefaultCapacity)
//	store.Log(&requestlog.Entry{
//	    Method: "GET",
//	    Path:   "/api/users",
//	    Status: 200,
//	})
//
// # Package Design
//
// This is a leaf package with no internal dependencies, allowing it to be
// imported by any package without creating import cycles.
package requestlog
