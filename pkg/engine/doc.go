// Package engine provides the request dispatch engine of bffd.
//
// # Request Flow
//
//	inbound request
//	      │
//	      ▼
//	  permissive CORS (preflights answered unless a route claims OPTIONS)
//	      │
//	      ▼
//	  management API (/api/routes, /api/logs, /api/health)
//	      │ no match
//	      ▼
//	  Dispatcher
//	      1. buffer the body
//	      2. route registry match ──► proxy:   forward upstream, relay response
//	      │                       └─► handled: local JSON acknowledgment
//	      3. static asset under the frontend directory
//	      4. SPA shell (index.html)
//	      5. 404 {"error":"Not Found"}
//
// Every outcome of the Dispatcher writes exactly one request log entry.
//
// # Shared State
//
// App is the application context handed to every handler. It owns the route
// registry and the request log, each guarded by its own lock. Neither lock is
// held across I/O and the two are never taken together.
package engine
