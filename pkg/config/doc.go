// Package config provides configuration loading for bffd.
//
// Configuration is resolved in order of increasing precedence: built-in
// defaults, environment variables, then command-line flags applied by the
// CLI. Routes can additionally be seeded at startup from a YAML or JSON file.
//
// # Environment
//
//	PORT              listening port (default 8080)
//	FRONTEND_DIR      static SPA assets and index.html (default frontend/dist)
//	TARGET_BFF_URL    upstream base URL for proxied routes (default http://localhost:3000)
//	BFF_ROUTES_FILE   optional route seed file
//	BFF_LOG_LEVEL     debug, info, warn, error
//	BFF_LOG_FORMAT    text or json
//
// # Route Seed Files
//
//	routes:
//	  - id: 1
//	    method: GET
//	    path: /api/users
//	    mode: proxy
//	    target_path: /v1/users
//	  - id: 2
//	    method: POST
//	    path: /api/ping
//	    mode: handled
package config
