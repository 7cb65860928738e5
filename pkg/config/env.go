package config

import (
	"os"
	"strconv"
)

// Environment variable names
const (
	EnvPort        = "PORT"
	EnvFrontendDir = "FRONTEND_DIR"
	EnvTargetURL   = "TARGET_BFF_URL"
	EnvRoutesFile  = "BFF_ROUTES_FILE"
	EnvLogLevel    = "BFF_LOG_LEVEL"
	EnvLogFormat   = "BFF_LOG_FORMAT"
	EnvAdminURL    = "BFF_ADMIN_URL"
)

// LoadEnv overlays environment variables onto cfg.
// It only sets values that are present in the environment; an unparsable
// PORT is ignored.
func LoadEnv(cfg *Config) {
	if v := os.Getenv(EnvPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}

	if v := os.Getenv(EnvFrontendDir); v != "" {
		cfg.FrontendDir = v
	}

	if v := os.Getenv(EnvTargetURL); v != "" {
		cfg.TargetURL = v
	}

	if v := os.Getenv(EnvRoutesFile); v != "" {
		cfg.RoutesFile = v
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
	}
}

// AdminURL returns the management API base URL used by CLI clients:
// BFF_ADMIN_URL when set, otherwise localhost on PORT (or the default port).
func AdminURL() string {
	if v := os.Getenv(EnvAdminURL); v != "" {
		return v
	}
	port := DefaultPort
	if v := os.Getenv(EnvPort); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			port = p
		}
	}
	return "http://localhost:" + strconv.Itoa(port)
}
