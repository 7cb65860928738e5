package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/bffd/bffd/pkg/requestlog"
)

// Defaults.
const (
	DefaultPort         = 8080
	DefaultFrontendDir  = "frontend/dist"
	DefaultTargetURL    = "http://localhost:3000"
	DefaultReadTimeout  = 30 * time.Second
	DefaultWriteTimeout = 30 * time.Second
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the runtime configuration of the server.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port int `json:"port"`

	// FrontendDir holds the SPA assets and index.html.
	FrontendDir string `json:"frontendDir"`

	// TargetURL is the base URL proxied requests are forwarded to.
	TargetURL string `json:"targetUrl"`

	// RoutesFile optionally seeds the route registry at startup.
	RoutesFile string `json:"routesFile,omitempty"`

	// LogLevel and LogFormat configure operational logging.
	LogLevel  string `json:"logLevel"`
	LogFormat string `json:"logFormat"`

	// MaxLogEntries bounds the request history.
	MaxLogEntries int `json:"maxLogEntries"`

	ReadTimeout  time.Duration `json:"readTimeout"`
	WriteTimeout time.Duration `json:"writeTimeout"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Port:          DefaultPort,
		FrontendDir:   DefaultFrontendDir,
		TargetURL:     DefaultTargetURL,
		LogLevel:      DefaultLogLevel,
		LogFormat:     DefaultLogFormat,
		MaxLogEntries: requestlog.DefaultCapacity,
		ReadTimeout:   DefaultReadTimeout,
		WriteTimeout:  DefaultWriteTimeout,
	}
}

// Load returns the defaults overlaid with the environment.
func Load() *Config {
	cfg := Default()
	LoadEnv(cfg)
	return cfg
}

// Addr returns the listen address for the configured port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
	}
	if c.FrontendDir == "" {
		return fmt.Errorf("%w: frontend directory is empty", ErrInvalidConfig)
	}
	u, err := url.Parse(c.TargetURL)
	if err != nil {
		return fmt.Errorf("%w: target url: %v", ErrInvalidConfig, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: target url %q must use http or https", ErrInvalidConfig, c.TargetURL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: target url %q has no host", ErrInvalidConfig, c.TargetURL)
	}
	if c.MaxLogEntries < 0 {
		return fmt.Errorf("%w: max log entries must not be negative", ErrInvalidConfig)
	}
	return nil
}
