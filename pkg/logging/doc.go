// Package logging builds the slog loggers bffd components share.
//
// Operational logs are separate from the request history kept by package
// requestlog.
//
//	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
//	logger.Info("routes loaded", "count", 3)
//
// Components accept a *slog.Logger in their constructor or through an
// option and fall back to Nop.
package logging
