// Package cli implements the bffd command line: the serve command that runs
// the server, and client commands that talk to a running server's management
// API.
package cli
