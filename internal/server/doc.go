// Package server wires and runs the account service's HTTP server.
//
// It owns the server lifecycle: listening, signal handling, and graceful
// shutdown bounded by the configured shutdown timeout.
package server
