package server

import "context"

// Server defines the lifecycle contract of the application server.
type Server interface {
	// Run serves requests until ctx is cancelled, then shuts down gracefully.
	// It returns an error if the server cannot start or fails while serving.
	Run(ctx context.Context) error

	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT arrives.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
