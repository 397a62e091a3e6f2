package server

import "context"

// Server defines the lifecycle contract of the gateway server.
//
// RunServer blocks until ctx is cancelled, a stop signal arrives or the
// listener fails, then shuts down gracefully.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server within ctx.
	Shutdown(ctx context.Context) error
}
