// Package server wires and runs the gateway's HTTP server.
//
// It owns the server lifecycle: startup, signal handling (SIGTERM, SIGINT,
// SIGQUIT) and graceful shutdown bounded by the configured timeout.
package server
