package models

import "time"

// HealthCheck is the flat status record served by the health endpoint.
type HealthCheck struct {
	Status      string    `json:"status"`
	Version     string    `json:"version"`
	Environment string    `json:"environment"`
	Timestamp   time.Time `json:"timestamp"`
}

// RootInfo is served by the root endpoint.
type RootInfo struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
	Health  string `json:"health"`
}

// ErrorResponse is the body of every error reply produced by the API.
type ErrorResponse struct {
	Error string `json:"error"`
}
