// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

// Client-facing error messages. Authentication failures share one message
// per surface so that the specific reason is never revealed.
const (
	msgInvalidJSON           = "Invalid JSON was passed"
	msgInvalidCredentials    = "Incorrect username or password"
	msgCouldNotValidate      = "Could not validate credentials"
	msgUsernameTaken         = "Username already registered"
	msgInvalidHost           = "Invalid host header"
	msgServiceUnavailable    = "Service temporarily unavailable"
	msgInternalServerError   = "Internal server error"
	msgAssessmentFailed      = "Failed to assess credit risk"
	wwwAuthenticateHeader    = "WWW-Authenticate"
	wwwAuthenticateChallenge = "Bearer"
)
