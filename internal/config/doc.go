// Package config provides configuration loading, merging, and validation
// facilities for the credit-risk gateway.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. A .env file (values are exported into the process environment)
//  3. Environment variables
//  4. Command-line flags
//  5. JSON or YAML config file
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the command line client.
package config
