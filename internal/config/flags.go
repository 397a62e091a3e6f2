package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the server configuration flags found in args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d credential store DSN (memory, postgres://..., sqlite://...)
//	-redis-url user cache Redis URL
//	-c/-config JSON or YAML file path with configs
//	-env deployment environment
//	-log-level log level (debug, info, warn, error)
//	-secret-key token signing secret
//	-algorithm token signing algorithm
//	-token-expire-minutes default token lifetime in minutes
//	-token-leeway tolerated clock skew (e.g., "5s")
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var redisURL string
	var configPath string
	var environment string
	var logLevel string
	var secretKey string
	var algorithm string
	var expireMinutes int
	var tokenLeeway time.Duration
	var requestTimeout time.Duration

	fs := flag.NewFlagSet("credit-risk-gateway", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Credential store DSN")
	fs.StringVar(&redisURL, "redis-url", "", "User cache Redis URL")
	fs.StringVar(&configPath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or YAML config file path (alias)")
	fs.StringVar(&environment, "env", "", "Deployment environment")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&secretKey, "secret-key", "", "Token signing secret")
	fs.StringVar(&algorithm, "algorithm", "", "Token signing algorithm")
	fs.IntVar(&expireMinutes, "token-expire-minutes", 0, "Token lifetime in minutes")
	fs.DurationVar(&tokenLeeway, "token-leeway", 0, "Tolerated clock skew (e.g., 5s)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Environment: environment,
			LogLevel:    logLevel,
		},
		Auth: Auth{
			SecretKey:                secretKey,
			Algorithm:                algorithm,
			AccessTokenExpireMinutes: expireMinutes,
			TokenLeeway:              tokenLeeway,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Cache: Cache{
				RedisURL: redisURL,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		FilePath: configPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. Any other host must be "localhost" or
// a valid IP address.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && !strings.EqualFold(host, "localhost") {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
