package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so that config files can spell durations as
// strings ("30s", "5m").
type Duration time.Duration

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalJSON implements json.Unmarshaler. Both duration strings and
// integer nanoseconds are accepted.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	return d.set(v)
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var v any
	if err := value.Decode(&v); err != nil {
		return err
	}

	return d.set(v)
}

func (d *Duration) set(v any) error {
	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
	case int:
		*d = Duration(time.Duration(value))
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
	default:
		return errors.New("invalid duration")
	}

	return nil
}

// StructuredFileConfig is the on-disk representation of the configuration.
// Every field is optional; missing fields leave lower-priority values intact.
type StructuredFileConfig struct {
	App struct {
		Name        string `json:"name,omitempty" yaml:"name,omitempty"`
		Version     string `json:"version,omitempty" yaml:"version,omitempty"`
		Environment string `json:"environment,omitempty" yaml:"environment,omitempty"`
		Debug       bool   `json:"debug,omitempty" yaml:"debug,omitempty"`
		LogLevel    string `json:"log_level,omitempty" yaml:"log_level,omitempty"`
		DisableSeed bool   `json:"disable_seed,omitempty" yaml:"disable_seed,omitempty"`
	} `json:"app" yaml:"app"`
	Auth struct {
		SecretKey                string   `json:"secret_key,omitempty" yaml:"secret_key,omitempty"`
		Algorithm                string   `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`
		AccessTokenExpireMinutes int      `json:"access_token_expire_minutes,omitempty" yaml:"access_token_expire_minutes,omitempty"`
		TokenLeeway              Duration `json:"token_leeway,omitempty" yaml:"token_leeway,omitempty"`
		BcryptCost               int      `json:"bcrypt_cost,omitempty" yaml:"bcrypt_cost,omitempty"`
	} `json:"auth" yaml:"auth"`
	Storage struct {
		DB struct {
			DSN string `json:"dsn,omitempty" yaml:"dsn,omitempty"`
		} `json:"db" yaml:"db"`
		Cache struct {
			RedisURL string   `json:"redis_url,omitempty" yaml:"redis_url,omitempty"`
			TTL      Duration `json:"ttl,omitempty" yaml:"ttl,omitempty"`
		} `json:"cache" yaml:"cache"`
	} `json:"storage" yaml:"storage"`
	Server struct {
		HTTPAddress     string   `json:"address,omitempty" yaml:"address,omitempty"`
		RequestTimeout  Duration `json:"request_timeout,omitempty" yaml:"request_timeout,omitempty"`
		ShutdownTimeout Duration `json:"shutdown_timeout,omitempty" yaml:"shutdown_timeout,omitempty"`
		AllowedOrigins  []string `json:"allowed_origins,omitempty" yaml:"allowed_origins,omitempty"`
		AllowedHosts    []string `json:"allowed_hosts,omitempty" yaml:"allowed_hosts,omitempty"`
		DisableMetrics  bool     `json:"disable_metrics,omitempty" yaml:"disable_metrics,omitempty"`
	} `json:"server" yaml:"server"`
}

// parseConfigFile reads the file at path and converts it to a
// [StructuredConfig]. Files ending in .yaml or .yml are decoded as YAML,
// everything else as JSON.
func parseConfigFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fileCfg)
	default:
		err = json.Unmarshal(data, &fileCfg)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file %q: %w", path, err)
	}

	return fileCfg.toStructuredConfig(), nil
}

func (f *StructuredFileConfig) toStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:        f.App.Name,
			Version:     f.App.Version,
			Environment: f.App.Environment,
			Debug:       f.App.Debug,
			LogLevel:    f.App.LogLevel,
			DisableSeed: f.App.DisableSeed,
		},
		Auth: Auth{
			SecretKey:                f.Auth.SecretKey,
			Algorithm:                f.Auth.Algorithm,
			AccessTokenExpireMinutes: f.Auth.AccessTokenExpireMinutes,
			TokenLeeway:              time.Duration(f.Auth.TokenLeeway),
			BcryptCost:               f.Auth.BcryptCost,
		},
		Storage: Storage{
			DB: DB{
				DSN: f.Storage.DB.DSN,
			},
			Cache: Cache{
				RedisURL: f.Storage.Cache.RedisURL,
				TTL:      time.Duration(f.Storage.Cache.TTL),
			},
		},
		Server: Server{
			HTTPAddress:     f.Server.HTTPAddress,
			RequestTimeout:  time.Duration(f.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(f.Server.ShutdownTimeout),
			AllowedOrigins:  f.Server.AllowedOrigins,
			AllowedHosts:    f.Server.AllowedHosts,
			DisableMetrics:  f.Server.DisableMetrics,
		},
	}
}
