// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment variables and command-line flags.
package config

import "time"

// ConfigFileEnv names the environment variable that may point at a JSON
// config file when neither -c nor -config is given.
const ConfigFileEnv = "GOPHAUTH_CONFIG"

// Config holds runtime settings for the gophauth server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the HTTP authentication API.
//   - EndpointAddrGRPC: bind address for the gRPC health endpoint.
//   - DatabaseDSN: storage backend. postgres:// (pgx), sqlite:// or file:
//     (modernc sqlite), or memory:// for a process-local store.
//   - CookieSecure: sets the Secure attribute on the session cookie.
//   - LogLevel: debug, info, warn or error.
//   - ShutdownTimeout: how long in-flight requests get on shutdown.
type Config struct {
	EndpointAddrHTTP string        `env:"GOPHAUTH_HTTP_ADDR"`
	EndpointAddrGRPC string        `env:"GOPHAUTH_GRPC_ADDR"`
	DatabaseDSN      string        `env:"GOPHAUTH_DATABASE_DSN"`
	CookieSecure     bool          `env:"GOPHAUTH_COOKIE_SECURE"`
	LogLevel         string        `env:"GOPHAUTH_LOG_LEVEL"`
	ShutdownTimeout  time.Duration `env:"GOPHAUTH_SHUTDOWN_TIMEOUT"`
}

// LoadDefaults populates Config with development defaults.
// The in-memory backend loses every account on restart.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8000"
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = "memory://"
	c.CookieSecure = false
	c.LogLevel = "info"
	c.ShutdownTimeout = 10 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
