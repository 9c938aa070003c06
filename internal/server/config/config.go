// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the zkpauth server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - SessionSecret: HMAC secret for signing session JWTs (HS256). Do not use the dev default in prod.
//   - ChallengeTTL: how long an issued challenge stays answerable. Zero disables expiry.
//   - SessionTTL: lifetime of sessions and their tokens. Zero disables expiry.
//   - SweepInterval: how often expired challenges and sessions are purged.
type Config struct {
	EndpointAddrGRPC string
	SessionSecret    string
	ChallengeTTL     time.Duration
	SessionTTL       time.Duration
	SweepInterval    time.Duration
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: The session secret is insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.SessionSecret = "dev-session-secret"
	c.ChallengeTTL = 2 * time.Minute
	c.SessionTTL = 30 * time.Minute
	c.SweepInterval = 30 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
