package config

import (
	"encoding/json"
	"os"

	"github.com/dpetrovs/zkpauth/internal/flagx"
	"github.com/dpetrovs/zkpauth/internal/timex"
)

// jsonConfig mirrors Config for JSON unmarshalling. Durations use
// timex.Duration, which accepts both strings such as "120s" and integer
// nanoseconds.
type jsonConfig struct {
	EndpointAddrGRPC string         `json:"endpoint_addr_grpc"`
	SessionSecret    string         `json:"session_secret"`
	ChallengeTTL     timex.Duration `json:"challenge_ttl"`
	SessionTTL       timex.Duration `json:"session_ttl"`
	SweepInterval    timex.Duration `json:"sweep_interval"`
}

// parseJSON overlays values from the JSON file named by the -c/-config
// flag, if any. Only fields present in the file override the current
// config. If the file cannot be read or contains invalid JSON, the
// function panics.
func parseJSON(config *Config) {
	path := flagx.ConfigFile()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &jsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrGRPC != "" {
		config.EndpointAddrGRPC = c.EndpointAddrGRPC
	}
	if c.SessionSecret != "" {
		config.SessionSecret = c.SessionSecret
	}
	if c.ChallengeTTL.Duration != 0 {
		config.ChallengeTTL = c.ChallengeTTL.Duration
	}
	if c.SessionTTL.Duration != 0 {
		config.SessionTTL = c.SessionTTL.Duration
	}
	if c.SweepInterval.Duration != 0 {
		config.SweepInterval = c.SweepInterval.Duration
	}
}
