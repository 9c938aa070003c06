package config

import (
	"encoding/json"
	"os"

	"github.com/dpetrovs/zkpauth/internal/flagx"
	"github.com/dpetrovs/zkpauth/internal/timex"
)

// jsonConfig mirrors Config for JSON unmarshalling. Durations use
// timex.Duration, which accepts both strings such as "10s" and integer
// nanoseconds.
type jsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
}

// parseJSON overlays values from the JSON file named by the -c/-config
// flag, if any. Only fields present in the file override the current
// config. If the file cannot be read or contains invalid JSON, the
// function panics.
func parseJSON(cfg *Config) {
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

	if c.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = c.ServerEndpointAddr
	}
	if c.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = c.RequestTimeout.Duration
	}
}
