package config

import (
	"flag"
	"os"
	"time"

	"github.com/dpetrovs/zkpauth/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the backend server (default from Config)
//	-t int      per-request timeout in seconds (default from Config)
//
// The args are first filtered with flagx.Filter, so subcommands and their
// flags (register --name ...) never trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.Filter(os.Args[1:], "-a", "-t")

	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
