package config

import (
	"flag"
	"os"
	"time"

	"github.com/dpetrovs/zkpauth/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-s string   session token HMAC secret
//	-t int      challenge ttl, seconds
//	-r int      session ttl, minutes
//	-w int      expired state sweep interval, seconds
//
// The args are first filtered with flagx.Filter so the server can share a
// command line with other components without tripping on their flags.
func parseFlags(config *Config) {
	args := flagx.Filter(os.Args[1:], "-a", "-s", "-t", "-r", "-w")

	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.SessionSecret, "s", config.SessionSecret, "session token secret key")

	challengeTTL := fs.Int("t", int(config.ChallengeTTL.Seconds()), "challenge ttl (in seconds)")
	sessionTTL := fs.Int("r", int(config.SessionTTL.Minutes()), "session ttl (in minutes)")
	sweepInterval := fs.Int("w", int(config.SweepInterval.Seconds()), "sweep interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.ChallengeTTL = time.Duration(*challengeTTL) * time.Second
	config.SessionTTL = time.Duration(*sessionTTL) * time.Minute
	config.SweepInterval = time.Duration(*sweepInterval) * time.Second
}
