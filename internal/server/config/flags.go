package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/zkauth/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-s string   session token HMAC secret
//	-t int      session token validity, minutes
//	-x int      challenge TTL, seconds (0 disables expiry)
//	-w int      challenge sweep interval, seconds
//	-o bool     allow re-registration of an existing identity (use -o=false)
//	-l string   log level
//
// Group parameters can only be set from the JSON file.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t", "-x", "-w", "-o", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "session token secret key")

	sessionTokenValidity := fs.Int("t", int(config.SessionTokenValidityDuration.Minutes()), "session token validity (in minutes)")
	challengeTTL := fs.Int("x", int(config.ChallengeTTL.Seconds()), "challenge ttl (in seconds)")
	sweepInterval := fs.Int("w", int(config.ChallengeSweepInterval.Seconds()), "challenge sweep interval (in seconds)")

	fs.BoolVar(&config.AllowReregistration, "o", config.AllowReregistration, "allow overwriting an existing registration")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionTokenValidityDuration = time.Duration(*sessionTokenValidity) * time.Minute
	config.ChallengeTTL = time.Duration(*challengeTTL) * time.Second
	config.ChallengeSweepInterval = time.Duration(*sweepInterval) * time.Second
}
