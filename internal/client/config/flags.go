package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/zkauth/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the server (default from Config)
//	-t int      request timeout in seconds (default from Config)
//	-m int      Argon2id memory in KiB (default from Config)
//
// Group parameters can only be set from the JSON file.
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	kdfMemory := fs.Uint("m", uint(cfg.KDFMemory), "argon2id memory (in KiB)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.KDFMemory = uint32(*kdfMemory)
}
