// Package flagx lets several loaders share os.Args: each one picks out only
// the flags it owns and parses them with its own FlagSet.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// configFlags are the names accepted for the JSON configuration file path.
var configFlags = []string{"-c", "-config", "--config"}

// FilterArgs keeps the arguments belonging to allowedFlags and drops the
// rest. Both "-f value" and "-f=value" forms are understood; in the first
// form the value is kept only if it does not itself look like a flag.
// The result is never nil.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, found := strings.Cut(arg, "="); found && strings.HasPrefix(arg, "-") {
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// ConfigFilePath returns the JSON configuration path given with -c, -config
// or --config, or "" when none is present. The last occurrence wins.
func ConfigFilePath() string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(FilterArgs(os.Args[1:], configFlags))

	return path
}
