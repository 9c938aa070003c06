// Package flagx helps several components parse flags from the same
// command line without tripping over each other's arguments.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// Filter returns only the arguments that belong to the given flag names,
// keeping "-f value" pairs and "-f=value" forms intact. Everything else
// (other flags, subcommands, positional args) is dropped, so a FlagSet
// parsing the result never chokes on flags it does not define.
func Filter(args []string, names ...string) []string {
	allowed := make(map[string]struct{}, len(names))
	for _, n := range names {
		allowed[n] = struct{}{}
	}

	kept := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		// -f=value form
		if name, _, ok := strings.Cut(arg, "="); ok {
			if _, ok := allowed[name]; ok {
				kept = append(kept, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			kept = append(kept, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				kept = append(kept, args[i+1])
				i++
			}
		}
	}
	return kept
}

// ConfigFile extracts the JSON config file path from -c / -config flags,
// if present on the command line. Returns "" when neither is set.
func ConfigFile() string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(Filter(os.Args[1:], "-c", "-config"))

	return path
}
