package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// invocation is the parsed command line.
type invocation struct {
	// help is set when -h or --help appears anywhere.
	help bool
	// files are the positional arguments, in order.
	files []string
	// ignored are unrecognized leading-dash arguments.
	ignored []string
}

func parseArgs(args []string) *invocation {
	inv := new(invocation)
	for _, arg := range args {
		switch {
		case arg == "-h" || arg == "--help":
			inv.help = true
		case strings.HasPrefix(arg, "-"):
			inv.ignored = append(inv.ignored, arg)
		default:
			inv.files = append(inv.files, arg)
		}
	}
	return inv
}

// expandFiles resolves glob patterns such as "src/**/*.java".  Arguments
// without glob metacharacters are kept even if they do not exist, so that
// the error surfaces when the file is read.
func expandFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			files = append(files, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", arg)
		}
		sort.Strings(matches)
		for _, match := range matches {
			files = append(files, filepath.Clean(match))
		}
	}
	return files, nil
}
