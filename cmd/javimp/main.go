package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
)

const (
	executableName = "javimp"
)

// errReported is returned once the failure has already been written to the
// error stream.
var errReported = errors.New("reported")

// environment holds the process-level inputs of a run.
type environment struct {
	stdout io.Writer
	stderr io.Writer
	// baseDir is the directory holding the executable, where the class list
	// and config file are looked up by default.
	baseDir string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := &environment{
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		baseDir: executableDir(),
	}

	if err := newRootCommand(env).ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "%s: ERROR: %v\n", executableName, err)
		}
		stop()
		os.Exit(1)
	}
}

func newRootCommand(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   executableName + " [FILE...]",
		Short: shortHelp,
		Long:  longHelp,
		// arguments are partitioned by parseArgs: unknown options are skipped
		// without consuming the following filename.
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv := parseArgs(args)
			if inv.help {
				return cmd.Help()
			}
			a, err := newApp(env)
			if err != nil {
				return err
			}
			return a.run(cmd.Context(), inv)
		},
	}
	cmd.SetOut(env.stdout)
	cmd.SetErr(env.stderr)
	return cmd
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}
