package javac

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/rs/zerolog"

	"github.com/stackb/javimp/pkg/importfix"
	"github.com/stackb/javimp/pkg/procutil"
)

// DefaultExecutable is the compiler used when none is configured.
const DefaultExecutable = "javac"

// InvocationError is returned when the compiler could not be run at all, as
// opposed to running and reporting errors.
type InvocationError struct {
	Command string
	Err     error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// CollectorOptions configures a Collector.
type CollectorOptions struct {
	// Executable is the compiler to run.  Defaults to "javac".
	Executable string
	// Args are passed before the filename.
	Args   []string
	Logger zerolog.Logger
}

// Collector runs the compiler on a source file and gathers the unqualified
// names it could not find.  It implements importfix.SymbolCollector.
type Collector struct {
	executable string
	args       []string
	logger     zerolog.Logger
}

// NewCollector constructs a new Collector.
func NewCollector(options *CollectorOptions) *Collector {
	executable := options.Executable
	if executable == "" {
		executable = DefaultExecutable
	}
	return &Collector{
		executable: executable,
		args:       options.Args,
		logger:     options.Logger,
	}
}

// Collect implements importfix.SymbolCollector.  A non-zero compiler exit
// status is expected and is not an error.
func (c *Collector) Collect(ctx context.Context, filename string) (importfix.Queue, error) {
	args := append(append([]string(nil), c.args...), filename)

	cmd := exec.CommandContext(ctx, c.executable, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	c.logger.Debug().Str("cmd", cmd.String()).Msg("compiling")
	err := cmd.Run()
	exitCode := procutil.CmdExitCode(cmd, err)
	if exitCode < 0 {
		return importfix.Queue{}, &InvocationError{Command: cmd.String(), Err: err}
	}
	c.logger.Debug().Str("file", filename).Int("exit_code", exitCode).Msg("compiled")

	symbols, err := Scan(stderr.Bytes())
	if err != nil {
		return importfix.Queue{}, fmt.Errorf("scanning compiler output: %w", err)
	}
	return importfix.NewQueue(symbols...), nil
}
