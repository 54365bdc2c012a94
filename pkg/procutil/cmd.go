package procutil

import (
	"errors"
	"os/exec"
	"syscall"
)

// CmdExitCode returns the exit status of a command that has been run, or -1
// if the command could not be started or was terminated by a signal.
func CmdExitCode(cmd *exec.Cmd, err error) int {
	if err == nil {
		if cmd.ProcessState == nil {
			return -1
		}
		// success, exitCode should be 0 if go is ok
		ws := cmd.ProcessState.Sys().(syscall.WaitStatus)
		return ws.ExitStatus()
	}

	// try to get the exit code
	var exitError *exec.ExitError
	if errors.As(err, &exitError) {
		ws := exitError.Sys().(syscall.WaitStatus)
		return ws.ExitStatus()
	}

	// This happens when the executable is not available in $PATH or is not
	// executable; there is no process state to consult.
	return -1
}
