package system

import (
	"os/exec"

	"snapcheck/pkg/runner"
)

// CommandRunner defines an interface for running commands.
// Re-exported from pkg/runner for convenience.
type CommandRunner = runner.CommandRunner

// LiveCommandRunner is an implementation of CommandRunner that runs commands
// as real subprocesses.
type LiveCommandRunner struct{}

// Run executes the given command and returns its standard output. On a
// non-zero exit the returned *exec.ExitError carries the captured stderr.
func (r *LiveCommandRunner) Run(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	return cmd.Output()
}
