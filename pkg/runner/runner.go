// Package runner defines interfaces for command execution.
// This package exists to break import cycles between testing and system packages.
package runner

// CommandRunner defines an interface for running external commands.
// This allows for mocking in tests. Implementations capture standard
// output only; standard error belongs to the returned error.
type CommandRunner interface {
	Run(name string, args ...string) ([]byte, error)
}
