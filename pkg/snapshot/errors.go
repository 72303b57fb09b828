package snapshot

import (
	"fmt"
	"strings"
)

// ExecutionError reports that the snapshotted command could not be started
// or exited with a non-zero status.
type ExecutionError struct {
	Name   string
	Args   []string
	Stderr string
	Err    error
}

func (e *ExecutionError) Error() string {
	cmdline := strings.Join(append([]string{e.Name}, e.Args...), " ")
	msg := fmt.Sprintf("command %q failed: %v", cmdline, e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *ExecutionError) Unwrap() error { return e.Err }

// MissingBaselineError reports a comparison attempted before any baseline
// was established.
type MissingBaselineError struct {
	Path string
}

func (e *MissingBaselineError) Error() string {
	return fmt.Sprintf("no baseline at %s: establish one with the baseline command first", e.Path)
}

// FilesystemError reports a failure to create the log directory or to
// write a snapshot artifact.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }
