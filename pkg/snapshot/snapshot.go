// Package snapshot runs a target's command and manages its baseline,
// candidate and diff report artifacts.
package snapshot

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"

	"snapcheck/pkg/diff"
	"snapcheck/pkg/log"
	"snapcheck/pkg/model"
	"snapcheck/pkg/runner"

	"github.com/spf13/afero"
)

// Runner captures the stdout of one target's command into snapshot
// artifacts under the log directory. All collaborators are injected so
// tests can substitute an in-memory filesystem and a fake command runner.
type Runner struct {
	fs     afero.Fs
	cmd    runner.CommandRunner
	logger log.Logger
	logDir string
	target model.Target
}

func NewRunner(fs afero.Fs, cmd runner.CommandRunner, logger log.Logger, logDir string, target model.Target) *Runner {
	return &Runner{
		fs:     fs,
		cmd:    cmd,
		logger: logger,
		logDir: logDir,
		target: target,
	}
}

func (r *Runner) BaselinePath() string {
	return filepath.Join(r.logDir, r.target.BaselineFile)
}

func (r *Runner) CandidatePath() string {
	return filepath.Join(r.logDir, r.target.CandidateFile)
}

func (r *Runner) DiffPath() string {
	return filepath.Join(r.logDir, r.target.DiffFile)
}

// EstablishBaseline runs the target's command and stores its stdout as the
// baseline, overwriting any previous one. Nothing is written when the
// command fails.
func (r *Runner) EstablishBaseline() error {
	out, err := r.capture()
	if err != nil {
		return err
	}
	if err := r.writeArtifact(r.BaselinePath(), out); err != nil {
		return err
	}
	r.logger.Info("baseline established", "target", r.target.Name, "path", r.BaselinePath(), "bytes", len(out))
	return nil
}

// CompareAgainstBaseline runs the target's command, stores its stdout as
// the candidate, diffs it against the stored baseline and persists the
// rendered report. Candidate and report are overwritten on every call; the
// baseline is never touched. Returns *MissingBaselineError, without
// running the command, when no baseline exists.
func (r *Runner) CompareAgainstBaseline() (*model.DiffReport, error) {
	baseline, err := afero.ReadFile(r.fs, r.BaselinePath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &MissingBaselineError{Path: r.BaselinePath()}
		}
		return nil, &FilesystemError{Op: "read", Path: r.BaselinePath(), Err: err}
	}

	out, err := r.capture()
	if err != nil {
		return nil, err
	}
	if err := r.writeArtifact(r.CandidatePath(), out); err != nil {
		return nil, err
	}

	report := diff.Lines(string(baseline), string(out))
	if err := r.writeArtifact(r.DiffPath(), []byte(report.Render())); err != nil {
		return nil, err
	}

	deleted, inserted := report.Stats()
	r.logger.Info("comparison complete", "target", r.target.Name,
		"changed", !report.Empty(), "deleted", deleted, "inserted", inserted)
	return report, nil
}

func (r *Runner) capture() ([]byte, error) {
	r.logger.Debug("running command", "command", r.target.Command, "args", r.target.Args)
	out, err := r.cmd.Run(r.target.Command, r.target.Args...)
	if err != nil {
		execErr := &ExecutionError{Name: r.target.Command, Args: r.target.Args, Err: err}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			execErr.Stderr = string(exitErr.Stderr)
		}
		return nil, execErr
	}
	return out, nil
}

// writeArtifact overwrites path with data, creating the log directory on
// first use.
func (r *Runner) writeArtifact(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := r.fs.MkdirAll(dir, 0755); err != nil {
		return &FilesystemError{Op: "create directory", Path: dir, Err: err}
	}
	if err := afero.WriteFile(r.fs, path, data, 0644); err != nil {
		return &FilesystemError{Op: "write", Path: path, Err: err}
	}
	return nil
}
