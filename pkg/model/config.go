package model

import (
	"fmt"
	"sort"
)

// DefaultLogDir is where snapshot artifacts land when the config does not
// say otherwise.
const DefaultLogDir = "logs"

// Config is the root of the snapcheck.yaml schema.
type Config struct {
	LogDir  string   `yaml:"log-dir,omitempty"`
	Targets []Target `yaml:"targets"`
}

// Target declares one snapshotted command: what to run and which files
// under the log directory hold its baseline, candidate and diff report.
type Target struct {
	Name          string   `yaml:"name"`
	Command       string   `yaml:"command"`
	Args          []string `yaml:"args,omitempty"`
	BaselineFile  string   `yaml:"baseline-file,omitempty"`
	CandidateFile string   `yaml:"candidate-file,omitempty"`
	DiffFile      string   `yaml:"diff-file,omitempty"`
}

// ApplyDefaults fills the log dir and per-target artifact file names.
// Artifact names derive from the target name so that multiple targets can
// share one log directory without colliding.
func (c *Config) ApplyDefaults() {
	if c.LogDir == "" {
		c.LogDir = DefaultLogDir
	}
	for i := range c.Targets {
		t := &c.Targets[i]
		if t.Name == "" {
			continue
		}
		if t.BaselineFile == "" {
			t.BaselineFile = t.Name + ".txt"
		}
		if t.CandidateFile == "" {
			t.CandidateFile = t.Name + ".1.txt"
		}
		if t.DiffFile == "" {
			t.DiffFile = t.Name + ".diff.txt"
		}
	}
}

var _ Validator = (*Config)(nil)

func (c *Config) Validate() ValidationErrors {
	var errs ValidationErrors

	if len(c.Targets) == 0 {
		errs = append(errs, ValidationError{Field: "targets", Message: "at least one target must be defined"})
	}

	seen := make(map[string]bool)
	for i, t := range c.Targets {
		field := fmt.Sprintf("targets[%d]", i)
		if t.Name == "" {
			errs = append(errs, ValidationError{Field: field + ".name", Message: "target name cannot be empty"})
		} else if seen[t.Name] {
			errs = append(errs, ValidationError{Field: field + ".name", Message: fmt.Sprintf("duplicate target name %q", t.Name)})
		}
		seen[t.Name] = true
		if t.Command == "" {
			errs = append(errs, ValidationError{Field: field + ".command", Message: "command cannot be empty"})
		}
	}

	return errs
}

// Sort orders targets alphabetically for deterministic output.
func (c *Config) Sort() {
	sort.Slice(c.Targets, func(i, j int) bool {
		return c.Targets[i].Name < c.Targets[j].Name
	})
}

// FindTarget returns the target with the given name. An empty name matches
// when exactly one target is configured.
func (c *Config) FindTarget(name string) (Target, bool) {
	if name == "" {
		if len(c.Targets) == 1 {
			return c.Targets[0], true
		}
		return Target{}, false
	}
	for _, t := range c.Targets {
		if t.Name == name {
			return t, true
		}
	}
	return Target{}, false
}
