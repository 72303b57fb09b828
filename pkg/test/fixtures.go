package test

import "snapcheck/pkg/model"

// SampleConfig returns a basic harness configuration for testing, with
// defaults already applied.
func SampleConfig() *model.Config {
	cfg := &model.Config{
		LogDir: "logs",
		Targets: []model.Target{
			{
				Name:    "patterns",
				Command: "python3",
				Args:    []string{"patterns.py", "output", "patterns.json"},
			},
		},
	}
	cfg.ApplyDefaults()
	return cfg
}

// SampleConfigYAML returns a sample YAML configuration string.
func SampleConfigYAML() string {
	return `log-dir: logs
targets:
  - name: patterns
    command: python3
    args: ["patterns.py", "output", "patterns.json"]
`
}

// MultiTargetConfigYAML returns a configuration with two targets and
// explicit artifact names for one of them.
func MultiTargetConfigYAML() string {
	return `log-dir: artifacts
targets:
  - name: patterns
    command: python3
    args: ["patterns.py", "output", "patterns.json"]
  - name: validate
    command: python3
    args: ["validate.py"]
    baseline-file: validate-base.txt
    candidate-file: validate-new.txt
    diff-file: validate.diff
`
}

// InvalidConfigYAML returns YAML that parses but fails validation.
func InvalidConfigYAML() string {
	return `targets:
  - name: patterns
    command: python3
  - name: patterns
    command: ""
`
}
