package config

import (
	"log/slog"
	"testing"

	"snapcheck/pkg/model"
	"snapcheck/pkg/system"
	"snapcheck/pkg/test"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFs(t *testing.T) {
	system.AppFs = afero.NewMemMapFs()
}

func TestLoadConfig_Valid(t *testing.T) {
	setupFs(t)
	logger := test.NewMockLogger(slog.LevelInfo)

	require.NoError(t, afero.WriteFile(system.AppFs, "/snapcheck.yaml", []byte(test.SampleConfigYAML()), 0644))

	cfg, err := LoadConfig("/snapcheck.yaml", logger)
	require.NoError(t, err)

	assert.Equal(t, "logs", cfg.LogDir)
	require.Len(t, cfg.Targets, 1)
	assert.Equal(t, "patterns", cfg.Targets[0].Name)
	assert.Equal(t, "python3", cfg.Targets[0].Command)
	assert.Equal(t, []string{"patterns.py", "output", "patterns.json"}, cfg.Targets[0].Args)
	// Defaults derived from the target name.
	assert.Equal(t, "patterns.txt", cfg.Targets[0].BaselineFile)
	assert.Equal(t, "patterns.1.txt", cfg.Targets[0].CandidateFile)
	assert.Equal(t, "patterns.diff.txt", cfg.Targets[0].DiffFile)
}

func TestLoadConfig_MultiTarget(t *testing.T) {
	setupFs(t)
	logger := test.NewMockLogger(slog.LevelInfo)

	require.NoError(t, afero.WriteFile(system.AppFs, "/snapcheck.yaml", []byte(test.MultiTargetConfigYAML()), 0644))

	cfg, err := LoadConfig("/snapcheck.yaml", logger)
	require.NoError(t, err)

	assert.Equal(t, "artifacts", cfg.LogDir)
	require.Len(t, cfg.Targets, 2)
	// Sorted by name.
	assert.Equal(t, "patterns", cfg.Targets[0].Name)
	assert.Equal(t, "validate", cfg.Targets[1].Name)
	// Explicit artifact names survive defaulting.
	assert.Equal(t, "validate-base.txt", cfg.Targets[1].BaselineFile)
	assert.Equal(t, "validate-new.txt", cfg.Targets[1].CandidateFile)
	assert.Equal(t, "validate.diff", cfg.Targets[1].DiffFile)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	setupFs(t)
	logger := test.NewMockLogger(slog.LevelInfo)

	_, err := LoadConfig("/nope.yaml", logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config")
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	setupFs(t)
	logger := test.NewMockLogger(slog.LevelInfo)

	require.NoError(t, afero.WriteFile(system.AppFs, "/snapcheck.yaml", []byte("targets: [unclosed"), 0644))

	_, err := LoadConfig("/snapcheck.yaml", logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing config")
}

func TestLoadConfig_ValidationFailure(t *testing.T) {
	setupFs(t)
	logger := test.NewMockLogger(slog.LevelInfo)

	require.NoError(t, afero.WriteFile(system.AppFs, "/snapcheck.yaml", []byte(test.InvalidConfigYAML()), 0644))

	_, err := LoadConfig("/snapcheck.yaml", logger)
	require.Error(t, err)

	var errs model.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 2) // duplicate name + empty command
}

func TestLoadConfig_NoTargets(t *testing.T) {
	setupFs(t)
	logger := test.NewMockLogger(slog.LevelInfo)

	require.NoError(t, afero.WriteFile(system.AppFs, "/snapcheck.yaml", []byte("log-dir: logs\n"), 0644))

	_, err := LoadConfig("/snapcheck.yaml", logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one target")
}
