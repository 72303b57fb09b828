package test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// SetupTestFilesystem creates a temporary directory and returns an afero filesystem.
// The caller is responsible for setting system.AppFs if needed.
// Returns the filesystem and a cleanup function that should be deferred.
func SetupTestFilesystem(t *testing.T) (afero.Fs, func()) {
	tempDir, err := os.MkdirTemp("", "snapcheck-test-")
	require.NoError(t, err)

	fs := afero.NewBasePathFs(afero.NewOsFs(), tempDir)

	return fs, func() {
		os.RemoveAll(tempDir)
	}
}

// SetupMockFilesystem creates an in-memory filesystem for testing.
// The caller is responsible for setting system.AppFs if needed.
func SetupMockFilesystem(t *testing.T) afero.Fs {
	return afero.NewMemMapFs()
}

// CreateTestFile creates a file with content in the test filesystem.
func CreateTestFile(t *testing.T, fs afero.Fs, path, content string) {
	err := fs.MkdirAll(filepath.Dir(path), 0755)
	require.NoError(t, err)
	err = afero.WriteFile(fs, path, []byte(content), 0644)
	require.NoError(t, err)
}

// AssertFileExists checks that a file exists and has expected content.
func AssertFileExists(t *testing.T, fs afero.Fs, path, expectedContent string) {
	exists, err := afero.Exists(fs, path)
	require.NoError(t, err)
	require.True(t, exists, "File %s should exist", path)

	if expectedContent != "" {
		content, err := afero.ReadFile(fs, path)
		require.NoError(t, err)
		require.Equal(t, expectedContent, string(content))
	}
}

// AssertFileNotExists checks that a file does not exist.
func AssertFileNotExists(t *testing.T, fs afero.Fs, path string) {
	exists, err := afero.Exists(fs, path)
	require.NoError(t, err)
	require.False(t, exists, "File %s should not exist", path)
}

// AssertCommandExecuted checks that a command line was executed by the mock runner.
func AssertCommandExecuted(t *testing.T, runner *MockCommandRunner, name string, args ...string) {
	require.Contains(t, runner.Calls, Key(name, args...), "Command should have been executed: %s", Key(name, args...))
}

// AssertCommandNotExecuted checks that a command line was not executed.
func AssertCommandNotExecuted(t *testing.T, runner *MockCommandRunner, name string, args ...string) {
	require.NotContains(t, runner.Calls, Key(name, args...), "Command should not have been executed: %s", Key(name, args...))
}

// AssertLogContains checks that the logger captured a message containing the substring.
func AssertLogContains(t *testing.T, logger *MockLogger, substring string) {
	require.True(t, logger.HasMessage(substring), "Log should contain: %s", substring)
}
