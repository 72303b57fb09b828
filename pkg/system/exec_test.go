package system

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiveCommandRunner_CapturesStdout(t *testing.T) {
	runner := &LiveCommandRunner{}

	out, err := runner.Run("sh", "-c", "echo hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(out))
}

func TestLiveCommandRunner_StdoutOnly(t *testing.T) {
	runner := &LiveCommandRunner{}

	out, err := runner.Run("sh", "-c", "echo out; echo noise >&2")
	require.NoError(t, err)
	assert.Equal(t, "out\n", string(out))
}

func TestLiveCommandRunner_NonZeroExit(t *testing.T) {
	runner := &LiveCommandRunner{}

	_, err := runner.Run("sh", "-c", "echo oops >&2; exit 3")
	require.Error(t, err)

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.ExitCode())
	assert.Equal(t, "oops\n", string(exitErr.Stderr))
}

func TestLiveCommandRunner_MissingBinary(t *testing.T) {
	runner := &LiveCommandRunner{}

	_, err := runner.Run("definitely-not-a-real-binary-xyz")
	require.Error(t, err)
}
