package basicexecutor

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostprobe/hostprobe/pkg/exechelper"
)

func TestRunCommand(t *testing.T) {
	result := New().RunCommand(exechelper.ExecParams{
		CmdName: "echo",
		CmdArgs: []string{"hello"},
	})
	require.NoError(t, result.Error)
	assert.Equal(t, 0, result.ExitCode)
	// the trailing newline is trimmed
	assert.Equal(t, "hello", result.OutBuf.String())
}

func TestRunCommandNonZeroExit(t *testing.T) {
	result := New().RunCommand(exechelper.ExecParams{
		CmdName: "sh",
		CmdArgs: []string{"-c", "exit 3"},
	})
	require.Error(t, result.Error)
	assert.Equal(t, 3, result.ExitCode)
}

func TestRunCommandTimeout(t *testing.T) {
	result := New().RunCommand(exechelper.ExecParams{
		CmdName: "sleep",
		CmdArgs: []string{"5"},
		Timeout: 1,
	})
	require.Error(t, result.Error)
	assert.Contains(t, result.Error.Error(), "timed out")
	// the timeout exit code must survive the generic error handling
	assert.Equal(t, 124, result.ExitCode)
}

func TestRunCommandNotFound(t *testing.T) {
	result := New().RunCommand(exechelper.ExecParams{
		CmdName: "no-such-command-on-any-host",
	})
	require.Error(t, result.Error)
	// the sentinel must stay reachable through the error chain
	assert.True(t, errors.Is(result.Error, exec.ErrNotFound))
}
