package exechelper

import (
	"bytes"
)

// Executor is the interface for executing commands.
type Executor interface {
	RunCommand(params ExecParams) ExecResult
}

// ExecParams parameters to execute a command
type ExecParams struct {
	CmdName string
	CmdArgs []string
	Timeout int
}

// ExecResult result of executing a command
type ExecResult struct {
	OutBuf   *bytes.Buffer
	ErrBuf   *bytes.Buffer
	ExitCode int
	Error    error
}

// ExitCodeToolNotFound is the exit code the privileged command wrapper
// reports when the requested executable is not present on the host. It is
// part of the wrapper's contract, not an OS convention.
const ExitCodeToolNotFound = 96
