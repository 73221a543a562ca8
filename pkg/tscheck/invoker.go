package tscheck

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"
)

// waitDelay bounds how long Invoke waits for the output pipes to close once
// the process has been killed.
const waitDelay = 2 * time.Second

// Invocation is what the delegate reports back: its exit status and its
// combined stdout and stderr, untouched.
type Invocation struct {
	ExitCode int
	Output   string
}

// Invoker abstracts subprocess execution for testability.
// A non-nil error means the process could not be started.
type Invoker interface {
	Invoke(ctx context.Context, name string, args ...string) (Invocation, error)
}

// RealInvoker runs commands with os/exec.
type RealInvoker struct {
	Dir string // working directory; "" means the current one
}

// Invoke runs name with args and waits for it to exit or ctx to end.
func (r *RealInvoker) Invoke(ctx context.Context, name string, args ...string) (Invocation, error) {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // intentional: command from the expectation set
	cmd.Dir = r.Dir
	killProcessGroup(cmd)
	cmd.WaitDelay = waitDelay
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	if err == nil {
		return Invocation{Output: out.String()}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return Invocation{ExitCode: exitErr.ExitCode(), Output: out.String()}, nil
	}
	return Invocation{ExitCode: -1, Output: out.String()}, err
}
