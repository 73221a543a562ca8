// Package tscheck delegates declaration validation to an external type
// checker. Only the exit status is interpreted; diagnostics are passed
// through as-is.
package tscheck

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/zestic/verify-build/pkg/check"
)

// DefaultTimeout bounds a single type checker run.
const DefaultTimeout = 5 * time.Minute

// Description labels the check in the report.
const Description = "TypeScript declaration validation"

// Check runs the type checker once.
type Check struct {
	Args    []string      // command followed by its arguments
	Timeout time.Duration // default: DefaultTimeout
	Invoker Invoker       // injected for testing
}

// Run executes the check with a background context.
func (c *Check) Run() check.Result {
	return c.RunContext(context.Background())
}

// RunContext executes the check. Cancelling ctx stops the type checker.
func (c *Check) RunContext(ctx context.Context) check.Result {
	result := check.Result{Name: Description + " - Failed"}

	if len(c.Args) == 0 {
		return result.Fail("no type checker command configured", errors.New("empty command"))
	}
	result.AddDetailf("Running: %s", strings.Join(c.Args, " "))

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	inv, err := c.Invoker.Invoke(ctx, c.Args[0], c.Args[1:]...)
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		addOutput(&result, inv.Output)
		return result.Failf("timed out after %s", timeout)
	case ctx.Err() != nil:
		return result.Fail("cancelled", ctx.Err())
	case err != nil:
		return result.Failf("failed to start: %v", err)
	case inv.ExitCode != 0:
		result.Fail(fmt.Sprintf("exit status %d", inv.ExitCode), fmt.Errorf("%s exited with status %d", c.Args[0], inv.ExitCode))
		addOutput(&result, inv.Output)
		return result
	}

	result.Name = Description + " - Success"
	return result.Pass()
}

func addOutput(result *check.Result, output string) {
	if output = strings.TrimRight(output, "\n"); output != "" {
		result.AddDetail(output)
	}
}

// Disabled returns a result for a type check the caller chose to skip.
// It never counts as passed.
func Disabled() check.Result {
	result := check.Result{Name: Description + " - Skipped"}
	return result.Fail("skipped by --skip-typecheck", errors.New("type check skipped"))
}
