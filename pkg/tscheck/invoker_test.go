//go:build unix

package tscheck

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealInvoker_ExitZero(t *testing.T) {
	inv, err := (&RealInvoker{}).Invoke(context.Background(), "sh", "-c", "echo ok")

	require.NoError(t, err)
	assert.Equal(t, 0, inv.ExitCode)
	assert.Equal(t, "ok\n", inv.Output)
}

func TestRealInvoker_NonZeroExitCombinesOutput(t *testing.T) {
	inv, err := (&RealInvoker{}).Invoke(context.Background(), "sh", "-c", "echo out; echo err >&2; exit 3")

	require.NoError(t, err)
	assert.Equal(t, 3, inv.ExitCode)
	assert.Contains(t, inv.Output, "out")
	assert.Contains(t, inv.Output, "err")
}

func TestRealInvoker_SpawnFailure(t *testing.T) {
	_, err := (&RealInvoker{}).Invoke(context.Background(), "verify-build-no-such-binary-12345")

	assert.Error(t, err)
}

func TestRealInvoker_Dir(t *testing.T) {
	dir := t.TempDir()

	inv, err := (&RealInvoker{Dir: dir}).Invoke(context.Background(), "sh", "-c", "pwd -P")

	require.NoError(t, err)
	assert.NotEmpty(t, inv.Output)
}

func TestCheck_RealTimeout(t *testing.T) {
	c := &Check{
		Args:    []string{"sleep", "5"},
		Timeout: 50 * time.Millisecond,
		Invoker: &RealInvoker{},
	}

	start := time.Now()
	result := c.Run()

	assert.False(t, result.OK())
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestCheck_RealTimeoutKillsGrandchildren(t *testing.T) {
	// sh forks sleep, which inherits the output pipe.
	c := &Check{
		Args:    []string{"sh", "-c", "sleep 8; echo done"},
		Timeout: 200 * time.Millisecond,
		Invoker: &RealInvoker{},
	}

	start := time.Now()
	result := c.Run()

	assert.False(t, result.OK())
	assert.Equal(t, "timed out after 200ms", result.Err.Error())
	assert.NotContains(t, result.Details, "done")
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestRealInvoker_CancelKillsProcessGroup(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(100*time.Millisecond, cancel)

	start := time.Now()
	inv, err := (&RealInvoker{}).Invoke(ctx, "sh", "-c", "sleep 8 & sleep 8; echo done")

	require.NoError(t, err)
	assert.NotEqual(t, 0, inv.ExitCode)
	assert.NotContains(t, inv.Output, "done")
	assert.Less(t, time.Since(start), 4*time.Second)
}
