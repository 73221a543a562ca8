// Package structcheck verifies the anchor paths of a build output tree.
package structcheck

import (
	"fmt"

	"github.com/zestic/verify-build/pkg/artifact"
	"github.com/zestic/verify-build/pkg/check"
	"github.com/zestic/verify-build/pkg/probe"
)

// Check verifies that one anchor exists with the expected kind.
type Check struct {
	Anchor artifact.Anchor
	Probe  *probe.Probe
}

// Run executes the structural check.
func (c *Check) Run() check.Result {
	if c.Anchor.Kind == artifact.KindDirectory {
		return c.runDir()
	}
	return c.runFile()
}

// runDir treats a path that exists but is not a directory as missing.
func (c *Check) runDir() check.Result {
	path := c.Anchor.Path
	if c.Probe.IsDir(path) {
		result := check.Result{Name: fmt.Sprintf("%s/ directory exists", path)}
		return result.Pass()
	}

	result := check.Result{Name: fmt.Sprintf("%s/ directory missing", path)}
	if c.Probe.Exists(path) {
		return result.Failf("expected directory, got file: %s", c.Probe.Path(path))
	}
	return result.Failf("not found: %s", c.Probe.Path(path))
}

func (c *Check) runFile() check.Result {
	path := c.Anchor.Path
	if !c.Probe.Exists(path) {
		result := check.Result{Name: fmt.Sprintf("%s missing", path)}
		return result.Failf("not found: %s", c.Probe.Path(path))
	}

	result := check.Result{
		Name: fmt.Sprintf("%s exists (%d bytes)", path, c.Probe.Size(path)),
	}
	if digest := c.Probe.Digest(path); digest != "" {
		result.AddDetailf("blake3: %s", digest)
	}
	return result.Pass()
}

// Checks returns one Check per anchor, in order.
func Checks(anchors []artifact.Anchor, p *probe.Probe) []check.Checker {
	checks := make([]check.Checker, 0, len(anchors))
	for _, a := range anchors {
		checks = append(checks, &Check{Anchor: a, Probe: p})
	}
	return checks
}
