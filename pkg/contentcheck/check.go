// Package contentcheck verifies that built files carry expected markers.
// Matching is plain substring containment, not parsing.
package contentcheck

import (
	"fmt"
	"strings"

	"github.com/zestic/verify-build/pkg/artifact"
	"github.com/zestic/verify-build/pkg/check"
	"github.com/zestic/verify-build/pkg/probe"
)

// Labels are the result names used for each outcome.
type Labels struct {
	Pass    string
	Fail    string // marker absent or forbidden marker present
	Missing string // file absent
}

// Check verifies one content rule.
type Check struct {
	Rule   artifact.ContentRule
	Labels Labels // zero value derives labels from Rule
	Probe  *probe.Probe
}

// Run executes the content check.
func (c *Check) Run() check.Result {
	labels := c.labels()

	content, ok := c.Probe.ReadText(c.Rule.Path)
	if !ok {
		result := check.Result{Name: labels.Missing}
		return result.Failf("not found: %s", c.Probe.Path(c.Rule.Path))
	}

	result := check.Result{Name: labels.Fail}
	if !strings.Contains(content, c.Rule.Contains) {
		return result.Failf("content does not contain %q", c.Rule.Contains)
	}
	for _, f := range c.Rule.Forbids {
		if strings.Contains(content, f) {
			return result.Failf("content contains forbidden %q", f)
		}
	}

	result.Name = labels.Pass
	return result.Pass()
}

func (c *Check) labels() Labels {
	l := c.Labels
	desc := c.Rule.Description
	if desc == "" {
		desc = fmt.Sprintf("%q", c.Rule.Contains)
	}
	if l.Pass == "" {
		l.Pass = fmt.Sprintf("%s contains %s", c.Rule.Path, desc)
	}
	if l.Fail == "" {
		l.Fail = fmt.Sprintf("%s missing %s", c.Rule.Path, desc)
	}
	if l.Missing == "" {
		l.Missing = fmt.Sprintf("%s not found for content verification", c.Rule.Path)
	}
	return l
}

// Checks returns one Check per rule, in order.
func Checks(rules []artifact.ContentRule, p *probe.Probe) []check.Checker {
	checks := make([]check.Checker, 0, len(rules))
	for _, r := range rules {
		checks = append(checks, &Check{Rule: r, Probe: p})
	}
	return checks
}

// ImportResolution checks that the module entry is loadable as an ES module
// without loading it: it must export and must not use CommonJS exports.
func ImportResolution(rule artifact.ContentRule, p *probe.Probe) *Check {
	return &Check{
		Rule: rule,
		Labels: Labels{
			Pass:    "Built files use ES module syntax",
			Fail:    "Built files do not use proper ES module syntax",
			Missing: "Cannot test import resolution - module file missing",
		},
		Probe: p,
	}
}
