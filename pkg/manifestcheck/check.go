// Package manifestcheck verifies the build tool configuration block in the
// package manifest.
package manifestcheck

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/tidwall/gjson"

	"github.com/zestic/verify-build/pkg/artifact"
	"github.com/zestic/verify-build/pkg/check"
	"github.com/zestic/verify-build/pkg/probe"
)

// Check verifies one manifest rule.
type Check struct {
	Rule  artifact.ManifestRule
	Probe *probe.Probe
}

// Run executes the manifest check. Values are compared as exact strings;
// "./src" does not match "src".
func (c *Check) Run() check.Result {
	path := c.Rule.Path

	content, ok := c.Probe.ReadText(path)
	if !ok {
		result := check.Result{Name: fmt.Sprintf("%s not found", path)}
		return result.Failf("not found: %s", c.Probe.Path(path))
	}
	if !gjson.Valid(content) {
		result := check.Result{Name: fmt.Sprintf("%s is not valid JSON", path)}
		return result.Fail("syntax: invalid", fmt.Errorf("%s: invalid JSON syntax", path))
	}

	result := check.Result{Name: fmt.Sprintf("%s configuration missing or incorrect", c.Rule.Key)}
	describePackage(content, &result)

	block := gjson.Get(content, escapeKey(c.Rule.Key))
	if !block.IsObject() {
		return result.Failf("key %q not found", c.Rule.Key)
	}

	var mismatches []string
	for _, f := range []struct{ field, want string }{
		{"source", c.Rule.Source},
		{"output", c.Rule.Output},
	} {
		got := block.Get(f.field)
		if got.Type != gjson.String || got.Str != f.want {
			mismatches = append(mismatches, fmt.Sprintf("%s: %s (want %q)", f.field, describe(got), f.want))
		}
	}
	if len(mismatches) > 0 {
		for _, m := range mismatches[1:] {
			result.AddDetail(m)
		}
		return result.Fail(mismatches[0], fmt.Errorf("%s: %s", c.Rule.Key, strings.Join(mismatches, "; ")))
	}

	result.Name = fmt.Sprintf("%s configuration is correct", c.Rule.Key)
	return result.Pass()
}

// describePackage adds name@version details. A version that is not strict
// semver is noted but does not fail the check.
func describePackage(content string, result *check.Result) {
	name := gjson.Get(content, "name").String()
	version := gjson.Get(content, "version")
	if name == "" && !version.Exists() {
		return
	}
	result.AddDetailf("package: %s@%s", name, version.String())
	if !version.Exists() {
		return
	}
	if _, err := semver.StrictNewVersion(version.String()); err != nil {
		result.AddDetailf("version: %q is not valid semver", version.String())
	}
}

func describe(r gjson.Result) string {
	if !r.Exists() {
		return "not set"
	}
	return r.Raw
}

// escapeKey makes a single manifest key safe to use as a gjson path.
func escapeKey(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
