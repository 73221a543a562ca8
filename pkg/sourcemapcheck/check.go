// Package sourcemapcheck validates sourcemap files emitted next to the build.
//
// A missing sourcemap fails. A sourcemap that is present but malformed
// (invalid JSON, or lacking a required field) is reported as a warning:
// it still does not count as passed, but the report keeps it apart from a
// missing artifact.
package sourcemapcheck

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/zestic/verify-build/pkg/artifact"
	"github.com/zestic/verify-build/pkg/check"
	"github.com/zestic/verify-build/pkg/probe"
)

// RequiredFields must be present and truthy in every sourcemap.
var RequiredFields = []string{"version", "sources", "mappings"}

// Check validates one sourcemap.
type Check struct {
	Map   artifact.SourceMap
	Probe *probe.Probe
}

// Run executes the sourcemap check.
func (c *Check) Run() check.Result {
	path := c.Map.Path

	content, ok := c.Probe.ReadText(path)
	if !ok {
		result := check.Result{Name: fmt.Sprintf("%s missing", path)}
		return result.Failf("not found: %s", c.Probe.Path(path))
	}

	if !gjson.Valid(content) {
		result := check.Result{Name: fmt.Sprintf("%s exists but is not valid JSON", path)}
		return result.Warn("syntax: invalid")
	}
	if gjson.Parse(content).Type == gjson.Null {
		result := check.Result{Name: fmt.Sprintf("%s exists but is not valid JSON", path)}
		return result.Warn("syntax: top-level value is null")
	}

	var missing []string
	for _, field := range RequiredFields {
		if !truthy(gjson.Get(content, field)) {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		result := check.Result{Name: fmt.Sprintf("%s exists but missing required fields", path)}
		return result.Warn("missing: " + strings.Join(missing, ", "))
	}

	result := check.Result{Name: fmt.Sprintf("%s is valid", path)}
	result.AddDetailf("sources: %d", len(gjson.Get(content, "sources").Array()))
	return result.Pass()
}

// truthy follows JavaScript truthiness: null, false, 0 and "" are false;
// arrays and objects, even empty, are true.
func truthy(r gjson.Result) bool {
	switch r.Type {
	case gjson.String:
		return r.Str != ""
	case gjson.Number:
		return r.Num != 0
	case gjson.True, gjson.JSON:
		return true
	default:
		return false
	}
}

// Checks returns one Check per sourcemap, in order.
func Checks(maps []artifact.SourceMap, p *probe.Probe) []check.Checker {
	checks := make([]check.Checker, 0, len(maps))
	for _, m := range maps {
		checks = append(checks, &Check{Map: m, Probe: p})
	}
	return checks
}
