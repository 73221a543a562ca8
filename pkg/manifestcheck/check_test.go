package manifestcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"

	"github.com/zestic/verify-build/pkg/artifact"
	"github.com/zestic/verify-build/pkg/check"
	"github.com/zestic/verify-build/pkg/probe"
	"github.com/zestic/verify-build/pkg/testutil"
)

const goodManifest = `{
  "name": "@zestic/component-template",
  "version": "0.1.0",
  "main": "lib/module/index.js",
  "react-native-builder-bob": {
    "source": "src",
    "output": "lib",
    "targets": ["module", ["typescript", {"project": "tsconfig.build.json"}]]
  }
}`

func run(files map[string]string) check.Result {
	c := &Check{
		Rule:  artifact.Default().Manifest,
		Probe: &probe.Probe{FS: &testutil.MemFS{Files: files}},
	}
	return c.Run()
}

func TestCheck_Run(t *testing.T) {
	tests := []struct {
		name       string
		manifest   *string
		wantStatus check.Status
		wantName   string
		wantDetail string
	}{
		{"correct configuration", testutil.Ptr(goodManifest), check.StatusOK, "react-native-builder-bob configuration is correct", "package: @zestic/component-template@0.1.0"},
		{"manifest absent", nil, check.StatusFail, "package.json not found", "not found"},
		{"manifest not JSON", testutil.Ptr(`{"name": `), check.StatusFail, "package.json is not valid JSON", "syntax: invalid"},
		{"block missing", testutil.Ptr(`{"name":"x","version":"1.0.0"}`), check.StatusFail, "react-native-builder-bob configuration missing or incorrect", `key "react-native-builder-bob" not found`},
		{"block not an object", testutil.Ptr(`{"react-native-builder-bob":"src"}`), check.StatusFail, "react-native-builder-bob configuration missing or incorrect", "not found"},
		{"wrong output", testutil.Ptr(`{"react-native-builder-bob":{"source":"src","output":"dist"}}`), check.StatusFail, "react-native-builder-bob configuration missing or incorrect", `output: "dist" (want "lib")`},
		{"path not normalized", testutil.Ptr(`{"react-native-builder-bob":{"source":"./src","output":"lib"}}`), check.StatusFail, "react-native-builder-bob configuration missing or incorrect", `source: "./src" (want "src")`},
		{"source missing", testutil.Ptr(`{"react-native-builder-bob":{"output":"lib"}}`), check.StatusFail, "react-native-builder-bob configuration missing or incorrect", `source: not set (want "src")`},
		{"non-string value", testutil.Ptr(`{"react-native-builder-bob":{"source":["src"],"output":"lib"}}`), check.StatusFail, "react-native-builder-bob configuration missing or incorrect", `source: ["src"]`},
		{"both wrong", testutil.Ptr(`{"react-native-builder-bob":{"source":"app","output":"build"}}`), check.StatusFail, "react-native-builder-bob configuration missing or incorrect", `output: "build" (want "lib")`},
		{"invalid semver is advisory", testutil.Ptr(`{"name":"x","version":"latest","react-native-builder-bob":{"source":"src","output":"lib"}}`), check.StatusOK, "react-native-builder-bob configuration is correct", `version: "latest" is not valid semver`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := map[string]string{}
			if tt.manifest != nil {
				files["package.json"] = *tt.manifest
			}

			result := run(files)

			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, tt.wantName, result.Name)
			if tt.wantDetail != "" {
				assert.True(t, testutil.ContainsDetail(result.Details, tt.wantDetail),
					"Details %v does not contain %q", result.Details, tt.wantDetail)
			}
		})
	}
}

func TestCheck_DottedKey(t *testing.T) {
	c := &Check{
		Rule:  artifact.ManifestRule{Path: "package.json", Key: "tool.config", Source: "src", Output: "lib"},
		Probe: &probe.Probe{FS: &testutil.MemFS{Files: map[string]string{
			"package.json": `{"tool":{"config":{"source":"x","output":"y"}},"tool.config":{"source":"src","output":"lib"}}`,
		}}},
	}

	assert.True(t, c.Run().OK())
}

func TestCheck_DuplicateBlockUsesFirst(t *testing.T) {
	manifest := `{
  "react-native-builder-bob": {"source": "src", "output": "lib"},
  "react-native-builder-bob": {"source": "lib", "output": "dist"}
}`

	result := run(map[string]string{"package.json": manifest})

	assert.Equal(t, check.StatusOK, result.Status)
}

func TestEscapeKey(t *testing.T) {
	tests := []struct{ in, want string }{
		{"react-native-builder-bob", "react-native-builder-bob"},
		{"a.b", `a\.b`},
		{"x*", `x\*`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeKey(tt.in))
	}
	assert.Equal(t, "v", gjson.Get(`{"a.b":"v"}`, escapeKey("a.b")).String())
}
