package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zestic/verify-build/pkg/check"
)

func withoutColors(t *testing.T) {
	t.Helper()
	oldGreen, oldRed, oldYellow, oldBlue := green, red, yellow, blue
	oldBold, oldDim, oldReset := bold, dim, reset
	green, red, yellow, blue, bold, dim, reset = "", "", "", "", "", "", ""
	t.Cleanup(func() {
		green, red, yellow, blue = oldGreen, oldRed, oldYellow, oldBlue
		bold, dim, reset = oldBold, oldDim, oldReset
	})
}

func TestFormatLabel(t *testing.T) {
	withoutColors(t)

	tests := []struct {
		input string
		want  string
	}{
		{"size: 812 bytes", "size: 812 bytes"},
		{"no colon here", "no colon here"},
		{"error TS2304: Cannot find name 'View'.", "error TS2304: Cannot find name 'View'."},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatLabel(tt.input), "formatLabel(%q)", tt.input)
	}
}

func TestFormatLabelWithColors(t *testing.T) {
	oldDim, oldReset := dim, reset
	defer func() { dim, reset = oldDim, oldReset }()
	dim, reset = "[DIM]", "[RESET]"

	tests := []struct {
		input string
		want  string
	}{
		{"size: 812 bytes", "[DIM]size:[RESET] 812 bytes"},
		{"blake3: 4f2a", "[DIM]blake3:[RESET] 4f2a"},
		{"error TS2304: Cannot find name", "error TS2304: Cannot find name"},
		{"no colon here", "no colon here"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatLabel(tt.input), "formatLabel(%q)", tt.input)
	}
}

func TestReporterLevels(t *testing.T) {
	withoutColors(t)

	var buf bytes.Buffer
	r := New(&buf)

	r.Header("1. Checking Build Output Directory Structure")
	r.Success("lib/ directory exists")
	r.Error("lib/module/ directory missing")
	r.Warning("lib/module/index.js.map exists but is not valid JSON")
	r.Info("Running: npx tsc --noEmit")

	expected := "\n1. Checking Build Output Directory Structure\n" +
		"✅ lib/ directory exists\n" +
		"❌ lib/module/ directory missing\n" +
		"⚠️  lib/module/index.js.map exists but is not valid JSON\n" +
		"ℹ️  Running: npx tsc --noEmit\n"
	assert.Equal(t, expected, buf.String())
}

func TestReporterResult(t *testing.T) {
	withoutColors(t)

	tests := []struct {
		name   string
		result check.Result
		want   string
	}{
		{
			name:   "ok with details",
			result: check.Result{Name: "lib/module/index.js exists (812 bytes)", Status: check.StatusOK, Details: []string{"blake3: 4f2a"}},
			want:   "✅ lib/module/index.js exists (812 bytes)\n   blake3: 4f2a\n",
		},
		{
			name:   "fail",
			result: check.Result{Name: "lib/ directory missing", Status: check.StatusFail},
			want:   "❌ lib/ directory missing\n",
		},
		{
			name:   "warn",
			result: check.Result{Name: "index.js.map exists but is not valid JSON", Status: check.StatusWarn},
			want:   "⚠️  index.js.map exists but is not valid JSON\n",
		},
		{
			name: "multi-line detail is split and indented",
			result: check.Result{Name: "TypeScript declaration validation - Failed", Status: check.StatusFail, Details: []string{
				"index.d.ts(1,10): error TS2305\nindex.d.ts(2,1): error TS1005\n",
			}},
			want: "❌ TypeScript declaration validation - Failed\n   index.d.ts(1,10): error TS2305\n   index.d.ts(2,1): error TS1005\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			New(&buf).Result(tt.result)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
