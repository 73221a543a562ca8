// Package artifact describes what a packaged library build is expected to
// contain. The default Set mirrors the react-native-builder-bob layout.
package artifact

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the expected type of an anchor path.
type Kind string

const (
	KindDirectory Kind = "directory"
	KindFile      Kind = "file"
)

// Anchor is a path that must exist with the given kind.
type Anchor struct {
	Path string `yaml:"path"`
	Kind Kind   `yaml:"kind"`
}

// ContentRule asserts that a file contains a marker and none of the
// forbidden markers.
type ContentRule struct {
	Path        string   `yaml:"path"`
	Contains    string   `yaml:"contains"`
	Forbids     []string `yaml:"forbids,omitempty"`
	Description string   `yaml:"description,omitempty"` // what Contains proves, e.g. "exports"
}

// SourceMap is a sourcemap file that must be present and well formed.
type SourceMap struct {
	Path string `yaml:"path"`
}

// TypeCheck is the external compiler invocation run against the
// generated declarations.
type TypeCheck struct {
	Command     []string `yaml:"command"`
	Declaration string   `yaml:"declaration"`
}

// Args returns the full argument vector: Command followed by Declaration.
func (t TypeCheck) Args() []string {
	args := append([]string{}, t.Command...)
	if t.Declaration != "" {
		args = append(args, t.Declaration)
	}
	return args
}

// String returns the command line as it would be typed.
func (t TypeCheck) String() string {
	return strings.Join(t.Args(), " ")
}

// ManifestRule asserts the build tool block inside the package manifest.
type ManifestRule struct {
	Path   string `yaml:"path"`
	Key    string `yaml:"key"`
	Source string `yaml:"source"`
	Output string `yaml:"output"`
}

// Set is the complete list of expectations for one verification run.
type Set struct {
	Anchors     []Anchor      `yaml:"anchors"`
	Contents    []ContentRule `yaml:"contents"`
	SourceMaps  []SourceMap   `yaml:"sourcemaps"`
	ImportEntry ContentRule   `yaml:"import_entry"`
	TypeCheck   TypeCheck     `yaml:"typecheck"`
	Manifest    ManifestRule  `yaml:"manifest"`
}

// Default returns the expectations for a builder-bob library build.
func Default() Set {
	return Set{
		Anchors: []Anchor{
			{Path: "lib", Kind: KindDirectory},
			{Path: "lib/module", Kind: KindDirectory},
			{Path: "lib/typescript", Kind: KindDirectory},
			{Path: "lib/module/index.js", Kind: KindFile},
			{Path: "lib/module/index.js.map", Kind: KindFile},
			{Path: "lib/typescript/src/index.d.ts", Kind: KindFile},
			{Path: "lib/typescript/src/index.d.ts.map", Kind: KindFile},
		},
		Contents: []ContentRule{
			{Path: "lib/module/index.js", Contains: "export", Description: "exports"},
			{Path: "lib/typescript/src/index.d.ts", Contains: "export", Description: "type exports"},
			{Path: "lib/module/components/Button/Button.js", Contains: "export const MyButton", Description: "MyButton export"},
		},
		SourceMaps: []SourceMap{
			{Path: "lib/module/index.js.map"},
			{Path: "lib/typescript/src/index.d.ts.map"},
		},
		ImportEntry: ContentRule{
			Path:        "lib/module/index.js",
			Contains:    "export",
			Forbids:     []string{"module.exports"},
			Description: "ES module syntax",
		},
		TypeCheck: TypeCheck{
			Command:     []string{"npx", "tsc", "--noEmit", "--skipLibCheck"},
			Declaration: "lib/typescript/src/index.d.ts",
		},
		Manifest: ManifestRule{
			Path:   "package.json",
			Key:    "react-native-builder-bob",
			Source: "src",
			Output: "lib",
		},
	}
}

// Validate reports every malformed entry in s.
func (s Set) Validate() error {
	var errs []error
	seenFile := false
	for i, a := range s.Anchors {
		if a.Kind == KindFile {
			seenFile = true
		} else if a.Kind == KindDirectory && seenFile {
			errs = append(errs, fmt.Errorf("anchors[%d]: directory %q must be listed before file anchors", i, a.Path))
		}
		if a.Path == "" {
			errs = append(errs, fmt.Errorf("anchors[%d]: path is required", i))
		}
		if a.Kind != KindDirectory && a.Kind != KindFile {
			errs = append(errs, fmt.Errorf("anchors[%d]: kind %q must be %q or %q", i, a.Kind, KindDirectory, KindFile))
		}
	}
	for i, c := range s.Contents {
		if c.Path == "" || c.Contains == "" {
			errs = append(errs, fmt.Errorf("contents[%d]: path and contains are required", i))
		}
	}
	for i, m := range s.SourceMaps {
		if m.Path == "" {
			errs = append(errs, fmt.Errorf("sourcemaps[%d]: path is required", i))
		}
	}
	if s.ImportEntry.Path == "" || s.ImportEntry.Contains == "" {
		errs = append(errs, errors.New("import_entry: path and contains are required"))
	}
	if len(s.TypeCheck.Command) == 0 {
		errs = append(errs, errors.New("typecheck: command is required"))
	}
	if s.Manifest.Path == "" || s.Manifest.Key == "" {
		errs = append(errs, errors.New("manifest: path and key are required"))
	}
	return errors.Join(errs...)
}
