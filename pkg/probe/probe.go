// Package probe answers existence, type and content questions about a build
// output tree. Absence is a normal outcome, never an error.
package probe

import (
	"encoding/hex"
	"path/filepath"

	"github.com/zeebo/blake3"
)

// digestLen is the number of hex characters kept from a BLAKE3 sum.
const digestLen = 12

// Probe resolves relative paths against Root and queries FS.
type Probe struct {
	Root string     // base directory; "" means the working directory
	FS   FileSystem // injected for testing
}

// New returns a Probe over the real file system rooted at root.
func New(root string) *Probe {
	return &Probe{Root: root, FS: &RealFileSystem{}}
}

// Path returns the location that queries for p actually inspect.
func (p *Probe) Path(rel string) string {
	if p.Root == "" || filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(p.Root, rel)
}

// Exists reports whether anything exists at path.
func (p *Probe) Exists(path string) bool {
	_, err := p.FS.Stat(p.Path(path))
	return err == nil
}

// IsDir reports whether path exists and is a directory.
func (p *Probe) IsDir(path string) bool {
	info, err := p.FS.Stat(p.Path(path))
	return err == nil && info.IsDir()
}

// Size returns the size of path in bytes, or 0 if it does not exist.
func (p *Probe) Size(path string) int64 {
	info, err := p.FS.Stat(p.Path(path))
	if err != nil {
		return 0
	}
	return info.Size()
}

// ReadText returns the contents of path. ok is false when the file
// is absent or cannot be read.
func (p *Probe) ReadText(path string) (text string, ok bool) {
	data, err := p.FS.ReadFile(p.Path(path))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Digest returns a short BLAKE3 fingerprint of the file at path,
// or "" if it cannot be read.
func (p *Probe) Digest(path string) string {
	data, err := p.FS.ReadFile(p.Path(path))
	if err != nil {
		return ""
	}
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])[:digestLen]
}
