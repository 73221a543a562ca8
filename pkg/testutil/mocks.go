package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileInfo is a test double for fs.FileInfo.
type FileInfo struct {
	NameValue  string
	SizeValue  int64
	IsDirValue bool
}

func (m *FileInfo) Name() string       { return m.NameValue }
func (m *FileInfo) Size() int64        { return m.SizeValue }
func (m *FileInfo) IsDir() bool        { return m.IsDirValue }
func (m *FileInfo) Sys() any           { return nil }
func (m *FileInfo) ModTime() time.Time { return time.Unix(0, 0) }
func (m *FileInfo) Mode() fs.FileMode {
	if m.IsDirValue {
		return fs.ModeDir | 0o755
	}
	return 0o644
}

// MemFS is an in-memory file system. Directories exist only when listed in
// Dirs; files do not imply their parents, so a test can remove a single
// directory without touching anything beneath it.
type MemFS struct {
	Files map[string]string
	Dirs  map[string]bool
}

// Stat returns file info for a known file or directory.
func (m *MemFS) Stat(name string) (fs.FileInfo, error) {
	name = filepath.ToSlash(filepath.Clean(name))
	if m.Dirs[name] {
		return &FileInfo{NameValue: filepath.Base(name), IsDirValue: true}, nil
	}
	if content, ok := m.Files[name]; ok {
		return &FileInfo{NameValue: filepath.Base(name), SizeValue: int64(len(content))}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: os.ErrNotExist}
}

// ReadFile returns the contents of a known file.
func (m *MemFS) ReadFile(name string) ([]byte, error) {
	name = filepath.ToSlash(filepath.Clean(name))
	if content, ok := m.Files[name]; ok {
		return []byte(content), nil
	}
	if m.Dirs[name] {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return nil, &fs.PathError{Op: "open", Path: name, Err: os.ErrNotExist}
}

// Ptr returns a pointer to the value (useful for optional fields in tests).
func Ptr[T any](v T) *T {
	return &v
}

// ContainsDetail checks if any detail string contains the given substring.
func ContainsDetail(details []string, substr string) bool {
	for _, d := range details {
		if strings.Contains(d, substr) {
			return true
		}
	}
	return false
}
