package filesystem

import (
	"io/fs"
)

// FileSystem provides an abstraction over the file operations the manifest
// generator needs, so builders can run against an in-memory tree in tests.
type FileSystem interface {
	// File operations
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// Directory operations
	ReadDir(path string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error

	// Path operations
	Stat(path string) (fs.FileInfo, error)
	Exists(path string) bool
	IsDir(path string) bool
	Abs(path string) (string, error)
}
