package filesystem

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// MockFileSystem provides in-memory filesystem for testing
type MockFileSystem struct {
	files          map[string]*MockFile
	currentDir     string
	reverseListing bool
	writeErrors    map[string]error
	writes         map[string]int
}

// MockFile represents a file in the mock filesystem
type MockFile struct {
	Content []byte
	Mode    fs.FileMode
	ModTime time.Time
	IsDir   bool
}

// mockFileInfo implements fs.FileInfo
type mockFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return m.size }
func (m *mockFileInfo) Mode() fs.FileMode  { return m.mode }
func (m *mockFileInfo) ModTime() time.Time { return m.modTime }
func (m *mockFileInfo) IsDir() bool        { return m.isDir }
func (m *mockFileInfo) Sys() interface{}   { return nil }

// mockDirEntry implements fs.DirEntry
type mockDirEntry struct {
	info fs.FileInfo
}

func (m *mockDirEntry) Name() string               { return m.info.Name() }
func (m *mockDirEntry) IsDir() bool                { return m.info.IsDir() }
func (m *mockDirEntry) Type() fs.FileMode          { return m.info.Mode().Type() }
func (m *mockDirEntry) Info() (fs.FileInfo, error) { return m.info, nil }

// NewMockFileSystem creates a new MockFileSystem
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:       make(map[string]*MockFile),
		currentDir:  "/workspace",
		writeErrors: make(map[string]error),
		writes:      make(map[string]int),
	}
}

// AddFile adds a file to the mock filesystem
func (mfs *MockFileSystem) AddFile(path string, content []byte) {
	cleanPath := filepath.Clean(path)
	mfs.files[cleanPath] = &MockFile{
		Content: content,
		Mode:    0644,
		ModTime: time.Now(),
		IsDir:   false,
	}

	mfs.addParents(cleanPath)
}

// AddDir adds a directory to the mock filesystem
func (mfs *MockFileSystem) AddDir(path string) {
	cleanPath := filepath.Clean(path)
	if _, exists := mfs.files[cleanPath]; !exists {
		mfs.files[cleanPath] = &MockFile{
			Mode:    0755 | fs.ModeDir,
			ModTime: time.Now(),
			IsDir:   true,
		}
	}

	mfs.addParents(cleanPath)
}

func (mfs *MockFileSystem) addParents(cleanPath string) {
	dir := filepath.Dir(cleanPath)
	for dir != "." && dir != "/" && dir != cleanPath {
		if _, exists := mfs.files[dir]; !exists {
			mfs.AddDir(dir)
		}
		dir = filepath.Dir(dir)
	}
}

// SetReverseListing makes ReadDir return entries in reverse name order,
// which lets tests prove callers do not rely on host enumeration order.
func (mfs *MockFileSystem) SetReverseListing(enabled bool) {
	mfs.reverseListing = enabled
}

// FailWrites makes every WriteFile to path return err.
func (mfs *MockFileSystem) FailWrites(path string, err error) {
	mfs.writeErrors[filepath.Clean(path)] = err
}

// WriteCount reports how many successful WriteFile calls targeted path.
func (mfs *MockFileSystem) WriteCount(path string) int {
	return mfs.writes[filepath.Clean(path)]
}

func (mfs *MockFileSystem) ReadFile(path string) ([]byte, error) {
	file, exists := mfs.files[filepath.Clean(path)]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	if file.IsDir {
		return nil, errors.New("is a directory")
	}
	return file.Content, nil
}

func (mfs *MockFileSystem) WriteFile(path string, data []byte, perm fs.FileMode) error {
	cleanPath := filepath.Clean(path)

	if err, ok := mfs.writeErrors[cleanPath]; ok {
		return &fs.PathError{Op: "write", Path: path, Err: err}
	}

	// Ensure parent directory exists
	dir := filepath.Dir(cleanPath)
	if dir != "." && dir != "/" {
		if parent, exists := mfs.files[dir]; !exists || !parent.IsDir {
			return &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
		}
	}

	if existing, exists := mfs.files[cleanPath]; exists && existing.IsDir {
		return &fs.PathError{Op: "open", Path: path, Err: errors.New("is a directory")}
	}

	content := make([]byte, len(data))
	copy(content, data)

	mfs.files[cleanPath] = &MockFile{
		Content: content,
		Mode:    perm,
		ModTime: time.Now(),
		IsDir:   false,
	}
	mfs.writes[cleanPath]++
	return nil
}

func (mfs *MockFileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	cleanPath := filepath.Clean(path)

	file, exists := mfs.files[cleanPath]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	if !file.IsDir {
		return nil, errors.New("not a directory")
	}

	var entries []fs.DirEntry
	for p, f := range mfs.files {
		if p == cleanPath {
			continue
		}
		if filepath.Dir(p) == cleanPath {
			info := &mockFileInfo{
				name:    filepath.Base(p),
				size:    int64(len(f.Content)),
				mode:    f.Mode,
				modTime: f.ModTime,
				isDir:   f.IsDir,
			}
			entries = append(entries, &mockDirEntry{info: info})
		}
	}

	// Sort entries by name for consistent ordering
	sort.Slice(entries, func(i, j int) bool {
		if mfs.reverseListing {
			return entries[i].Name() > entries[j].Name()
		}
		return entries[i].Name() < entries[j].Name()
	})

	return entries, nil
}

func (mfs *MockFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	cleanPath := filepath.Clean(path)
	parts := strings.Split(cleanPath, string(filepath.Separator))

	current := ""
	if filepath.IsAbs(cleanPath) {
		current = string(filepath.Separator)
	}
	for _, part := range parts {
		if part == "" {
			continue
		}
		current = filepath.Join(current, part)

		if existing, exists := mfs.files[current]; exists {
			if !existing.IsDir {
				return &fs.PathError{Op: "mkdir", Path: current, Err: errors.New("not a directory")}
			}
			continue
		}
		mfs.files[current] = &MockFile{
			Mode:    perm | fs.ModeDir,
			ModTime: time.Now(),
			IsDir:   true,
		}
	}
	return nil
}

func (mfs *MockFileSystem) Stat(path string) (fs.FileInfo, error) {
	file, exists := mfs.files[filepath.Clean(path)]
	if !exists {
		return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
	}

	return &mockFileInfo{
		name:    filepath.Base(path),
		size:    int64(len(file.Content)),
		mode:    file.Mode,
		modTime: file.ModTime,
		isDir:   file.IsDir,
	}, nil
}

func (mfs *MockFileSystem) Exists(path string) bool {
	_, exists := mfs.files[filepath.Clean(path)]
	return exists
}

func (mfs *MockFileSystem) IsDir(path string) bool {
	file, exists := mfs.files[filepath.Clean(path)]
	return exists && file.IsDir
}

// Abs resolves path against the mock's current directory.
func (mfs *MockFileSystem) Abs(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	return filepath.Join(mfs.currentDir, path), nil
}

// SetCurrentDir sets the current working directory for the mock
func (mfs *MockFileSystem) SetCurrentDir(dir string) {
	mfs.currentDir = dir
}

// GetFiles returns all files in the mock filesystem (for debugging)
func (mfs *MockFileSystem) GetFiles() map[string]*MockFile {
	return mfs.files
}
