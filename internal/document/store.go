// Package document persists the generated JSON documents.
//
// Documents are written as UTF-8 JSON with two-space indentation. Non-ASCII
// text and HTML-significant characters are stored literally so editors see
// exactly what they typed.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/go-gallery-manifest/internal/filesystem"
)

const (
	filePerm = 0644
	dirPerm  = 0755
)

// Store reads and writes JSON documents through a FileSystem.
type Store struct {
	fs filesystem.FileSystem
}

// NewStore creates a new Store
func NewStore(fs filesystem.FileSystem) *Store {
	return &Store{fs: fs}
}

// Encode renders v in the on-disk document format.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write replaces the document at path with v, creating parent directories.
func (s *Store) Write(path string, v any) error {
	data, err := Encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}

	if err := s.fs.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	if err := s.fs.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// Read decodes the document at path into v.
func (s *Store) Read(path string, v any) error {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return nil
}

// Exists reports whether a document is present at path.
func (s *Store) Exists(path string) bool {
	return s.fs.Exists(path)
}
