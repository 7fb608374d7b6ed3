package gallery

import (
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jakoblorz/go-gallery-manifest/internal/filesystem"
)

// Subdirectories returns the names of the immediate subdirectories of dir,
// ordered case-insensitively. Names that differ only by case keep the order
// the filesystem returned them in.
func Subdirectories(fs filesystem.FileSystem, dir string) ([]string, error) {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || (entry.Type()&iofs.ModeSymlink != 0 && fs.IsDir(filepath.Join(dir, entry.Name()))) {
			names = append(names, entry.Name())
		}
	}

	slices.SortStableFunc(names, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})

	return names, nil
}
