package gallery

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"

	"github.com/jakoblorz/go-gallery-manifest/internal/filesystem"
	"github.com/jakoblorz/go-gallery-manifest/internal/models"
)

// Lister returns the images of a single directory in natural order.
type Lister struct {
	fs         filesystem.FileSystem
	extensions Extensions
}

// NewLister creates a Lister that accepts files whose extension is in exts.
func NewLister(fs filesystem.FileSystem, exts Extensions) *Lister {
	return &Lister{
		fs:         fs,
		extensions: exts,
	}
}

// List returns the image files directly inside dir. A missing directory
// yields an empty list and no error.
//
// Images are ordered by the natural key of their stem, then by the
// case-folded file name. Names that tie on both keep the order the
// filesystem returned them in.
func (l *Lister) List(dir string) ([]models.Image, error) {
	if !l.fs.Exists(dir) {
		return []models.Image{}, nil
	}

	entries, err := l.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	type keyed struct {
		image models.Image
		key   imageKey
	}

	var found []keyed
	for _, entry := range entries {
		if !l.isFile(dir, entry) {
			continue
		}

		image := models.NewImage(dir, entry.Name())
		if !l.extensions.Match(image.Ext) {
			continue
		}

		found = append(found, keyed{image: image, key: newImageKey(image.Name)})
	}

	slices.SortStableFunc(found, func(a, b keyed) int {
		return compareImageKeys(a.key, b.key)
	})

	images := make([]models.Image, len(found))
	for i, k := range found {
		images[i] = k.image
	}
	return images, nil
}

// isFile reports whether entry is a regular file, following symlinks.
func (l *Lister) isFile(dir string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return false
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.Type().IsRegular()
	}

	info, err := l.fs.Stat(filepath.Join(dir, entry.Name()))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
