package manifest

import (
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/go-gallery-manifest/internal/document"
	"github.com/jakoblorz/go-gallery-manifest/internal/filesystem"
	"github.com/jakoblorz/go-gallery-manifest/internal/gallery"
	"github.com/jakoblorz/go-gallery-manifest/internal/models"
)

// HomepageResult describes what the homepage builder wrote.
type HomepageResult struct {
	// ManifestPath is empty when the homepage directory does not exist
	ManifestPath string
	Images       []string
}

// HomepageBuilder writes the flat image manifest of the homepage directory.
type HomepageBuilder struct {
	fs       filesystem.FileSystem
	lister   *gallery.Lister
	store    *document.Store
	reporter Reporter
}

// NewHomepageBuilder creates a new HomepageBuilder
func NewHomepageBuilder(fs filesystem.FileSystem, lister *gallery.Lister, reporter Reporter) *HomepageBuilder {
	return &HomepageBuilder{
		fs:       fs,
		lister:   lister,
		store:    document.NewStore(fs),
		reporter: reporter,
	}
}

// Build lists the images in dir and writes dir/manifest.json. A missing
// directory is reported as a warning and nothing is written.
func (b *HomepageBuilder) Build(dir string) (*HomepageResult, error) {
	if !b.fs.IsDir(dir) {
		b.reporter.Warn("Homepage directory not found: %s", dir)
		return &HomepageResult{}, nil
	}

	images, err := b.lister.List(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list homepage images: %w", err)
	}

	manifest := models.HomepageManifest{Images: models.ImageNames(images)}
	out := filepath.Join(dir, ManifestFileName)
	if err := b.store.Write(out, manifest); err != nil {
		return nil, fmt.Errorf("failed to write homepage manifest: %w", err)
	}

	b.reporter.Info("Homepage manifest -> %s (images: %d)", filepath.ToSlash(out), len(manifest.Images))

	return &HomepageResult{
		ManifestPath: out,
		Images:       manifest.Images,
	}, nil
}
