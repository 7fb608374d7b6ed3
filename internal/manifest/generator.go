package manifest

import (
	"errors"
	"fmt"

	"github.com/jakoblorz/go-gallery-manifest/internal/config"
	"github.com/jakoblorz/go-gallery-manifest/internal/filesystem"
	"github.com/jakoblorz/go-gallery-manifest/internal/gallery"
)

// ErrAssetsNotFound is returned when the web root has no assets directory.
// It is the only condition that aborts a run.
var ErrAssetsNotFound = errors.New("assets directory not found")

// Result summarises a complete run.
type Result struct {
	Webroot  string
	Homepage *HomepageResult
	Projects *ProjectsResult

	// Warnings counts builder failures that were reported and skipped
	Warnings int
}

// Generator runs the homepage and project builders for one web root.
type Generator struct {
	fs       filesystem.FileSystem
	cfg      *config.Config
	reporter Reporter
}

// NewGenerator creates a new Generator
func NewGenerator(fs filesystem.FileSystem, cfg *config.Config, reporter Reporter) *Generator {
	return &Generator{
		fs:       fs,
		cfg:      cfg,
		reporter: reporter,
	}
}

// Run regenerates every manifest under webroot. It fails only when the
// assets directory is missing, in which case nothing is written. Builder
// failures are reported as warnings and leave partial output.
func (g *Generator) Run(webroot string, force bool) (*Result, error) {
	root, err := g.fs.Abs(webroot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve web root %s: %w", webroot, err)
	}

	assets := g.cfg.AssetsPath(root)
	if !g.fs.IsDir(assets) {
		return nil, fmt.Errorf("%w: %s", ErrAssetsNotFound, assets)
	}

	lister := gallery.NewLister(g.fs, g.cfg.ImageExtensions())
	result := &Result{Webroot: root}

	homepage, err := NewHomepageBuilder(g.fs, lister, g.reporter).Build(g.cfg.HomepagePath(root))
	if err != nil {
		g.reporter.Warn("%v", err)
		result.Warnings++
	}
	result.Homepage = homepage

	projects, err := NewProjectBuilder(g.fs, lister, g.reporter, g.cfg.ProjectsWebPrefix()).
		Build(g.cfg.ProjectsPath(root), force)
	if err != nil {
		g.reporter.Warn("%v", err)
		result.Warnings++
	}
	result.Projects = projects

	return result, nil
}
