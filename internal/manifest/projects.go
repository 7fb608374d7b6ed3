package manifest

import (
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/go-gallery-manifest/internal/document"
	"github.com/jakoblorz/go-gallery-manifest/internal/filesystem"
	"github.com/jakoblorz/go-gallery-manifest/internal/gallery"
	"github.com/jakoblorz/go-gallery-manifest/internal/models"
)

// ProjectOutcome records what happened to one project folder.
type ProjectOutcome struct {
	Folder string

	// Images counts every listed image, cover included
	Images int

	// Cover is the file name of the selected cover
	Cover string

	// Metadata is the state of metadata.json before the run
	Metadata models.MetadataState

	// MetadataWritten is true when the default template was written
	MetadataWritten bool

	// Skipped is true when the folder contributed nothing to the manifest
	Skipped bool

	// Err explains a skip caused by a failure rather than an empty folder
	Err error
}

// ProjectsResult describes what the project builder wrote.
type ProjectsResult struct {
	// ManifestPath is empty when the projects directory does not exist
	ManifestPath string
	Manifest     *models.ProjectManifest
	Outcomes     []ProjectOutcome
}

// ProjectBuilder writes the per-project index and metadata documents and the
// aggregate project manifest.
type ProjectBuilder struct {
	fs        filesystem.FileSystem
	lister    *gallery.Lister
	store     *document.Store
	reporter  Reporter
	webPrefix string
}

// NewProjectBuilder creates a ProjectBuilder. webPrefix is the URL path of the
// projects directory (e.g. "assets/projects") used for manifest image paths.
func NewProjectBuilder(fs filesystem.FileSystem, lister *gallery.Lister, reporter Reporter, webPrefix string) *ProjectBuilder {
	return &ProjectBuilder{
		fs:        fs,
		lister:    lister,
		store:     document.NewStore(fs),
		reporter:  reporter,
		webPrefix: webPrefix,
	}
}

// Build processes every project folder under root and writes
// root/manifest.json. When force is set, every metadata.json is replaced by
// the default template. A missing root is reported as a warning and nothing
// is written. Failures inside one project folder are reported and only skip
// that folder.
func (b *ProjectBuilder) Build(root string, force bool) (*ProjectsResult, error) {
	result := &ProjectsResult{Manifest: models.NewProjectManifest()}

	if !b.fs.IsDir(root) {
		b.reporter.Warn("Projects directory not found: %s", root)
		return result, nil
	}

	folders, err := gallery.Subdirectories(b.fs, root)
	if err != nil {
		return nil, fmt.Errorf("failed to list project folders: %w", err)
	}

	for _, folder := range folders {
		b.reporter.Info("Project: %s", folder)

		entry, outcome := b.buildProject(filepath.Join(root, folder), folder, force)
		result.Outcomes = append(result.Outcomes, outcome)
		if entry != nil {
			result.Manifest.Projects = append(result.Manifest.Projects, *entry)
		}
	}

	out := filepath.Join(root, ManifestFileName)
	if err := b.store.Write(out, result.Manifest); err != nil {
		return nil, fmt.Errorf("failed to write projects manifest: %w", err)
	}
	result.ManifestPath = out

	b.reporter.Info("Projects manifest -> %s (projects: %d)", filepath.ToSlash(out), len(result.Manifest.Projects))

	return result, nil
}

// buildProject handles a single folder. It returns a nil entry when the
// folder is skipped.
func (b *ProjectBuilder) buildProject(dir, folder string, force bool) (*models.ProjectEntry, ProjectOutcome) {
	outcome := ProjectOutcome{Folder: folder}

	fail := func(err error) (*models.ProjectEntry, ProjectOutcome) {
		b.reporter.Warn("  skipped %s: %v", folder, err)
		outcome.Skipped = true
		outcome.Err = err
		return nil, outcome
	}

	images, err := b.lister.List(dir)
	if err != nil {
		return fail(err)
	}
	outcome.Images = len(images)

	if len(images) == 0 {
		b.reporter.Warn("  (no images) -> %s", folder)
		outcome.Skipped = true
		return nil, outcome
	}

	cover, rest := SelectCover(images)
	outcome.Cover = cover.Name

	index := models.ProjectIndex(models.ImageNames(rest))
	indexPath := filepath.Join(dir, IndexFileName)
	if err := b.store.Write(indexPath, index); err != nil {
		return fail(err)
	}
	b.reporter.Info("  index.json -> %s (photos: %d)", filepath.ToSlash(indexPath), len(index))

	meta, err := b.resolveMetadata(dir, folder, force, &outcome)
	if err != nil {
		return fail(err)
	}

	title := meta.Title
	if title == "" {
		title = DeriveTitle(folder)
	}

	return &models.ProjectEntry{
		Folder: folder,
		Title:  title,
		Area:   meta.Area,
		Blurb:  meta.Blurb,
		Text:   meta.Text,
		Images: webImages(b.webPrefix, folder, cover, index),
	}, outcome
}

// resolveMetadata returns the metadata to aggregate, writing the default
// template when the existing document is absent, malformed, or force is set.
// A valid document is never rewritten without force.
func (b *ProjectBuilder) resolveMetadata(dir, folder string, force bool, outcome *ProjectOutcome) (*models.ProjectMetadata, error) {
	metaPath := filepath.Join(dir, MetadataFileName)

	loaded := LoadMetadata(b.fs, metaPath)
	outcome.Metadata = loaded.State

	if !loaded.NeedsDefault() && !force {
		b.reporter.Info("  metadata.json -> existing (untouched)")
		return loaded.Metadata, nil
	}

	if loaded.State == models.MetadataMalformed {
		b.reporter.Warn("  metadata.json in %s is unusable (%v); writing default", folder, loaded.Err)
	}

	meta := models.DefaultMetadata(DeriveTitle(folder))
	if err := b.store.Write(metaPath, meta); err != nil {
		return nil, err
	}
	outcome.MetadataWritten = true

	action := "created"
	if force {
		action = "created/forced"
	}
	b.reporter.Info("  metadata.json -> %s (%s)", filepath.ToSlash(metaPath), action)

	return meta, nil
}
