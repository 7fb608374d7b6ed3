package manifest

import (
	"fmt"
	"testing"

	"github.com/jakoblorz/go-gallery-manifest/internal/filesystem"
	"github.com/jakoblorz/go-gallery-manifest/internal/gallery"
	"github.com/stretchr/testify/require"
)

const (
	testRoot     = "/site"
	testProjects = "/site/assets/projects"
	testHomepage = "/site/assets/Homepage"
)

type recordingReporter struct {
	infos []string
	warns []string
}

func (r *recordingReporter) Info(format string, args ...any) {
	r.infos = append(r.infos, fmt.Sprintf(format, args...))
}

func (r *recordingReporter) Warn(format string, args ...any) {
	r.warns = append(r.warns, fmt.Sprintf(format, args...))
}

func newTestLister(fs filesystem.FileSystem) *gallery.Lister {
	return gallery.NewLister(fs, gallery.NewExtensions(gallery.DefaultExtensions...))
}

func readFile(t *testing.T, fs filesystem.FileSystem, path string) string {
	t.Helper()

	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
