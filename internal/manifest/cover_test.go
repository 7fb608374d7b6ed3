package manifest

import (
	"testing"

	"github.com/jakoblorz/go-gallery-manifest/internal/filesystem"
	"github.com/jakoblorz/go-gallery-manifest/internal/models"
	"github.com/stretchr/testify/require"
)

func listNames(t *testing.T, names ...string) []models.Image {
	t.Helper()

	mfs := filesystem.NewMockFileSystem()
	for _, name := range names {
		mfs.AddFile("/p/"+name, nil)
	}
	images, err := newTestLister(mfs).List("/p")
	require.NoError(t, err)
	return images
}

func TestSelectCover_NamedCoverWins(t *testing.T) {
	cover, rest := SelectCover(listNames(t, "cover.png", "a.jpg", "b.jpg"))

	require.Equal(t, "cover.png", cover.Name)
	require.Equal(t, []string{"a.jpg", "b.jpg"}, models.ImageNames(rest))
}

func TestSelectCover_FirstImageFallback(t *testing.T) {
	cover, rest := SelectCover(listNames(t, "b.jpg", "a.jpg"))

	require.Equal(t, "a.jpg", cover.Name)
	require.Equal(t, []string{"b.jpg"}, models.ImageNames(rest))
}

func TestSelectCover_CaseInsensitive(t *testing.T) {
	cover, rest := SelectCover(listNames(t, "1.jpg", "COVER.JPG", "covers.jpg"))

	require.Equal(t, "COVER.JPG", cover.Name)
	require.Equal(t, []string{"1.jpg", "covers.jpg"}, models.ImageNames(rest))
}

func TestSelectCover_FirstOfSeveralCovers(t *testing.T) {
	cover, rest := SelectCover(listNames(t, "Cover.png", "cover.jpg"))

	require.Equal(t, "cover.jpg", cover.Name)
	require.Equal(t, []string{"Cover.png"}, models.ImageNames(rest))
}

func TestSelectCover_SingleImage(t *testing.T) {
	cover, rest := SelectCover(listNames(t, "only.webp"))

	require.Equal(t, "only.webp", cover.Name)
	require.NotNil(t, rest)
	require.Empty(t, rest)
}

func TestWebPath(t *testing.T) {
	require.Equal(t, "assets/projects/Foo Bar/cover.jpg", WebPath("assets/projects", "Foo Bar", "cover.jpg"))
	require.Equal(t, "assets/projects/x.jpg", WebPath("assets/projects/", "x.jpg"))
	require.Equal(t, "x.jpg", WebPath("", "x.jpg"))
	require.Equal(t, "assets/projects/a/b/c.jpg", WebPath(`assets\projects`, `a\b`, "c.jpg"))
}
