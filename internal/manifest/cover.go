package manifest

import (
	"strings"

	"github.com/jakoblorz/go-gallery-manifest/internal/models"
)

const coverStem = "cover"

// SelectCover picks the project's cover image and returns it with the
// remaining images in their original order. An image whose stem is "cover"
// (any case) wins; otherwise the first image is the cover. images must not be
// empty.
func SelectCover(images []models.Image) (models.Image, []models.Image) {
	idx := 0
	for i, img := range images {
		if strings.EqualFold(img.Stem, coverStem) {
			idx = i
			break
		}
	}

	rest := make([]models.Image, 0, len(images)-1)
	rest = append(rest, images[:idx]...)
	rest = append(rest, images[idx+1:]...)

	return images[idx], rest
}

// WebPath joins URL segments with forward slashes. Backslashes inside a
// segment are turned into forward slashes on every platform.
func WebPath(prefix string, elems ...string) string {
	parts := make([]string, 0, len(elems)+1)
	if prefix != "" {
		parts = append(parts, strings.TrimSuffix(toSlash(prefix), "/"))
	}
	for _, e := range elems {
		parts = append(parts, toSlash(e))
	}
	return strings.Join(parts, "/")
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

// webImages returns the web paths of a project's images with the cover first.
func webImages(prefix, folder string, cover models.Image, index models.ProjectIndex) []string {
	base := WebPath(prefix, folder)
	images := make([]string, 0, len(index)+1)
	images = append(images, WebPath(base, cover.Name))
	for _, name := range index {
		images = append(images, WebPath(base, name))
	}
	return images
}
