package models

import (
	"path/filepath"
	"strings"
)

// Image is an image file discovered in an asset directory.
type Image struct {
	// Name is the base name including the extension (e.g. "cover.jpg")
	Name string

	// Stem is Name without its final extension (e.g. "cover")
	Stem string

	// Ext is the final extension including the dot (e.g. ".jpg")
	Ext string

	// Path is the host path of the file
	Path string
}

// NewImage creates an Image for the file name inside dir.
func NewImage(dir, name string) Image {
	stem, ext := SplitName(name)
	return Image{
		Name: name,
		Stem: stem,
		Ext:  ext,
		Path: filepath.Join(dir, name),
	}
}

// SplitName splits a file name into stem and extension. A name that is only
// a dot-prefixed word (".jpg") has no extension.
func SplitName(name string) (string, string) {
	ext := filepath.Ext(name)
	if ext == name || ext == "." {
		return name, ""
	}
	return strings.TrimSuffix(name, ext), ext
}

// ImageNames returns the base names of images in order.
func ImageNames(images []Image) []string {
	names := make([]string, len(images))
	for i, img := range images {
		names[i] = img.Name
	}
	return names
}
