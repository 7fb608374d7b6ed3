package models

import "encoding/json"

// HomepageManifest is written to the homepage asset directory.
type HomepageManifest struct {
	Images []string `json:"images"`
}

// ProjectIndex lists the non-cover images of a project folder, in order.
type ProjectIndex []string

// ProjectEntry is one project in the global project manifest. It joins the
// project's metadata with its images rewritten as web paths, cover first.
type ProjectEntry struct {
	Folder string          `json:"folder"`
	Title  string          `json:"title"`
	Area   json.RawMessage `json:"area"`
	Blurb  string          `json:"blurb"`
	Text   string          `json:"text"`
	Images []string        `json:"images"`
}

// ProjectManifest is the aggregate of every project that has images.
type ProjectManifest struct {
	Projects []ProjectEntry `json:"projects"`
}

// NewProjectManifest creates an empty manifest that encodes as an empty list.
func NewProjectManifest() *ProjectManifest {
	return &ProjectManifest{Projects: []ProjectEntry{}}
}
