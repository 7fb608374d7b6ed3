package models

import "encoding/json"

// ProjectMetadata is the human-editable description of a project. It is seeded
// once from the folder name and afterwards owned by whoever edits the site.
type ProjectMetadata struct {
	Title string `json:"title"`

	// Area is kept exactly as written; the front-end renders numbers as
	// square metres. Nil encodes as null.
	Area  json.RawMessage `json:"area"`
	Blurb string          `json:"blurb"`
	Text  string          `json:"text"`
}

// DefaultMetadata returns the template written for a project without metadata.
func DefaultMetadata(title string) *ProjectMetadata {
	return &ProjectMetadata{
		Title: title,
		Area:  nil,
		Blurb: "",
		Text:  "",
	}
}

// MetadataState classifies the result of loading a metadata document.
type MetadataState string

const (
	// MetadataValid means the document exists and decoded cleanly
	MetadataValid MetadataState = "valid"

	// MetadataAbsent means there is no document on disk
	MetadataAbsent MetadataState = "absent"

	// MetadataMalformed means the document exists but is not a readable JSON object
	MetadataMalformed MetadataState = "malformed"
)

// String returns the string representation of MetadataState
func (s MetadataState) String() string {
	return string(s)
}

// MetadataResult is the outcome of loading a metadata document.
type MetadataResult struct {
	State MetadataState

	// Metadata is set only when State is MetadataValid
	Metadata *ProjectMetadata

	// Err explains why the document is malformed
	Err error
}

// ValidMetadata wraps a decoded document.
func ValidMetadata(meta *ProjectMetadata) MetadataResult {
	return MetadataResult{State: MetadataValid, Metadata: meta}
}

// AbsentMetadata reports that no document exists.
func AbsentMetadata() MetadataResult {
	return MetadataResult{State: MetadataAbsent}
}

// MalformedMetadata reports a document that exists but is unusable.
func MalformedMetadata(err error) MetadataResult {
	return MetadataResult{State: MetadataMalformed, Err: err}
}

// NeedsDefault reports whether the default template has to be written.
// Absent and malformed documents are handled the same way.
func (r MetadataResult) NeedsDefault() bool {
	return r.State != MetadataValid || r.Metadata == nil
}
