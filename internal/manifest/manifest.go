// Package manifest builds the JSON manifests a static front-end reads to
// render the homepage carousel and the project galleries.
package manifest

// Names of the documents the builders write.
const (
	ManifestFileName = "manifest.json"
	IndexFileName    = "index.json"
	MetadataFileName = "metadata.json"
)

// Reporter receives progress lines. Warnings describe skipped work and are
// never fatal on their own.
type Reporter interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
}
