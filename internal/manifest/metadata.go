package manifest

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/jakoblorz/go-gallery-manifest/internal/document"
	"github.com/jakoblorz/go-gallery-manifest/internal/filesystem"
	"github.com/jakoblorz/go-gallery-manifest/internal/models"
)

// LoadMetadata reads a project's metadata document. A missing file is
// Absent; a file that cannot be read or is not a JSON object is Malformed.
// Any JSON object is Valid: fields with an unexpected type read as empty
// and area is passed through untouched.
func LoadMetadata(fs filesystem.FileSystem, path string) models.MetadataResult {
	store := document.NewStore(fs)
	if !store.Exists(path) {
		return models.AbsentMetadata()
	}

	var fields map[string]json.RawMessage
	if err := store.Read(path, &fields); err != nil {
		return models.MalformedMetadata(err)
	}
	if fields == nil {
		return models.MalformedMetadata(errors.New("document is not a JSON object"))
	}

	return models.ValidMetadata(&models.ProjectMetadata{
		Title: stringField(fields, "title"),
		Area:  rawField(fields, "area"),
		Blurb: stringField(fields, "blurb"),
		Text:  stringField(fields, "text"),
	})
}

func stringField(fields map[string]json.RawMessage, key string) string {
	var s string
	if err := json.Unmarshal(fields[key], &s); err != nil {
		return ""
	}
	return s
}

// rawField returns nil for a missing or null field.
func rawField(fields map[string]json.RawMessage, key string) json.RawMessage {
	raw := bytes.TrimSpace(fields[key])
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	return raw
}
