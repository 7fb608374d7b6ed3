package gallery

import (
	"sort"
	"strings"
)

// DefaultExtensions are the image extensions recognised when no other list
// is configured.
var DefaultExtensions = []string{"jpg", "jpeg", "png", "webp", "gif", "bmp"}

// Extensions is an immutable, case-insensitive set of file extensions.
type Extensions struct {
	set map[string]struct{}
}

// NewExtensions builds a set from extensions given with or without a
// leading dot, in any case.
func NewExtensions(exts ...string) Extensions {
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = normalizeExt(ext)
		if ext == "" {
			continue
		}
		set[ext] = struct{}{}
	}
	return Extensions{set: set}
}

// Match reports whether ext (e.g. ".JPG") is in the set.
func (e Extensions) Match(ext string) bool {
	_, ok := e.set[normalizeExt(ext)]
	return ok
}

// List returns the extensions in the set, sorted, without dots.
func (e Extensions) List() []string {
	exts := make([]string, 0, len(e.set))
	for ext := range e.set {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Len returns the number of extensions in the set.
func (e Extensions) Len() int {
	return len(e.set)
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}
