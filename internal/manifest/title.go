package manifest

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	separatorRuns = regexp.MustCompile(`[-_]+`)
	letterRuns    = regexp.MustCompile(`\p{L}+`)
)

// DeriveTitle turns a project folder name into a display title: runs of
// dashes and underscores become a single space and every run of letters is
// title-cased, so a letter following a digit or apostrophe starts a new word.
// e.g., "old-city_hall" -> "Old City Hall", "casa o'brien" -> "Casa O'Brien".
func DeriveTitle(folder string) string {
	title := strings.TrimSpace(separatorRuns.ReplaceAllString(folder, " "))
	caser := cases.Title(language.Und)
	return letterRuns.ReplaceAllStringFunc(title, caser.String)
}
