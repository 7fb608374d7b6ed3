package gallery

import (
	"strings"

	"github.com/jakoblorz/go-gallery-manifest/internal/models"
)

// NaturalKey is a file stem split into alternating text and digit runs. It
// always starts and ends with a text run, either of which may be empty
// ("10a" -> "", 10, "a").
type NaturalKey []naturalPart

type naturalPart struct {
	// text is the case-folded run for text parts, or the digits without
	// leading zeros for numeric parts
	text    string
	numeric bool
}

// ParseNaturalKey splits s into its natural ordering key.
func ParseNaturalKey(s string) NaturalKey {
	key := NaturalKey{}
	var run strings.Builder
	inDigits := false

	flush := func(numeric bool) {
		part := run.String()
		if numeric {
			part = strings.TrimLeft(part, "0")
		} else {
			part = strings.ToLower(part)
		}
		key = append(key, naturalPart{text: part, numeric: numeric})
		run.Reset()
	}

	for _, r := range s {
		digit := r >= '0' && r <= '9'
		if digit != inDigits {
			flush(inDigits)
			inDigits = digit
		}
		run.WriteRune(r)
	}
	flush(inDigits)
	if inDigits {
		flush(false)
	}

	return key
}

// Compare orders two keys element by element. Digit runs compare by numeric
// value, text runs by their case-folded form, and when one key is a prefix of
// the other the shorter key sorts first.
func (k NaturalKey) Compare(other NaturalKey) int {
	for i := 0; i < len(k) && i < len(other); i++ {
		a, b := k[i], other[i]
		var c int
		if a.numeric && b.numeric {
			c = compareDigits(a.text, b.text)
		} else {
			c = strings.Compare(a.text, b.text)
		}
		if c != 0 {
			return c
		}
	}

	switch {
	case len(k) < len(other):
		return -1
	case len(k) > len(other):
		return 1
	default:
		return 0
	}
}

// compareDigits compares two digit strings without leading zeros by value,
// without converting them, so arbitrarily long runs cannot overflow.
func compareDigits(a, b string) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// CompareNatural orders two file names: natural key of the stem first, then
// the case-folded full name.
func CompareNatural(a, b string) int {
	return compareImageKeys(newImageKey(a), newImageKey(b))
}

type imageKey struct {
	natural NaturalKey
	folded  string
}

func newImageKey(name string) imageKey {
	stem, _ := models.SplitName(name)
	return imageKey{
		natural: ParseNaturalKey(stem),
		folded:  strings.ToLower(name),
	}
}

func compareImageKeys(a, b imageKey) int {
	if c := a.natural.Compare(b.natural); c != 0 {
		return c
	}
	return strings.Compare(a.folded, b.folded)
}
