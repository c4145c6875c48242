package util

import (
	"strings"
	"unicode"
)

// Slugify builds a URL slug from a listing title plus a short id suffix to
// keep slugs unique across identical titles.
func Slugify(title, idSuffix string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	slug := strings.Trim(b.String(), "-")
	if len(slug) > 60 {
		slug = strings.Trim(slug[:60], "-")
	}
	if len(idSuffix) > 8 {
		idSuffix = idSuffix[:8]
	}
	if slug == "" {
		return idSuffix
	}
	return slug + "-" + idSuffix
}
