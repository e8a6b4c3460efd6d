package app

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// catalogLocale drives both name ordering and price labels.
var catalogLocale = language.MustParse("es-CL")

// newCollator returns a fresh collator; collators keep internal buffers and
// must not be shared between goroutines.
func newCollator() *collate.Collator {
	return collate.New(catalogLocale)
}

// containsFold is a case-insensitive substring check. needle must already be
// lowercased.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
