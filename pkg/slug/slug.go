// Package slug derives URL-safe identifiers from display strings.
// Vacancies, blogs and users all share the same derivation so slugs stay
// comparable across modules.
package slug

import (
	"regexp"
	"strings"
)

var (
	whitespace  = regexp.MustCompile(`\s+`)
	disallowed  = regexp.MustCompile(`[^\w-]+`)
	multiHyphen = regexp.MustCompile(`--+`)
)

// Generate lower-cases and trims the text, collapses whitespace into
// hyphens, strips everything outside [A-Za-z0-9_-] and squeezes leading,
// trailing and duplicated hyphens.
func Generate(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = whitespace.ReplaceAllString(s, "-")
	s = disallowed.ReplaceAllString(s, "")
	s = multiHyphen.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
