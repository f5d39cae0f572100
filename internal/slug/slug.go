// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package slug derives filesystem-safe names from page titles and
// category names. Slugs are deterministic: the same input always
// produces the same output.
package slug

import (
	"fmt"
	"strings"

	goslug "github.com/goliatone/go-slug"
)

// Make returns the slug for a title or category: lowercase, hyphen
// separated, with ampersands expanded to "and". Never returns a string
// containing path separators, and never a dot-only name like "." or
// ".." that would alias or escape the directory it is joined onto.
func Make(s string) string {
	s = strings.ReplaceAll(s, "&", " and ")
	out := sanitize(s)
	if normalized, err := goslug.Normalize(s); err == nil && normalized != "" {
		out = normalized
	}
	if strings.Trim(out, ".-") == "" {
		return ""
	}
	return out
}

// sanitize is the fallback for inputs the normalizer rejects. It keeps
// ASCII letters, digits, dots, and underscores, maps separators to
// hyphens, and collapses hyphen runs.
func sanitize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_':
			b.WriteRune(r)
		case r == ' ', r == '/', r == '\\', r == '-':
			b.WriteRune('-')
		}
	}
	out := b.String()
	for strings.Contains(out, "--") {
		out = strings.ReplaceAll(out, "--", "-")
	}
	return strings.Trim(out, "-")
}

// Uniquifier allocates slugs that are unique within one scope, such as
// the files of a single section directory. When two inputs collide, the
// second and later ones get a numeric suffix: "intro", "intro-2",
// "intro-3". Not safe for concurrent use.
type Uniquifier struct {
	used map[string]bool
}

// NewUniquifier returns an empty Uniquifier.
func NewUniquifier() *Uniquifier {
	return &Uniquifier{used: make(map[string]bool)}
}

// Take slugifies s and reserves a unique variant of the result. An
// input that slugifies to the empty string is named "untitled".
func (u *Uniquifier) Take(s string) string {
	base := Make(s)
	if base == "" {
		base = "untitled"
	}
	candidate := base
	for i := 2; u.used[candidate]; i++ {
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	u.used[candidate] = true
	return candidate
}
