// Package hashtag extracts inline #tag tokens from free text.
package hashtag

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`#(\w+)`)

// Extract scans title for #word tokens and returns the title with every
// token removed (whitespace collapsed and trimmed) together with the
// matched tag names, in order of appearance and without the leading #.
// Duplicate names are preserved; deduplication is the caller's concern.
func Extract(title string) (string, []string) {
	matches := tagPattern.FindAllStringSubmatch(title, -1)
	if len(matches) == 0 {
		return strings.TrimSpace(title), nil
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}

	clean := tagPattern.ReplaceAllString(title, "")
	clean = strings.Join(strings.Fields(clean), " ")
	return clean, names
}
