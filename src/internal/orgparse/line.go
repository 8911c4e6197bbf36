package orgparse

import (
	"regexp"
	"strings"
)

// ListBullets are the characters that can open a list item holding packages.
const ListBullets = "-+"

// commentMarker starts the free-text description of a list item.
const commentMarker = "::"

var packageLinePattern = regexp.MustCompile(`^\s*[` + regexp.QuoteMeta(ListBullets) + `]\s+\w`)

// IsPackageLine reports whether line is a list item that declares packages.
func IsPackageLine(line string) bool {
	return packageLinePattern.MatchString(line)
}

// SplitPackageLine strips the bullet and the trailing comment from a package
// line and returns one trimmed string per candidate entry. Commas and colons
// inside a {...} block belong to the entry.
func SplitPackageLine(line string) []string {
	rest := strings.TrimSpace(line)
	if rest != "" && strings.ContainsRune(ListBullets, rune(rest[0])) {
		rest = rest[1:]
	}
	rest = strings.TrimSpace(rest)

	var (
		parts   []string
		start   int
		inBrace bool
	)
	i := 0
	for i < len(rest) {
		c := rest[i]
		switch {
		case c == '{':
			inBrace = true
		case c == '}':
			inBrace = false
		case inBrace:
		case c == ',':
			parts = append(parts, strings.TrimSpace(rest[start:i]))
			start = i + 1
		case strings.HasPrefix(rest[i:], commentMarker):
			rest = rest[:i]
			continue
		}
		i++
	}
	parts = append(parts, strings.TrimSpace(rest[start:]))
	return parts
}
