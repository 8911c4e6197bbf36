// Package orgparse extracts package names from org-mode list items.
//
// A package line is a list item whose entries name alternative packages,
// each optionally restricted to a distribution, a release and a set of tags:
//
//	+ package, package1 {distro1}, package2b {distro2:release_b} :: comment
//	- apache {::server}
//
// At most one entry per line is selected for a given Target. When several
// entries are equally specific the line is ambiguous and extraction fails.
package orgparse

import (
	"slices"
	"strings"
)

// Candidate is one package alternative found in a list line.
type Candidate struct {
	Name string
	// Platform and Release are empty when the entry does not restrict them.
	Platform string
	Release  string
	// Tags is only meaningful when Tagged is set. A tagged candidate with no
	// tags never matches.
	Tags   []string
	Tagged bool
}

// Equal reports whether c and o describe the same package requirement.
// Tag order is ignored.
func (c Candidate) Equal(o Candidate) bool {
	if c.Name != o.Name || c.Platform != o.Platform || c.Release != o.Release || c.Tagged != o.Tagged {
		return false
	}
	return slices.Equal(sortedTags(c.Tags), sortedTags(o.Tags))
}

// String renders c back into entry syntax.
func (c Candidate) String() string {
	if c.Platform == "" && c.Release == "" && !c.Tagged {
		return c.Name
	}
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteString(" {")
	b.WriteString(c.Platform)
	if c.Release != "" || c.Tagged {
		b.WriteString(":")
		b.WriteString(c.Release)
	}
	if c.Tagged {
		b.WriteString(":")
		b.WriteString(strings.Join(c.Tags, ","))
	}
	b.WriteString("}")
	return b.String()
}

// Target is the environment packages are extracted for.
type Target struct {
	Platform string
	Release  string
	Tags     []string
}

func (t Target) hasTag(tag string) bool {
	return slices.Contains(t.Tags, tag)
}

func sortedTags(tags []string) []string {
	out := slices.Clone(tags)
	slices.Sort(out)
	return slices.Compact(out)
}
