package orgparse

import (
	"fmt"
	"strings"
)

// MalformedEntryError is returned when an entry does not follow the
// `name {distro:release:tag,...}` syntax.
type MalformedEntryError struct {
	Entry  string
	Reason string
}

func (e *MalformedEntryError) Error() string {
	return fmt.Sprintf("not a valid package string %q: %s", e.Entry, e.Reason)
}

// AmbiguousSelectionError is returned when more than one entry of a line
// matches the target equally well.
type AmbiguousSelectionError struct {
	Names []string
}

func (e *AmbiguousSelectionError) Error() string {
	return fmt.Sprintf("More than two packages match the specifications: %s.", strings.Join(e.Names, ", "))
}

// ExtractionError ties a line failure to its 1-based line number.
type ExtractionError struct {
	Line int
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("Error in line %d: %v", e.Line, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
