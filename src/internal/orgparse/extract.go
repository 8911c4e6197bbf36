package orgparse

import (
	"bufio"
	"deborg/src/internal/telemetry"
	"fmt"
	"io"
	"os"
)

// maxLineSize bounds a single line of an org file.
const maxLineSize = 1024 * 1024

// ExtractFile returns the packages declared in the org file at path for
// target, in file order. A missing file is reported as an error matching
// os.ErrNotExist, never as an *ExtractionError.
func ExtractFile(path string, target Target) (packages []string, retErr error) {
	done := telemetry.StartSpan("extract.file", "path", path, "distro", target.Platform, "release", target.Release, "tags", target.Tags)
	defer func() {
		fields := []any{"status", "ok", "packages", len(packages)}
		if retErr != nil {
			fields[1] = "error"
			fields = append(fields, "error", retErr.Error())
		}
		done(fields...)
	}()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open org file: %w", err)
	}
	defer f.Close()
	return Extract(f, target)
}

// Extract reads r line by line and returns the selected package of every
// package line. The first failing line aborts the extraction.
func Extract(r io.Reader, target Target) ([]string, error) {
	packages := []string{}
	scanner := newLineScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		c, ok, err := ExtractLine(scanner.Text(), target)
		if err != nil {
			return nil, &ExtractionError{Line: n, Err: err}
		}
		if !ok {
			continue
		}
		telemetry.Event("extract.line", "line", n, "package", c.Name)
		packages = append(packages, c.Name)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read org file: %w", err)
	}
	return packages, nil
}

// ExtractLine resolves a single line. Lines that are not package lines, and
// package lines where no entry applies to target, return ok == false.
func ExtractLine(line string, target Target) (Candidate, bool, error) {
	candidates, err := parseLine(line)
	if err != nil || len(candidates) == 0 {
		return Candidate{}, false, err
	}
	return Resolve(candidates, target)
}

// Check parses every package line of r without resolving it and reports all
// malformed entries instead of stopping at the first one.
func Check(r io.Reader) ([]*ExtractionError, error) {
	var problems []*ExtractionError
	scanner := newLineScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		if !IsPackageLine(scanner.Text()) {
			continue
		}
		for _, part := range SplitPackageLine(scanner.Text()) {
			if _, err := ParseEntry(part); err != nil {
				problems = append(problems, &ExtractionError{Line: n, Err: err})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read org file: %w", err)
	}
	return problems, nil
}

func parseLine(line string) ([]Candidate, error) {
	if !IsPackageLine(line) {
		return nil, nil
	}
	parts := SplitPackageLine(line)
	candidates := make([]Candidate, 0, len(parts))
	for _, part := range parts {
		c, err := ParseEntry(part)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return scanner
}
