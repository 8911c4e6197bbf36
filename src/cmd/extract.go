package cmd

import (
	"deborg/src/internal/orgparse"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func runExtract(cmd *cobra.Command, opts *rootOptions, args []string) error {
	orgFile, target, err := resolveInvocation(cmd, opts, args)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	if _, err := os.Stat(orgFile); err != nil {
		return fileError(orgFile, err)
	}

	fmt.Fprint(cmd.ErrOrStderr(), pterm.Debug.Sprintfln("Extracting packages from %s for distro=%q release=%q tags=%v",
		orgFile, target.Platform, target.Release, target.Tags))

	packages, err := orgparse.ExtractFile(orgFile, target)
	if err != nil {
		var extractErr *orgparse.ExtractionError
		if errors.As(err, &extractErr) {
			return &ExitError{Code: 1, Err: fmt.Errorf("Error while parsing '%s'.\n%w", orgFile, extractErr)}
		}
		return fileError(orgFile, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(packages, opts.v.GetString("sep")))
	return nil
}

// fileError reports an org file that cannot be read, which is a different
// failure from a parse error.
func fileError(path string, err error) error {
	if errors.Is(err, os.ErrNotExist) {
		abs, absErr := filepath.Abs(path)
		if absErr != nil {
			abs = path
		}
		return &ExitError{Code: 1, Err: fmt.Errorf("specified file '%s' not found.", filepath.ToSlash(abs))}
	}
	return &ExitError{Code: 1, Err: fmt.Errorf("could not read '%s': %w", path, err)}
}
