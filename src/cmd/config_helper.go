package cmd

import (
	"deborg/src/internal/orgparse"
	"deborg/src/internal/project"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// resolveInvocation works out the org file and the extraction target.
// Resolution order for distro and release:
// 1. positional arguments
// 2. --target from deborg.toml (current directory)
// Tags come from --tags when given on the command line, otherwise from the
// target, otherwise from DEBORG_TAGS or the global config file.
func resolveInvocation(cmd *cobra.Command, opts *rootOptions, args []string) (string, orgparse.Target, error) {
	tags := parseTags(opts.v.GetString("tags"))

	if opts.target == "" {
		return args[0], orgparse.Target{Platform: args[1], Release: args[2], Tags: tags}, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", orgparse.Target{}, err
	}
	cfg, err := project.Load(filepath.Join(wd, project.FileName))
	if err != nil {
		return "", orgparse.Target{}, fmt.Errorf("could not load %s: %w", project.FileName, err)
	}
	target, err := cfg.Target(opts.target)
	if err != nil {
		return "", orgparse.Target{}, err
	}
	if cmd.Flags().Changed("tags") || len(target.Tags) == 0 {
		target.Tags = tags
	}

	var orgFile string
	switch {
	case len(args) > 0:
		orgFile = args[0]
	case cfg.Org.File != "":
		orgFile = filepath.Join(wd, cfg.Org.File)
	default:
		return "", orgparse.Target{}, fmt.Errorf("no org file given and %s has no [org] file", project.FileName)
	}
	return orgFile, target, nil
}

// parseTags splits a comma separated tag list, dropping empty items.
func parseTags(raw string) []string {
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
