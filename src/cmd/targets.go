package cmd

import (
	"deborg/src/internal/project"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newTargetsCmd() *cobra.Command {
	targetsCmd := &cobra.Command{
		Use:   "targets",
		Short: "Manage the named targets of " + project.FileName,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List targets from " + project.FileName,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wd, err := os.Getwd()
			if err != nil {
				return &ExitError{Code: 1, Err: err}
			}
			path := filepath.Join(wd, project.FileName)
			if _, err := os.Stat(path); os.IsNotExist(err) {
				fmt.Fprint(cmd.OutOrStdout(), pterm.Info.Sprintfln("No %s in %s", project.FileName, wd))
				return nil
			}
			cfg, err := project.Load(path)
			if err != nil {
				return &ExitError{Code: 1, Err: fmt.Errorf("could not load %s: %w", project.FileName, err)}
			}
			if len(cfg.Targets) == 0 {
				fmt.Fprint(cmd.OutOrStdout(), pterm.Info.Sprintfln("No targets in %s", project.FileName))
				return nil
			}
			data := pterm.TableData{{"Target", "Distro", "Release", "Tags"}}
			for _, name := range cfg.TargetNames() {
				t := cfg.Targets[name]
				data = append(data, []string{name, t.Distro, t.Release, strings.Join(t.Tags, ",")})
			}
			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}

	var addTags string
	addCmd := &cobra.Command{
		Use:   "add <name> <distro> <release>",
		Short: "Add or replace a target in " + project.FileName,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := project.NormalizeTargetName(args[0])
			if name == "" {
				return &ExitError{Code: 2, Err: fmt.Errorf("target name must not be empty")}
			}
			wd, err := os.Getwd()
			if err != nil {
				return &ExitError{Code: 1, Err: err}
			}
			cfg, path, err := project.LoadOrCreate(wd)
			if err != nil {
				return &ExitError{Code: 1, Err: fmt.Errorf("could not load %s: %w", project.FileName, err)}
			}
			_, replaced := cfg.Targets[name]
			cfg.Targets[name] = project.TargetConfig{
				Distro:  args[1],
				Release: args[2],
				Tags:    parseTags(addTags),
			}
			if err := project.Save(path, cfg); err != nil {
				return &ExitError{Code: 1, Err: fmt.Errorf("could not save %s: %w", project.FileName, err)}
			}
			verb := "Added"
			if replaced {
				verb = "Replaced"
			}
			fmt.Fprint(cmd.OutOrStdout(), pterm.Success.Sprintfln("%s target %s in %s", verb, name, filepath.Base(path)))
			return nil
		},
	}
	addCmd.Flags().StringVarP(&addTags, "tags", "t", "", "Comma separated list of tags for this target")

	targetsCmd.AddCommand(listCmd)
	targetsCmd.AddCommand(addCmd)
	return targetsCmd
}
