package cmd

import (
	"deborg/src/internal/orgparse"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <orgfile>",
		Short: "Report every malformed package entry in an org file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := os.Open(path)
			if err != nil {
				return fileError(path, err)
			}
			defer f.Close()

			problems, err := orgparse.Check(f)
			if err != nil {
				return fileError(path, err)
			}
			if len(problems) == 0 {
				fmt.Fprint(cmd.OutOrStdout(), pterm.Success.Sprintfln("No malformed entries in %s", path))
				return nil
			}

			data := pterm.TableData{{"Line", "Entry", "Problem"}}
			for _, p := range problems {
				entry, reason := "", p.Err.Error()
				var malformed *orgparse.MalformedEntryError
				if errors.As(p.Err, &malformed) {
					entry, reason = malformed.Entry, malformed.Reason
				}
				data = append(data, []string{strconv.Itoa(p.Line), entry, reason})
			}
			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return &ExitError{Code: 1, Err: fmt.Errorf("%d malformed entries in %s", len(problems), path)}
		},
	}
}
