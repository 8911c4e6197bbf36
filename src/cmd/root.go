package cmd

import (
	"deborg/src/internal/appdir"
	"deborg/src/internal/project"
	"deborg/src/internal/telemetry"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is the deborg release, overridable with -ldflags.
var Version = "1.0.0"

type rootOptions struct {
	cfgFile     string
	sep         string
	tags        string
	target      string
	trace       string
	exampleFile bool
	verbose     bool

	v *viper.Viper
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:     "deborg [flags] <orgfile> <distro> <release>",
		Short:   "Extract Debian package information from an emacs .org file.",
		Long:    longHelp(),
		Version: Version,
		Args:    opts.validateArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.exampleFile {
				_, err := io.WriteString(cmd.OutOrStdout(), exampleFile)
				return err
			}
			return runExtract(cmd, opts, args)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/deborg/config.yaml)")
	pf.StringVar(&opts.trace, "trace", "", "write a JSONL trace of the run into this directory")
	pf.Lookup("trace").NoOptDefVal = appdir.TraceDir()
	pf.BoolVar(&opts.verbose, "verbose", false, "print debug messages to stderr")

	f := rootCmd.Flags()
	f.StringVarP(&opts.sep, "sep", "s", " ", "Separator used between package names in the returned array.")
	f.StringVarP(&opts.tags, "tags", "t", "", "Comma separated list of tags, no spaces. (tag1,tag2,tag3)")
	f.StringVar(&opts.target, "target", "", "Use a target defined in "+project.FileName+" for distro, release and tags.")
	f.BoolVar(&opts.exampleFile, "example-file", false, "Print an example orgmode file to stdout.")
	_ = opts.v.BindPFlag("sep", f.Lookup("sep"))
	_ = opts.v.BindPFlag("tags", f.Lookup("tags"))

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newTargetsCmd())
	return rootCmd
}

// Execute runs deborg with the process arguments and exits.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command tree with args and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if info, stopErr := telemetry.Stop(); stopErr != nil {
		fmt.Fprint(stderr, pterm.Warning.Sprintfln("Could not close trace %s: %v", info.TracePath, stopErr))
	} else if info.TracePath != "" {
		fmt.Fprint(stderr, pterm.Debug.Sprintfln("Trace written to %s", info.TracePath))
	}
	if err == nil {
		return 0
	}

	fmt.Fprint(stderr, pterm.Error.Sprintln(err.Error()))
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	fmt.Fprintln(stderr, "Run 'deborg --help' for usage.")
	return 2
}

func (o *rootOptions) validateArgs(cmd *cobra.Command, args []string) error {
	switch {
	case o.exampleFile:
		return cobra.NoArgs(cmd, args)
	case o.target != "":
		return cobra.MaximumNArgs(1)(cmd, args)
	default:
		return cobra.ExactArgs(3)(cmd, args)
	}
}

// initConfig reads the global config file and DEBORG_* environment variables.
// Flags given on the command line take precedence over both.
func (o *rootOptions) initConfig() error {
	if o.verbose {
		pterm.EnableDebugMessages()
	}

	if o.cfgFile != "" {
		o.v.SetConfigFile(o.cfgFile)
	} else {
		if dir, err := appdir.ConfigDir(); err == nil {
			o.v.AddConfigPath(dir)
		}
		o.v.SetConfigName("config")
	}
	o.v.SetEnvPrefix("DEBORG")
	o.v.AutomaticEnv()

	if err := o.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if o.cfgFile != "" || !errors.As(err, &notFound) {
			return &ExitError{Code: 1, Err: fmt.Errorf("could not read config: %w", err)}
		}
	}

	if o.trace != "" {
		if _, err := telemetry.Start(o.trace); err != nil {
			return &ExitError{Code: 1, Err: fmt.Errorf("could not start trace: %w", err)}
		}
	}
	return nil
}
