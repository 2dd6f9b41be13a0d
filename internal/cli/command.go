package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Options configures the CLI behavior.
type Options struct {
	// Path is the directory to measure.
	Path string
	// Output represents output format (table or json).
	Output string
	// Depth is the maximum printed depth (0=unlimited).
	Depth int
	// Boring lists directory names whose contents are collapsed in the report.
	Boring []string
	// Summary indicates whether to print totals after the tree.
	Summary bool
	// Debug indicates whether debug output is enabled.
	Debug bool
}

// DefaultBoring contains the directory names collapsed by default.
//
//nolint:gochecknoglobals // Config constant
var DefaultBoring = []string{".bzr", ".git", ".hg", ".svn", "CVS", "_darcs", "__pycache__", "node_modules"}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.Command().Execute()
}

// Command builds the root command.
func (c CLI) Command() *cobra.Command {
	var options Options

	allowedOutputs := []string{"table", "json"}

	cmd := &cobra.Command{
		Use:   "ckdu [flags] [path]",
		Short: "Show disk usage of a directory tree",
		Long: heredoc.Doc(`
			ckdu measures the disk usage of a directory tree and prints it as an
			indented report, largest entries first.

			Directories are listed before files. Files reachable through several
			hard links are counted once, where they are first met. Symbolic links
			are never followed.

			Positional Arguments:
			  path                   Directory to measure. Defaults to current directory if not specified.

			The contents of version-control and cache directories (see --boring)
			are measured but collapsed to '...' in the report.
		`),
		Args:          cobra.MaximumNArgs(1),
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(allowedOutputs, options.Output) {
				return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
			}

			if options.Depth < 0 {
				return errors.New("depth cannot be negative")
			}

			if len(args) == 0 {
				options.Path = "."
			} else {
				options.Path = args[0]
			}

			return logic(options, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.SetVersionTemplate("{{.Version}}\n")

	flags := cmd.Flags()
	flags.SortFlags = false

	flags.StringVarP(&options.Output, "output", "o", "table", "Output format: json or table")
	flags.IntVarP(&options.Depth, "depth", "d", 0, "Maximum printed depth (0=unlimited)")
	flags.StringSliceVar(&options.Boring, "boring", DefaultBoring, "Directory names whose contents are collapsed")
	flags.BoolVar(&options.Summary, "summary", false, "Print totals after the tree")
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug output")
	flags.BoolP("version", "v", false, "Show version and exit")

	return cmd
}
