// Package cli implements the cobra commands for element-export. Each
// subcommand (export, labels, config) lives in its own file; this file
// defines the root command and global flags.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// verbose enables detail output on stderr for all subcommands. Bound to
// the root command's persistent flags.
var verbose bool

// Version and Commit are set at build time via ldflags and injected from
// the main package.
var (
	Version = "dev"
	Commit  = "none"
)

// NewRootCommand creates and configures the root cobra command. The root
// itself performs no action; functionality lives in the subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "element-export",
		Short: "Cut-list and edge-banding report generator for panel scenes",
		Long: `element-export extracts a bill-of-materials from a set of 3D panel
objects: for each selected solid it infers panel dimensions, a part name,
and edge-banding flags, aggregates identical parts into counted rows, and
writes a sorted report.

Input can be a scene file (.json), a panel list (.csv, .xlsx), or a 2D
drawing (.dxf). Reports render as CSV, PDF, or Excel.`,

		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s)", Version, Commit),
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewExportCommand())
	rootCmd.AddCommand(NewLabelsCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// verbosef prints to stderr when --verbose is set.
func verbosef(cmd *cobra.Command, format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
	}
}
