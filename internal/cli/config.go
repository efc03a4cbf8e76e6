package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sinisakovacic/SketchUp-element-export/internal/project"
)

// NewConfigCommand creates the "config" command group: show the active
// configuration and back it up or restore it as a single JSON file.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and back up application configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the active configuration as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := project.LoadAppConfig(project.DefaultConfigPath())
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(config, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			verbosef(cmd, "config path: %s", project.DefaultConfigPath())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "backup <file>",
		Short: "Export the configuration to a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := project.LoadAppConfig(project.DefaultConfigPath())
			if err != nil {
				return err
			}
			if err := project.ExportAllData(args[0], config); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "restore <file>",
		Short: "Restore the configuration from a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backup, err := project.ImportAllData(args[0])
			if err != nil {
				return err
			}
			if err := project.SaveAppConfig(project.DefaultConfigPath(), backup.Config); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Restored config from %s (created %s)\n", args[0], backup.CreatedAt)
			return nil
		},
	})

	return cmd
}
