package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sinisakovacic/SketchUp-element-export/internal/bom"
	"github.com/sinisakovacic/SketchUp-element-export/internal/export"
	"github.com/sinisakovacic/SketchUp-element-export/internal/model"
	"github.com/sinisakovacic/SketchUp-element-export/internal/project"
)

// exportFlags holds the flag values for the export command.
type exportFlags struct {
	output    string
	format    string
	thickness float64
	waste     float64
}

// NewExportCommand creates the "export" cobra command.
func NewExportCommand() *cobra.Command {
	flags := &exportFlags{}

	cmd := &cobra.Command{
		Use:   "export <input>",
		Short: "Aggregate a selection into a cut-list report",
		Long: `Export reads a scene file (.json), panel list (.csv, .xlsx), or 2D
drawing (.dxf), aggregates identical panels into counted rows, and writes
the cut-list report.

Examples:
  element-export export kitchen.scene.json
  element-export export panels.csv --format pdf -o panels.pdf
  element-export export doors.dxf --thickness 19`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: input name with report extension)")
	cmd.Flags().StringVar(&flags.format, "format", "", "Report format: csv, pdf, xlsx (default from config)")
	cmd.Flags().Float64Var(&flags.thickness, "thickness", 0, "Panel thickness in mm assumed for DXF input")
	cmd.Flags().Float64Var(&flags.waste, "waste", -1, "Edge-banding waste percent for the PDF summary")

	return cmd
}

func runExport(cmd *cobra.Command, input string, flags *exportFlags) error {
	settings, config, err := loadSettings(flags)
	if err != nil {
		return err
	}

	sel, err := loadSelection(cmd, input, settings)
	if err != nil {
		return err
	}

	if len(sel.objects) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: nothing selected, writing an empty report")
	}

	records := bom.ExtractWith(sel.objects, sel.scale, settings.Markers)
	verbosef(cmd, "aggregated %d objects into %d part types", len(sel.objects), len(records))

	out := flags.output
	if out == "" {
		out = replaceExt(input, "."+settings.Format)
	}

	switch settings.Format {
	case "csv":
		err = export.WriteCSV(out, records)
	case "pdf":
		err = export.ExportPDF(out, records, model.CalculateBanding(records, settings.WastePercent))
	case "xlsx":
		err = export.ExportXLSX(out, records)
	default:
		return fmt.Errorf("unknown report format %q (want csv, pdf, or xlsx)", settings.Format)
	}
	if err != nil {
		return err
	}

	project.RememberScene(&config, input)
	if err := project.SaveAppConfig(project.DefaultConfigPath(), config); err != nil {
		verbosef(cmd, "warning: cannot update config: %v", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d part types)\n", out, len(records))
	return nil
}

// loadSettings merges the saved config with command-line overrides.
func loadSettings(flags *exportFlags) (model.ExportSettings, model.AppConfig, error) {
	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		return model.ExportSettings{}, model.AppConfig{}, fmt.Errorf("cannot load config: %w", err)
	}

	settings := model.DefaultSettings()
	config.ApplyToSettings(&settings)

	if flags.format != "" {
		settings.Format = strings.ToLower(flags.format)
	}
	if flags.thickness > 0 {
		settings.DefaultThickness = flags.thickness
	}
	if flags.waste >= 0 {
		settings.WastePercent = flags.waste
	}
	return settings, config, nil
}

// replaceExt swaps a path's extension.
func replaceExt(path, ext string) string {
	if i := strings.LastIndexByte(path, '.'); i > strings.LastIndexByte(path, '/') {
		return path[:i] + ext
	}
	return path + ext
}
