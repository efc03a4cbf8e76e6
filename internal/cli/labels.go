package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sinisakovacic/SketchUp-element-export/internal/bom"
	"github.com/sinisakovacic/SketchUp-element-export/internal/export"
)

// NewLabelsCommand creates the "labels" cobra command. It runs the same
// aggregation pipeline as export but renders a QR-coded label sheet.
func NewLabelsCommand() *cobra.Command {
	var output string
	var thickness float64

	cmd := &cobra.Command{
		Use:   "labels <input>",
		Short: "Generate QR-coded part labels for a selection",
		Long: `Labels aggregates the input like export and writes a PDF label sheet
(Avery 5160 layout) with one QR-coded label per part type.

Examples:
  element-export labels kitchen.scene.json -o labels.pdf`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]

			settings, _, err := loadSettings(&exportFlags{thickness: thickness})
			if err != nil {
				return err
			}

			sel, err := loadSelection(cmd, input, settings)
			if err != nil {
				return err
			}

			records := bom.ExtractWith(sel.objects, sel.scale, settings.Markers)
			if len(records) == 0 {
				return fmt.Errorf("nothing selected, no labels to generate")
			}

			out := output
			if out == "" {
				out = replaceExt(input, ".labels.pdf")
			}
			if err := export.ExportLabels(out, records); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d labels)\n", out, len(records))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output PDF file (default: input name with .labels.pdf)")
	cmd.Flags().Float64Var(&thickness, "thickness", 0, "Panel thickness in mm assumed for DXF input")

	return cmd
}
