package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sinisakovacic/SketchUp-element-export/internal/importer"
	"github.com/sinisakovacic/SketchUp-element-export/internal/model"
	"github.com/sinisakovacic/SketchUp-element-export/internal/scene"
)

// selection is a loaded input: the selectable object handles plus the
// native-unit-to-mm scale they are measured at.
type selection struct {
	objects []scene.Object
	scale   float64
}

// loadSelection reads an input file by extension. Scene files carry
// their own unit; panel lists and drawings are always millimeters.
func loadSelection(cmd *cobra.Command, path string, settings model.ExportSettings) (selection, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		scn, err := scene.LoadScene(path, settings.Unit)
		if err != nil {
			return selection{}, err
		}
		verbosef(cmd, "scene unit %s (scale %.4g), %d objects, %d selectable",
			scn.Unit, scn.Scale, len(scn.Objects), len(scn.Selected()))
		return selection{objects: scn.Selected(), scale: scn.Scale}, nil

	case ".csv":
		return importedSelection(cmd, importer.ImportCSV(path))

	case ".xlsx":
		return importedSelection(cmd, importer.ImportExcel(path))

	case ".dxf":
		verbosef(cmd, "importing DXF at %.1f mm thickness", settings.DefaultThickness)
		return importedSelection(cmd, importer.ImportDXF(path, settings.DefaultThickness))

	default:
		return selection{}, fmt.Errorf("unsupported input type %q (want .json, .csv, .xlsx, or .dxf)", filepath.Ext(path))
	}
}

// importedSelection surfaces importer warnings and row errors and wraps
// the objects at mm scale. Row errors skip their row; the import only
// fails when nothing could be read at all.
func importedSelection(cmd *cobra.Command, result importer.ImportResult) (selection, error) {
	for _, w := range result.Warnings {
		verbosef(cmd, "warning: %s", w)
	}
	if len(result.Objects) == 0 && len(result.Errors) > 0 {
		return selection{}, fmt.Errorf("import failed: %s", strings.Join(result.Errors, "; "))
	}
	for _, e := range result.Errors {
		fmt.Fprintf(cmd.ErrOrStderr(), "skipped: %s\n", e)
	}
	return selection{objects: result.Objects, scale: 1.0}, nil
}
