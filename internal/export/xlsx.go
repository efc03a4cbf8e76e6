package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/sinisakovacic/SketchUp-element-export/internal/model"
)

// xlsxSheetName is the worksheet the report is written to.
const xlsxSheetName = "Cut List"

// ExportXLSX writes the cut list to an Excel workbook using the same
// column schema as the CSV report. Boolean flags keep the "x"/empty
// convention so the workbook round-trips through the CSV importer.
func ExportXLSX(path string, records []model.PartRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(xlsxSheetName)
	if err != nil {
		return fmt.Errorf("cannot create worksheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("cannot remove default worksheet: %w", err)
	}

	header := []interface{}{"label", "deb", "length", "width", "pices", "eb1", "eb2", "eb3", "eb4"}
	if err := f.SetSheetRow(xlsxSheetName, "A1", &header); err != nil {
		return fmt.Errorf("cannot write header row: %w", err)
	}

	for i, row := range Rows(records) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{
			row.Label,
			row.Thickness,
			row.Length,
			row.Width,
			row.Count,
			bandingField(row.EB1),
			bandingField(row.EB2),
			bandingField(row.EB3),
			bandingField(row.EB4),
		}
		if err := f.SetSheetRow(xlsxSheetName, cell, &values); err != nil {
			return fmt.Errorf("cannot write row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("cannot write workbook: %w", err)
	}
	return nil
}
