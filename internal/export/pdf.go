package export

import (
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/sinisakovacic/SketchUp-element-export/internal/model"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	rowHeight    = 6.0
)

// ExportPDF renders the cut list as a PDF document: a title block, the
// report table in sorted order, and an edge-banding summary. A cut list
// with zero rows still produces the table header.
func ExportPDF(path string, records []model.PartRecord, banding model.BandingSummary) error {
	rows := Rows(records)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Cut List", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(marginLeft, marginTop+9)
	info := fmt.Sprintf("%d part types, %d panels  |  %s",
		len(rows), totalCount(rows), time.Now().Format("2006-01-02"))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, info, "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+16, pageWidth-marginRight, marginTop+16)

	y := marginTop + 20
	y = renderTable(pdf, rows, y)

	// Edge-banding summary
	y += 8
	if y > pageHeight-marginBottom-40 {
		pdf.AddPage()
		y = marginTop
	}
	renderBandingSummary(pdf, banding, y)

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by element-export", "", 0, "C", false, 0, "")

	return pdf.OutputFileAndClose(path)
}

var tableColWidths = []float64{60, 20, 22, 22, 16, 10, 10, 10, 10}

var tableHeaders = []string{"Label", "Deb", "Length", "Width", "Pcs", "EB1", "EB2", "EB3", "EB4"}

// renderTable draws the report table starting at y and returns the y
// position below the last row, inserting page breaks as needed.
func renderTable(pdf *fpdf.Fpdf, rows []model.ReportRow, y float64) float64 {
	drawHeader := func(y float64) float64 {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFillColor(230, 230, 230)
		x := marginLeft
		for i, header := range tableHeaders {
			pdf.SetXY(x, y)
			pdf.CellFormat(tableColWidths[i], rowHeight, header, "1", 0, "C", true, 0, "")
			x += tableColWidths[i]
		}
		return y + rowHeight
	}

	y = drawHeader(y)

	pdf.SetFont("Helvetica", "", 9)
	for i, row := range rows {
		if y > pageHeight-marginBottom-rowHeight {
			pdf.AddPage()
			y = drawHeader(marginTop)
			pdf.SetFont("Helvetica", "", 9)
		}

		cells := []string{
			row.Label,
			fmt.Sprintf("%d", row.Thickness),
			fmt.Sprintf("%d", row.Length),
			fmt.Sprintf("%d", row.Width),
			fmt.Sprintf("%d", row.Count),
			bandingField(row.EB1),
			bandingField(row.EB2),
			bandingField(row.EB3),
			bandingField(row.EB4),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		x := marginLeft
		for j, cell := range cells {
			align := "C"
			if j == 0 {
				align = "L"
			}
			pdf.SetXY(x, y)
			pdf.CellFormat(tableColWidths[j], rowHeight, cell, "1", 0, align, true, 0, "")
			x += tableColWidths[j]
		}
		y += rowHeight
	}

	return y
}

// renderBandingSummary draws the edge-banding totals block.
func renderBandingSummary(pdf *fpdf.Fpdf, banding model.BandingSummary, y float64) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Edge Banding", "", 0, "L", false, 0, "")
	y += 9

	items := []struct {
		label string
		value string
	}{
		{"Panels with banding", fmt.Sprintf("%d", banding.PartCount)},
		{"Banded edges", fmt.Sprintf("%d", banding.EdgeCount)},
		{"Linear length", fmt.Sprintf("%.2f m", banding.TotalLinearM)},
		{fmt.Sprintf("With %.0f%% waste", banding.WastePercent), fmt.Sprintf("%.2f m", banding.TotalWithWasteM)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}
}

func totalCount(rows []model.ReportRow) int {
	total := 0
	for _, r := range rows {
		total += r.Count
	}
	return total
}
