// Package export renders aggregated cut lists to the report formats:
// the canonical CSV schema, PDF, Excel workbooks, and QR-coded part
// labels.
package export

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/sinisakovacic/SketchUp-element-export/internal/model"
)

// ReportHeader is the literal header row of the cut-list report. The
// "pices" spelling is part of the established schema consumed downstream.
const ReportHeader = "label,deb,length,width,pices,eb1,eb2,eb3,eb4"

// bandingMark is rendered for a set edge-banding flag; unset flags render
// as an empty field.
const bandingMark = "x"

// Rows converts aggregated records into report rows in final render
// order: thickness descending, then length, then width, with stable
// tie-breaking so identical inputs always produce identical reports.
func Rows(records []model.PartRecord) []model.ReportRow {
	rows := make([]model.ReportRow, len(records))
	for i, r := range records {
		rows[i] = r.Row()
	}
	SortRows(rows)
	return rows
}

// SortRows orders rows in place by the report's composite descending key.
func SortRows(rows []model.ReportRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Thickness != b.Thickness {
			return a.Thickness > b.Thickness
		}
		if a.Length != b.Length {
			return a.Length > b.Length
		}
		return a.Width > b.Width
	})
}

// RenderCSV renders the complete report text: the header line followed by
// one line per row in sorted order, newline after every line. Labels are
// written verbatim; a label containing a comma or newline corrupts the
// row (see ImportCSV for the alternate-delimiter round trip).
func RenderCSV(records []model.PartRecord) string {
	var sb strings.Builder
	sb.WriteString(ReportHeader)
	sb.WriteByte('\n')
	for _, row := range Rows(records) {
		sb.WriteString(renderRow(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteCSV renders the report and writes it to the given path.
func WriteCSV(path string, records []model.PartRecord) error {
	if err := os.WriteFile(path, []byte(RenderCSV(records)), 0644); err != nil {
		return fmt.Errorf("cannot write report: %w", err)
	}
	return nil
}

func renderRow(row model.ReportRow) string {
	fields := []string{
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
	return strings.Join(fields, ",")
}

func bandingField(set bool) string {
	if set {
		return bandingMark
	}
	return ""
}
