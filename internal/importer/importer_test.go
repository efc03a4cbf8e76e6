package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/sinisakovacic/SketchUp-element-export/internal/bom"
	"github.com/sinisakovacic/SketchUp-element-export/internal/scene"
)

func writeFile(path, data string) error {
	return os.WriteFile(path, []byte(data), 0644)
}

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter_Comma(t *testing.T) {
	data := []byte("Label,Width,Height,Thickness\nShelf,600,300,18\nDoor,400,800,18\n")
	if got := DetectCSVDelimiter(data); got != ',' {
		t.Errorf("expected comma delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Semicolon(t *testing.T) {
	data := []byte("Label;Width;Height;Thickness\nShelf;600;300;18\nDoor;400;800;18\n")
	if got := DetectCSVDelimiter(data); got != ';' {
		t.Errorf("expected semicolon delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Tab(t *testing.T) {
	data := []byte("Label\tWidth\tHeight\nShelf\t600\t300\nDoor\t400\t800\n")
	if got := DetectCSVDelimiter(data); got != '\t' {
		t.Errorf("expected tab delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Pipe(t *testing.T) {
	data := []byte("Label|Width|Height\nShelf|600|300\nDoor|400|800\n")
	if got := DetectCSVDelimiter(data); got != '|' {
		t.Errorf("expected pipe delimiter, got %q", got)
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_StandardHeaders(t *testing.T) {
	row := []string{"Label", "Width", "Height", "Thickness", "Material", "Quantity"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Label != 0 {
		t.Errorf("expected Label at 0, got %d", mapping.Label)
	}
	if mapping.Width != 1 {
		t.Errorf("expected Width at 1, got %d", mapping.Width)
	}
	if mapping.Height != 2 {
		t.Errorf("expected Height at 2, got %d", mapping.Height)
	}
	if mapping.Thickness != 3 {
		t.Errorf("expected Thickness at 3, got %d", mapping.Thickness)
	}
	if mapping.Material != 4 {
		t.Errorf("expected Material at 4, got %d", mapping.Material)
	}
	if mapping.Quantity != 5 {
		t.Errorf("expected Quantity at 5, got %d", mapping.Quantity)
	}
}

func TestDetectColumns_Aliases(t *testing.T) {
	row := []string{"name", "w", "len", "deb", "color", "pcs"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Label != 0 || mapping.Width != 1 || mapping.Height != 2 ||
		mapping.Thickness != 3 || mapping.Material != 4 || mapping.Quantity != 5 {
		t.Errorf("unexpected mapping: %+v", mapping)
	}
}

func TestDetectColumns_NoHeader(t *testing.T) {
	row := []string{"Shelf", "600", "300", "18"}
	mapping, isHeader := DetectColumns(row)

	if isHeader {
		t.Error("numeric row should not be a header")
	}
	// Positional fallback
	if mapping.Label != 0 || mapping.Width != 1 || mapping.Height != 2 || mapping.Thickness != 3 {
		t.Errorf("unexpected positional mapping: %+v", mapping)
	}
}

// ─── ImportCSV Tests ───────────────────────────────────────

func TestImportCSVFromReader_Basic(t *testing.T) {
	data := "Label,Width,Height,Thickness,Material,Quantity\n" +
		"Shelf,600,300,18,Color A01,2\n" +
		"Back,800,600,6,,1\n"

	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	// Quantity 2 expands into two handles.
	if len(result.Objects) != 3 {
		t.Fatalf("expected 3 objects, got %d", len(result.Objects))
	}

	first := result.Objects[0]
	if first.TagName() != "Shelf" {
		t.Errorf("expected Shelf, got %q", first.TagName())
	}
	w, h, d := first.Bounds()
	if w != 600 || h != 300 || d != 18 {
		t.Errorf("unexpected bounds: %f %f %f", w, h, d)
	}
	if first.MaterialName() != "Color A01" {
		t.Errorf("expected material, got %q", first.MaterialName())
	}
	if first.Kind() != scene.KindGroup {
		t.Errorf("imported panels should be group handles")
	}
}

func TestImportCSVFromReader_RowErrors(t *testing.T) {
	data := "Label,Width,Height,Thickness\n" +
		"Good,600,300,18\n" +
		"NoWidth,,300,18\n" +
		"BadHeight,600,abc,18\n"

	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Objects) != 1 {
		t.Errorf("expected 1 imported object, got %d", len(result.Objects))
	}
	if len(result.Errors) != 2 {
		t.Errorf("expected 2 row errors, got %v", result.Errors)
	}
}

func TestImportCSVFromReader_MissingThicknessWarns(t *testing.T) {
	data := "Label,Width,Height,Thickness\nShelf,600,300,\n"

	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Objects) != 1 {
		t.Fatalf("expected 1 object, got %d", len(result.Objects))
	}
	_, _, d := result.Objects[0].Bounds()
	if d != 0 {
		t.Errorf("expected 0 thickness, got %f", d)
	}

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "No thickness") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected thickness warning, got %v", result.Warnings)
	}
}

func TestImportCSVFromReader_SkipsEmptyRows(t *testing.T) {
	data := "Label,Width,Height,Thickness\nShelf,600,300,18\n,,,\n\nDoor,400,800,18\n"

	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Objects) != 2 {
		t.Errorf("expected 2 objects, got %d: %v", len(result.Objects), result.Errors)
	}
}

func TestImportCSV_SemicolonFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panels.csv")
	data := "Label;Width;Height;Thickness\nShelf;600;300;18\n"
	if err := writeFile(path, data); err != nil {
		t.Fatal(err)
	}

	result := ImportCSV(path)

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Objects) != 1 {
		t.Fatalf("expected 1 object, got %d", len(result.Objects))
	}
}

// ─── ImportExcel Tests ─────────────────────────────────────

func TestImportExcel_Basic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panels.xlsx")

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"Label", "Width", "Height", "Thickness", "Material", "Quantity"},
		{"Shelf", 600, 300, 18, "color a01", 2},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	f.Close()

	result := ImportExcel(path)

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Objects) != 2 {
		t.Fatalf("expected 2 objects, got %d", len(result.Objects))
	}
	if result.Objects[0].MaterialName() != "color a01" {
		t.Errorf("unexpected material %q", result.Objects[0].MaterialName())
	}
}

// ─── DXF helper Tests ──────────────────────────────────────

func TestChainSegmentsClosedShape(t *testing.T) {
	// A 100 x 50 rectangle drawn as four loose lines, out of order.
	segs := []dxfSegment{
		{start: point{0, 0}, end: point{100, 0}},
		{start: point{100, 50}, end: point{0, 50}},
		{start: point{100, 0}, end: point{100, 50}},
		{start: point{0, 50}, end: point{0, 0}},
	}

	shapes := chainSegments(segs, 0.01)
	if len(shapes) != 1 {
		t.Fatalf("expected 1 closed shape, got %d", len(shapes))
	}
	w, h := boundingExtents(shapes[0])
	if w != 100 || h != 50 {
		t.Errorf("expected 100 x 50 bounds, got %f x %f", w, h)
	}
}

func TestChainSegmentsOpenShapeDropped(t *testing.T) {
	segs := []dxfSegment{
		{start: point{0, 0}, end: point{100, 0}},
		{start: point{100, 0}, end: point{100, 50}},
	}
	if shapes := chainSegments(segs, 0.01); len(shapes) != 0 {
		t.Errorf("open chain should not produce a shape, got %d", len(shapes))
	}
}

func TestPanelsFromShapesLayerBecomesMaterial(t *testing.T) {
	rect := []point{{0, 0}, {600, 0}, {600, 300}, {0, 300}}
	shapes := []dxfShape{
		{pts: rect, layer: "color a01"},
		{pts: rect, layer: ""},
	}

	var result ImportResult
	panelsFromShapes(shapes, 18, &result)

	if len(result.Objects) != 2 {
		t.Fatalf("expected 2 panels, got %d", len(result.Objects))
	}
	if got := result.Objects[0].MaterialName(); got != "color a01" {
		t.Errorf("expected layer name as material, got %q", got)
	}
	if got := result.Objects[1].MaterialName(); got != "" {
		t.Errorf("default layer should carry no material, got %q", got)
	}

	// A marker-named layer flows through aggregation as a banded edge.
	records := bom.Extract(result.Objects, 1)
	if len(records) != 2 {
		t.Fatalf("expected 2 part types, got %d", len(records))
	}
	for _, r := range records {
		switch r.Key.Name {
		case "DXF Part 1":
			if !r.Key.Banding.EB1 {
				t.Error("marker layer should set EB1")
			}
		case "DXF Part 2":
			if r.Key.Banding.HasAny() {
				t.Error("unmarked panel should have no banding")
			}
		}
	}
}

func TestImportDXF_MissingFile(t *testing.T) {
	result := ImportDXF(filepath.Join(t.TempDir(), "missing.dxf"), 18)
	if len(result.Errors) == 0 {
		t.Error("expected error for missing file")
	}
}
