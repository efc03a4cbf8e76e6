package model

import (
	"math"
	"strings"
)

// Reserved material names that mark a panel edge as banded. Matching is
// exact after trimming whitespace and lower-casing.
const (
	MarkerEB1 = "color a01"
	MarkerEB2 = "color a02"
	MarkerEB3 = "color a03"
	MarkerEB4 = "color a04"
)

// EdgeBanding holds the four independent edge-banding flags for a panel.
// Flags default to false and are only ever set, never cleared, across one
// object's material set.
type EdgeBanding struct {
	EB1 bool `json:"eb1"`
	EB2 bool `json:"eb2"`
	EB3 bool `json:"eb3"`
	EB4 bool `json:"eb4"`
}

// MarkerSet holds the four material names recognized as edge markers,
// in EB1..EB4 order. The zero value matches nothing; use
// DefaultMarkers for the stock names.
type MarkerSet [4]string

// DefaultMarkers returns the stock marker names.
func DefaultMarkers() MarkerSet {
	return MarkerSet{MarkerEB1, MarkerEB2, MarkerEB3, MarkerEB4}
}

// Classify maps a material-name set onto edge-banding flags. Names that
// equal no marker of the set are ignored.
func (m MarkerSet) Classify(materials []string) EdgeBanding {
	var eb EdgeBanding
	for _, name := range materials {
		normalized := strings.ToLower(strings.TrimSpace(name))
		if normalized == "" {
			continue
		}
		switch normalized {
		case strings.ToLower(strings.TrimSpace(m[0])):
			eb.EB1 = true
		case strings.ToLower(strings.TrimSpace(m[1])):
			eb.EB2 = true
		case strings.ToLower(strings.TrimSpace(m[2])):
			eb.EB3 = true
		case strings.ToLower(strings.TrimSpace(m[3])):
			eb.EB4 = true
		}
	}
	return eb
}

// ClassifyEdgeBanding classifies against the stock markers.
func ClassifyEdgeBanding(materials []string) EdgeBanding {
	return DefaultMarkers().Classify(materials)
}

// HasAny reports whether at least one edge needs banding.
func (e EdgeBanding) HasAny() bool {
	return e.EB1 || e.EB2 || e.EB3 || e.EB4
}

// EdgeCount returns the number of banded edges.
func (e EdgeBanding) EdgeCount() int {
	n := 0
	for _, set := range [4]bool{e.EB1, e.EB2, e.EB3, e.EB4} {
		if set {
			n++
		}
	}
	return n
}

// LinearLength returns the banding length in mm for one panel of the
// given dimensions. The first two markers are taken as the length edges
// and the last two as the width edges; the marker convention does not pin
// markers to physical edges, so only summary totals depend on this pairing.
func (e EdgeBanding) LinearLength(d Dimensions) float64 {
	var total float64
	if e.EB1 {
		total += float64(d.Length)
	}
	if e.EB2 {
		total += float64(d.Length)
	}
	if e.EB3 {
		total += float64(d.Width)
	}
	if e.EB4 {
		total += float64(d.Width)
	}
	return total
}

// String renders the banded edges as "A01+A03" style, or "-" when none.
func (e EdgeBanding) String() string {
	var parts []string
	if e.EB1 {
		parts = append(parts, "A01")
	}
	if e.EB2 {
		parts = append(parts, "A02")
	}
	if e.EB3 {
		parts = append(parts, "A03")
	}
	if e.EB4 {
		parts = append(parts, "A04")
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, "+")
}

// BandingSummary holds the calculated edge-banding requirements for one
// aggregated cut list.
type BandingSummary struct {
	TotalLinearMM    float64 `json:"total_linear_mm"`     // Total banding length in mm (no waste)
	TotalLinearM     float64 `json:"total_linear_m"`      // Total banding length in meters (no waste)
	WastePercent     float64 `json:"waste_percent"`       // Waste percentage applied
	TotalWithWasteMM float64 `json:"total_with_waste_mm"` // Total with waste in mm
	TotalWithWasteM  float64 `json:"total_with_waste_m"`  // Total with waste in meters
	PartCount        int     `json:"part_count"`          // Number of individual panels needing banding
	EdgeCount        int     `json:"edge_count"`          // Total number of edges needing banding
}

// CalculateBanding computes the total edge banding needed for a set of
// aggregated part records. wastePercent is the additional percentage to
// add for waste (e.g., 10 for 10%).
func CalculateBanding(records []PartRecord, wastePercent float64) BandingSummary {
	var totalMM float64
	var partCount, edgeCount int

	for _, r := range records {
		if !r.Key.Banding.HasAny() {
			continue
		}
		lengthPerPiece := r.Key.Banding.LinearLength(r.Key.Dimensions)
		edgesPerPiece := r.Key.Banding.EdgeCount()

		totalMM += lengthPerPiece * float64(r.Count)
		partCount += r.Count
		edgeCount += edgesPerPiece * r.Count
	}

	wasteFactor := 1.0 + (wastePercent / 100.0)
	totalWithWaste := math.Ceil(totalMM * wasteFactor)

	return BandingSummary{
		TotalLinearMM:    totalMM,
		TotalLinearM:     totalMM / 1000.0,
		WastePercent:     wastePercent,
		TotalWithWasteMM: totalWithWaste,
		TotalWithWasteM:  totalWithWaste / 1000.0,
		PartCount:        partCount,
		EdgeCount:        edgeCount,
	}
}
