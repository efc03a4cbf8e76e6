// Package model defines the core domain types for cut-list extraction:
// panel dimensions, edge-banding flags, part identity, and the aggregated
// report rows rendered by the export package.
package model

import "fmt"

// Dimensions holds the classified panel extents in whole millimeters.
// After classification Thickness <= Width <= Length always holds.
type Dimensions struct {
	Thickness int `json:"thickness"`
	Width     int `json:"width"`
	Length    int `json:"length"`
}

// SizeLabel returns a human-readable "L x W x T mm" string for labels
// and summaries.
func (d Dimensions) SizeLabel() string {
	return fmt.Sprintf("%d x %d x %d mm", d.Length, d.Width, d.Thickness)
}

// PartKey is the identity tuple used to deduplicate physically-identical
// parts. Two objects are the same part iff every field is equal; material
// names that map to no edge-banding flag have no effect on identity.
type PartKey struct {
	Name       string      `json:"name"`
	Dimensions Dimensions  `json:"dimensions"`
	Banding    EdgeBanding `json:"banding"`
}

// PartRecord is the aggregate for one PartKey: the key fields as observed
// on first insertion plus a running count of contributing objects.
type PartRecord struct {
	Key   PartKey `json:"key"`
	Count int     `json:"count"`
}

// Row converts the record into its report view.
func (r PartRecord) Row() ReportRow {
	return ReportRow{
		Label:     r.Key.Name,
		Thickness: r.Key.Dimensions.Thickness,
		Length:    r.Key.Dimensions.Length,
		Width:     r.Key.Dimensions.Width,
		Count:     r.Count,
		EB1:       r.Key.Banding.EB1,
		EB2:       r.Key.Banding.EB2,
		EB3:       r.Key.Banding.EB3,
		EB4:       r.Key.Banding.EB4,
	}
}

// ReportRow is a finalized, ordered view of a PartRecord with the fields
// in report column order.
type ReportRow struct {
	Label     string `json:"label"`
	Thickness int    `json:"deb"`
	Length    int    `json:"length"`
	Width     int    `json:"width"`
	Count     int    `json:"pices"`
	EB1       bool   `json:"eb1"`
	EB2       bool   `json:"eb2"`
	EB3       bool   `json:"eb3"`
	EB4       bool   `json:"eb4"`
}
