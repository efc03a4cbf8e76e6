// Package bom runs the aggregation pipeline: for each selected scene
// object it classifies dimensions, resolves materials into edge-banding
// flags, derives the part name, and merges the resulting key into a
// count-per-part aggregate. Accumulation finishes before any report is
// rendered; there is no streaming emission.
package bom

import (
	"github.com/sinisakovacic/SketchUp-element-export/internal/model"
	"github.com/sinisakovacic/SketchUp-element-export/internal/scene"
)

// Extractor accumulates parts for one export run. It is not safe for
// concurrent use and is discarded after Records is consumed.
type Extractor struct {
	scale   float64
	markers model.MarkerSet
	agg     *model.Aggregator
	seen    int
}

// New returns an extractor for objects measured at the given
// native-unit-to-mm scale, using the stock edge markers.
func New(scale float64) *Extractor {
	return NewWithMarkers(scale, model.DefaultMarkers())
}

// NewWithMarkers returns an extractor that recognizes the given
// material names as edge markers instead of the stock ones.
func NewWithMarkers(scale float64, markers model.MarkerSet) *Extractor {
	return &Extractor{scale: scale, markers: markers, agg: model.NewAggregator()}
}

// Add processes one scene object. Objects whose kind is not group-like
// or component-like are skipped; the return value reports whether the
// object contributed to the aggregate.
func (e *Extractor) Add(obj scene.Object) bool {
	if !obj.Kind().Selectable() {
		return false
	}
	w, h, d := obj.Bounds()
	e.agg.Observe(model.PartKey{
		Name:       scene.DisplayName(obj),
		Dimensions: model.ClassifyDimensions(w, h, d, e.scale),
		Banding:    e.markers.Classify(scene.ResolveMaterials(obj)),
	})
	e.seen++
	return true
}

// ObjectCount returns the number of objects that contributed so far.
func (e *Extractor) ObjectCount() int { return e.seen }

// PartCount returns the number of distinct parts observed so far.
func (e *Extractor) PartCount() int { return e.agg.Len() }

// Records returns the unordered aggregated part records.
func (e *Extractor) Records() []model.PartRecord {
	return e.agg.Records()
}

// BuildKey derives the full part identity for one object: display name,
// classified dimensions, and edge-banding flags per the stock markers.
func BuildKey(obj scene.Object, scale float64) model.PartKey {
	w, h, d := obj.Bounds()
	return model.PartKey{
		Name:       scene.DisplayName(obj),
		Dimensions: model.ClassifyDimensions(w, h, d, scale),
		Banding:    model.ClassifyEdgeBanding(scene.ResolveMaterials(obj)),
	}
}

// Extract runs the whole pipeline over a selection and returns the
// unordered aggregated records.
func Extract(objects []scene.Object, scale float64) []model.PartRecord {
	return ExtractWith(objects, scale, model.DefaultMarkers())
}

// ExtractWith is Extract with a custom edge-marker set.
func ExtractWith(objects []scene.Object, scale float64, markers model.MarkerSet) []model.PartRecord {
	e := NewWithMarkers(scale, markers)
	for _, obj := range objects {
		e.Add(obj)
	}
	return e.Records()
}
