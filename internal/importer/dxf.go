package importer

import (
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/sinisakovacic/SketchUp-element-export/internal/scene"
)

// point is a 2D coordinate in drawing units (mm).
type point struct {
	x, y float64
}

// dxfSegment is a line segment used for chaining disconnected LINE
// entities into closed outlines.
type dxfSegment struct {
	start point
	end   point
}

// dxfShape is one closed outline together with the layer it was drawn
// on. The layer name doubles as the panel material, so outlines drawn
// on a marker-named layer come in with their banding flags intact.
type dxfShape struct {
	pts   []point
	layer string
}

// ImportDXF imports panels from a 2D DXF drawing. Each closed shape
// (LWPOLYLINE, CIRCLE, or chain of connected LINEs) becomes one panel
// whose width and height come from the shape's bounding box and whose
// thickness is the caller-supplied value in mm.
func ImportDXF(path string, thickness float64) ImportResult {
	result := ImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var shapes []dxfShape
	segments := map[string][]dxfSegment{}

	for _, ent := range entities {
		layer := entityLayer(ent)

		switch e := ent.(type) {
		case *entity.LwPolyline:
			var pts []point
			for _, v := range e.Vertices {
				pts = append(pts, point{x: v[0], y: v[1]})
			}
			if len(pts) >= 3 {
				shapes = append(shapes, dxfShape{pts: pts, layer: layer})
			} else {
				result.Warnings = append(result.Warnings,
					"Skipped LWPOLYLINE with fewer than 3 vertices")
			}

		case *entity.Circle:
			// A circular blank: bounding box is the diameter square.
			cx, cy, r := e.Center[0], e.Center[1], e.Radius
			shapes = append(shapes, dxfShape{
				pts: []point{
					{x: cx - r, y: cy - r},
					{x: cx + r, y: cy - r},
					{x: cx + r, y: cy + r},
					{x: cx - r, y: cy + r},
				},
				layer: layer,
			})

		case *entity.Line:
			segments[layer] = append(segments[layer], dxfSegment{
				start: point{x: e.Start[0], y: e.Start[1]},
				end:   point{x: e.End[0], y: e.End[1]},
			})

		default:
			// Unsupported entity types are silently skipped
		}
	}

	// Loose LINEs chain only with lines on the same layer, so a marker
	// layer never bleeds into a neighboring part's outline.
	layers := make([]string, 0, len(segments))
	for layer := range segments {
		layers = append(layers, layer)
	}
	sort.Strings(layers)
	for _, layer := range layers {
		for _, chained := range chainSegments(segments[layer], 0.01) {
			shapes = append(shapes, dxfShape{pts: chained, layer: layer})
		}
	}

	if len(shapes) == 0 {
		result.Errors = append(result.Errors, "No closed shapes found in DXF file")
		return result
	}

	panelsFromShapes(shapes, thickness, &result)
	return result
}

// entityLayer returns the entity's layer name, with the default "0"
// layer mapped to no material.
func entityLayer(ent entity.Entity) string {
	layer := ent.Layer()
	if layer == nil {
		return ""
	}
	name := layer.Name()
	if name == "0" {
		return ""
	}
	return name
}

// panelsFromShapes converts closed shapes into panel handles, carrying
// each shape's layer name over as the panel material.
func panelsFromShapes(shapes []dxfShape, thickness float64, result *ImportResult) {
	partNum := 0
	for _, shape := range shapes {
		width, height := boundingExtents(shape.pts)
		if width < 0.01 || height < 0.01 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped degenerate shape (%.2f x %.2f mm)", width, height))
			continue
		}

		partNum++
		result.Objects = append(result.Objects, &scene.Group{
			ObjectID: uuid.New().String()[:8],
			Name:     fmt.Sprintf("DXF Part %d", partNum),
			Material: shape.layer,
			Width:    width,
			Height:   height,
			Depth:    thickness,
		})
	}
}

// boundingExtents returns the width and height of the shape's
// axis-aligned bounding box.
func boundingExtents(pts []point) (width, height float64) {
	if len(pts) == 0 {
		return 0, 0
	}
	minX, maxX := pts[0].x, pts[0].x
	minY, maxY := pts[0].y, pts[0].y
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.x)
		maxX = math.Max(maxX, p.x)
		minY = math.Min(minY, p.y)
		maxY = math.Max(maxY, p.y)
	}
	return maxX - minX, maxY - minY
}

// chainSegments connects loose LINE segments into closed shapes.
// tolerance is the maximum endpoint distance to treat as connected.
func chainSegments(segs []dxfSegment, tolerance float64) [][]point {
	used := make([]bool, len(segs))
	var shapes [][]point

	for start := range segs {
		if used[start] {
			continue
		}

		chain := []point{segs[start].start, segs[start].end}
		used[start] = true

		extended := true
		for extended {
			extended = false
			tail := chain[len(chain)-1]

			for i, seg := range segs {
				if used[i] {
					continue
				}
				if pointsClose(tail, seg.start, tolerance) {
					chain = append(chain, seg.end)
					used[i] = true
					extended = true
					break
				}
				if pointsClose(tail, seg.end, tolerance) {
					chain = append(chain, seg.start)
					used[i] = true
					extended = true
					break
				}
			}
		}

		// Closed when the tail returns to the head; drop the duplicate
		// closing point.
		if len(chain) >= 4 && pointsClose(chain[0], chain[len(chain)-1], tolerance) {
			shapes = append(shapes, chain[:len(chain)-1])
		}
	}

	return shapes
}

// pointsClose checks whether two points are within the given tolerance.
func pointsClose(a, b point, tolerance float64) bool {
	dx := a.x - b.x
	dy := a.y - b.y
	return math.Sqrt(dx*dx+dy*dy) <= tolerance
}
