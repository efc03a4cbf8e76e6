package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// Scene is a loaded selection: the ordered object handles plus the
// native-unit-to-mm scale factor declared by the file.
type Scene struct {
	Unit    string
	Scale   float64
	Objects []Object
}

// Selected returns the objects that enter the aggregation pipeline, in
// file order.
func (s Scene) Selected() []Object {
	var out []Object
	for _, obj := range s.Objects {
		if obj.Kind().Selectable() {
			out = append(out, obj)
		}
	}
	return out
}

// UnitScale returns the millimeters-per-unit factor for a unit name.
func UnitScale(unit string) (float64, bool) {
	switch unit {
	case "mm":
		return 1.0, true
	case "cm":
		return 10.0, true
	case "m":
		return 1000.0, true
	case "in", "inch":
		return 25.4, true
	case "ft":
		return 304.8, true
	default:
		return 0, false
	}
}

// Scene file wire format. Bounds are in the file's declared unit.
type sceneFile struct {
	Unit    string        `json:"unit"`
	Objects []sceneObject `json:"objects"`
}

type sceneObject struct {
	ID         string           `json:"id"`
	Kind       string           `json:"kind"`
	Tag        string           `json:"tag"`
	Material   string           `json:"material"`
	Bounds     sceneBounds      `json:"bounds"`
	Definition *sceneDefinition `json:"definition"`
}

type sceneBounds struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

type sceneDefinition struct {
	Name          string   `json:"name"`
	Material      string   `json:"material"`
	FaceMaterials []string `json:"faces"`
}

// ParseScene decodes a scene document. When the file declares no unit
// the configured defaultUnit applies; an empty defaultUnit falls back
// to inches, the host application's native unit. Objects of
// unrecognized kind are loaded but never selected.
func ParseScene(data []byte, defaultUnit string) (Scene, error) {
	var file sceneFile
	if err := json.Unmarshal(data, &file); err != nil {
		return Scene{}, fmt.Errorf("cannot parse scene file: %w", err)
	}

	unit := file.Unit
	if unit == "" {
		unit = defaultUnit
	}
	if unit == "" {
		unit = "in"
	}
	scale, ok := UnitScale(unit)
	if !ok {
		return Scene{}, fmt.Errorf("unknown scene unit %q", unit)
	}

	scn := Scene{Unit: unit, Scale: scale}
	for _, so := range file.Objects {
		scn.Objects = append(scn.Objects, so.toObject())
	}
	return scn, nil
}

// LoadScene reads and parses a scene document from disk. defaultUnit
// applies when the file declares no unit of its own.
func LoadScene(path, defaultUnit string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("cannot open scene file: %w", err)
	}
	return ParseScene(data, defaultUnit)
}

func (so sceneObject) toObject() Object {
	id := so.ID
	if id == "" {
		id = uuid.New().String()[:8]
	}

	var def *Definition
	if so.Definition != nil {
		def = &Definition{
			Name:          so.Definition.Name,
			Material:      so.Definition.Material,
			FaceMaterials: so.Definition.FaceMaterials,
		}
	}

	switch ParseKind(so.Kind) {
	case KindGroup:
		return &Group{
			ObjectID: id,
			Name:     so.Tag,
			Material: so.Material,
			Width:    so.Bounds.Width,
			Height:   so.Bounds.Height,
			Depth:    so.Bounds.Depth,
			Def:      def,
		}
	case KindComponent:
		inst := &ComponentInstance{
			ObjectID: id,
			Tag:      so.Tag,
			Material: so.Material,
			Width:    so.Bounds.Width,
			Height:   so.Bounds.Height,
			Depth:    so.Bounds.Depth,
		}
		if def != nil {
			inst.Def = *def
		}
		return inst
	default:
		return &unselectable{ObjectID: id, K: ParseKind(so.Kind)}
	}
}
