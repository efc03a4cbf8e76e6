// Package scene abstracts the host CAD scene graph into a narrow set of
// read-only object handles. The export pipeline only ever sees these
// handles; how they were produced (scene file, spreadsheet, DXF drawing)
// is an importer concern.
package scene

import "strings"

// Kind discriminates the object types found in a scene. Only group-like
// and component-like objects carry panel geometry; everything else is
// filtered before the aggregation pipeline.
type Kind int

const (
	KindUnknown Kind = iota
	KindGroup
	KindComponent
	KindFace
	KindEdge
)

func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindComponent:
		return "component"
	case KindFace:
		return "face"
	case KindEdge:
		return "edge"
	default:
		return "unknown"
	}
}

// ParseKind maps a scene-file kind string onto a Kind. Unrecognized
// strings yield KindUnknown.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "group":
		return KindGroup
	case "component", "component_instance", "instance":
		return KindComponent
	case "face":
		return KindFace
	case "edge":
		return KindEdge
	default:
		return KindUnknown
	}
}

// Selectable reports whether objects of this kind enter the aggregation
// pipeline.
func (k Kind) Selectable() bool {
	return k == KindGroup || k == KindComponent
}

// Definition is the shared definition behind a component instance (or,
// optionally, a group): its name, its own material, and the materials
// painted onto its faces.
type Definition struct {
	Name          string
	Material      string
	FaceMaterials []string
}

// Object is a read-only handle onto one selected scene object.
type Object interface {
	// ID identifies the handle within one run; importers generate one
	// when the source carries none.
	ID() string
	// Kind is the object type discriminator.
	Kind() Kind
	// Bounds returns the axis-aligned bounding-box extents in the
	// scene's native linear unit.
	Bounds() (width, height, depth float64)
	// MaterialName is the object's directly assigned material, or ""
	// when none is set.
	MaterialName() string
	// TagName is the group/tag display name, or "" when none is set.
	TagName() string
	// Definition returns the shared definition and true when the object
	// kind supports one and it is present.
	Definition() (*Definition, bool)
}

// Group is a group-like scene object. Its definition is optional.
type Group struct {
	ObjectID string
	Name     string
	Material string
	Width    float64
	Height   float64
	Depth    float64
	Def      *Definition
}

func (g *Group) ID() string { return g.ObjectID }

func (g *Group) Kind() Kind { return KindGroup }

func (g *Group) MaterialName() string { return g.Material }

func (g *Group) TagName() string { return g.Name }

func (g *Group) Bounds() (width, height, depth float64) {
	return g.Width, g.Height, g.Depth
}

func (g *Group) Definition() (*Definition, bool) {
	if g.Def == nil {
		return nil, false
	}
	return g.Def, true
}

// ComponentInstance is a component-like scene object. Every instance
// shares a definition.
type ComponentInstance struct {
	ObjectID string
	Tag      string
	Material string
	Width    float64
	Height   float64
	Depth    float64
	Def      Definition
}

func (c *ComponentInstance) ID() string { return c.ObjectID }

func (c *ComponentInstance) Kind() Kind { return KindComponent }

func (c *ComponentInstance) MaterialName() string { return c.Material }

func (c *ComponentInstance) TagName() string { return c.Tag }

func (c *ComponentInstance) Bounds() (width, height, depth float64) {
	return c.Width, c.Height, c.Depth
}

func (c *ComponentInstance) Definition() (*Definition, bool) {
	return &c.Def, true
}

// unselectable is any scene object the pipeline skips (faces, edges,
// dimension annotations). It is kept so loaders can report what was
// filtered.
type unselectable struct {
	ObjectID string
	K        Kind
}

func (u *unselectable) ID() string { return u.ObjectID }

func (u *unselectable) Kind() Kind { return u.K }

func (u *unselectable) MaterialName() string { return "" }

func (u *unselectable) TagName() string { return "" }

func (u *unselectable) Bounds() (w, h, d float64) { return 0, 0, 0 }

func (u *unselectable) Definition() (*Definition, bool) { return nil, false }
