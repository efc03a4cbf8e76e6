package scene

import "strings"

// ResolveMaterials collects every material name associated with an
// object: the instance material first, then the shared definition's own
// material, then each face material found on the definition. Names are
// lower-cased and deduplicated preserving first-seen order; missing
// materials at any step are skipped.
func ResolveMaterials(obj Object) []string {
	var names []string
	seen := make(map[string]bool)

	add := func(name string) {
		name = strings.ToLower(name)
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	}

	add(obj.MaterialName())

	if def, ok := obj.Definition(); ok {
		add(def.Material)
		for _, face := range def.FaceMaterials {
			add(face)
		}
	}

	return names
}
