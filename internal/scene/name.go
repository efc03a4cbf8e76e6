package scene

import "strings"

// UnnamedLabel is the display name used when an object carries neither a
// tag name nor a definition name.
const UnnamedLabel = "Unnamed"

// DisplayName derives the part name for an object: the tag/group name
// when non-blank after trimming, else the shared-definition name when one
// is available and non-blank, else UnnamedLabel.
func DisplayName(obj Object) string {
	if name := strings.TrimSpace(obj.TagName()); name != "" {
		return name
	}
	if def, ok := obj.Definition(); ok {
		if name := strings.TrimSpace(def.Name); name != "" {
			return name
		}
	}
	return UnnamedLabel
}
