package model

import "strings"

// ExportSettings holds the options for one export run.
type ExportSettings struct {
	Unit             string    `json:"unit"`              // Scene unit name when the file declares none
	Format           string    `json:"format"`            // Report format: "csv", "pdf", "xlsx"
	WastePercent     float64   `json:"waste_percent"`     // Edge-banding waste factor for summaries
	DefaultThickness float64   `json:"default_thickness"` // Panel thickness in mm assumed for 2D imports
	Markers          MarkerSet `json:"markers"`           // Material names treated as edge markers
}

// DefaultSettings returns the settings applied when no config file or
// flags override them. The host application measures in inches.
func DefaultSettings() ExportSettings {
	return ExportSettings{
		Unit:             "in",
		Format:           "csv",
		WastePercent:     10.0,
		DefaultThickness: 18.0,
		Markers:          DefaultMarkers(),
	}
}

// AppConfig holds application-wide preferences persisted between runs.
// EdgeMarkers overrides the stock marker names when present: it must
// carry four entries in EB1..EB4 order, and blank entries keep the
// stock name for that edge. Absent or empty means no override.
type AppConfig struct {
	DefaultUnit         string   `json:"default_unit"`
	DefaultFormat       string   `json:"default_format"`
	DefaultWastePercent float64  `json:"default_waste_percent"`
	DefaultDXFThickness float64  `json:"default_dxf_thickness_mm"`
	EdgeMarkers         []string `json:"edge_markers,omitempty"`

	RecentScenes []string `json:"recent_scenes"`
}

// DefaultAppConfig returns an AppConfig populated with the values from
// DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultUnit:         defaults.Unit,
		DefaultFormat:       defaults.Format,
		DefaultWastePercent: defaults.WastePercent,
		DefaultDXFThickness: defaults.DefaultThickness,
		RecentScenes:        []string{},
	}
}

// ApplyToSettings copies the saved defaults into an ExportSettings
// struct. Used when starting a run so it inherits the user's config.
func (c AppConfig) ApplyToSettings(s *ExportSettings) {
	if c.DefaultUnit != "" {
		s.Unit = c.DefaultUnit
	}
	if c.DefaultFormat != "" {
		s.Format = c.DefaultFormat
	}
	if c.DefaultWastePercent > 0 {
		s.WastePercent = c.DefaultWastePercent
	}
	if c.DefaultDXFThickness > 0 {
		s.DefaultThickness = c.DefaultDXFThickness
	}
	if len(c.EdgeMarkers) == len(s.Markers) {
		for i, marker := range c.EdgeMarkers {
			if strings.TrimSpace(marker) != "" {
				s.Markers[i] = marker
			}
		}
	}
}
