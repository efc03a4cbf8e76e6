package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sinisakovacic/SketchUp-element-export/internal/model"
)

func writeJSON(path, data string) error {
	return os.WriteFile(path, []byte(data), 0644)
}

func TestBackupRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultFormat = "xlsx"
	cfg.RecentScenes = []string{"/tmp/wardrobe.scene.json"}

	if err := ExportAllData(path, cfg); err != nil {
		t.Fatalf("ExportAllData failed: %v", err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}

	if backup.Version == "" {
		t.Error("expected version field in backup")
	}
	if backup.CreatedAt == "" {
		t.Error("expected creation timestamp in backup")
	}
	if backup.Config.DefaultFormat != "xlsx" {
		t.Errorf("expected xlsx, got %s", backup.Config.DefaultFormat)
	}
	if len(backup.Config.RecentScenes) != 1 {
		t.Errorf("expected 1 recent scene, got %d", len(backup.Config.RecentScenes))
	}
}

func TestImportAllDataMissingVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := writeJSON(path, `{"config": {}}`); err != nil {
		t.Fatal(err)
	}

	if _, err := ImportAllData(path); err == nil {
		t.Fatal("expected error for backup without version")
	}
}

func TestImportAllDataRejectsBadSettings(t *testing.T) {
	cases := map[string]string{
		"unknown unit":  `{"version": "1.0.0", "config": {"default_unit": "furlong"}}`,
		"short markers": `{"version": "1.0.0", "config": {"edge_markers": ["edge red", "edge blue"]}}`,
		"waste range":   `{"version": "1.0.0", "config": {"default_waste_percent": 250}}`,
	}

	for name, data := range cases {
		path := filepath.Join(t.TempDir(), "bad.json")
		if err := writeJSON(path, data); err != nil {
			t.Fatal(err)
		}
		if _, err := ImportAllData(path); err == nil {
			t.Errorf("%s: expected restore to fail", name)
		}
	}
}

func TestImportAllDataAcceptsMarkerOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")
	data := `{"version": "1.0.0", "config": {"edge_markers": ["edge red", "", "", ""]}}`
	if err := writeJSON(path, data); err != nil {
		t.Fatal(err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}
	if len(backup.Config.EdgeMarkers) != 4 {
		t.Errorf("expected 4 marker entries, got %d", len(backup.Config.EdgeMarkers))
	}
}

func TestImportAllDataMissingFile(t *testing.T) {
	if _, err := ImportAllData(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
