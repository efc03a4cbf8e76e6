package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sinisakovacic/SketchUp-element-export/internal/model"
	"github.com/sinisakovacic/SketchUp-element-export/internal/scene"
)

// backupVersion is written into every backup and required on restore.
const backupVersion = "1.0.0"

// BackupData is the envelope for a full settings backup.
type BackupData struct {
	Version   string          `json:"version"`
	CreatedAt string          `json:"created_at"`
	Config    model.AppConfig `json:"config"`
}

// ExportAllData writes the complete application state to a single JSON
// file at exportPath, creating parent directories as needed.
func ExportAllData(exportPath string, config model.AppConfig) error {
	backup := BackupData{
		Version:   backupVersion,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Config:    config,
	}
	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal backup data: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(exportPath), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	if err := os.WriteFile(exportPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// ImportAllData reads a backup file, rejects envelopes and settings the
// exporter cannot honor, and returns the contained data. The caller is
// responsible for applying the imported config.
func ImportAllData(importPath string) (BackupData, error) {
	data, err := os.ReadFile(importPath)
	if err != nil {
		return BackupData{}, fmt.Errorf("failed to read backup file: %w", err)
	}
	var backup BackupData
	if err := json.Unmarshal(data, &backup); err != nil {
		return BackupData{}, fmt.Errorf("failed to parse backup file: %w", err)
	}
	if backup.Version == "" {
		return BackupData{}, fmt.Errorf("invalid backup file: missing version field")
	}
	if err := validateConfig(backup.Config); err != nil {
		return BackupData{}, fmt.Errorf("invalid backup file: %w", err)
	}
	// Ensure RecentScenes is never nil
	if backup.Config.RecentScenes == nil {
		backup.Config.RecentScenes = []string{}
	}
	return backup, nil
}

// validateConfig checks the restored preferences against what the
// pipeline accepts, so a bad backup fails at restore time rather than
// on the next export run.
func validateConfig(c model.AppConfig) error {
	if c.DefaultUnit != "" {
		if _, ok := scene.UnitScale(c.DefaultUnit); !ok {
			return fmt.Errorf("unknown default unit %q", c.DefaultUnit)
		}
	}
	if n := len(c.EdgeMarkers); n != 0 && n != 4 {
		return fmt.Errorf("edge_markers must list exactly 4 names, got %d", n)
	}
	if c.DefaultWastePercent < 0 || c.DefaultWastePercent > 100 {
		return fmt.Errorf("waste percent %.1f out of range", c.DefaultWastePercent)
	}
	return nil
}
