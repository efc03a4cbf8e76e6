package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shelfScene = `{
  "unit": "in",
  "objects": [
    {
      "kind": "component",
      "tag": "Shelf",
      "bounds": {"width": 23.62, "height": 0.708, "depth": 11.81},
      "definition": {"name": "Shelf", "faces": ["Color A01"]}
    },
    {
      "kind": "component",
      "tag": "Shelf",
      "bounds": {"width": 23.62, "height": 0.708, "depth": 11.81},
      "definition": {"name": "Shelf", "faces": ["Color A01"]}
    }
  ]
}`

// runCommandHome executes the root command against the given home
// directory so config reads and writes stay inside the test.
func runCommandHome(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return runCommandHome(t, t.TempDir(), args...)
}

// writeConfig seeds a config file under the given home directory.
func writeConfig(t *testing.T, home, data string) {
	t.Helper()
	dir := filepath.Join(home, ".element-export")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(data), 0644))
}

func TestExportCommand_SceneToCSV(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "kitchen.json")
	require.NoError(t, os.WriteFile(scenePath, []byte(shelfScene), 0644))

	outPath := filepath.Join(dir, "report.csv")
	stdout, _, err := runCommand(t, "export", scenePath, "-o", outPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote "+outPath)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	want := "label,deb,length,width,pices,eb1,eb2,eb3,eb4\n" +
		"Shelf,18,600,300,2,x,,,\n"
	assert.Equal(t, want, string(data))
}

func TestExportCommand_EmptySceneWarns(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(scenePath, []byte(`{"unit": "mm", "objects": []}`), 0644))

	outPath := filepath.Join(dir, "report.csv")
	_, stderr, err := runCommand(t, "export", scenePath, "-o", outPath)
	require.NoError(t, err)
	assert.Contains(t, stderr, "nothing selected")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "label,deb,length,width,pices,eb1,eb2,eb3,eb4\n", string(data))
}

func TestExportCommand_CSVInput(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "panels.csv")
	in := "Label,Width,Height,Thickness,Material,Quantity\n" +
		"Side,700,400,18,color a01,2\n"
	require.NoError(t, os.WriteFile(inPath, []byte(in), 0644))

	outPath := filepath.Join(dir, "report.csv")
	_, _, err := runCommand(t, "export", inPath, "-o", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Side,18,700,400,2,x,,,\n")
}

func TestExportCommand_ConfigDefaultUnit(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, `{"default_unit": "mm"}`)

	dir := t.TempDir()
	scenePath := filepath.Join(dir, "unitless.json")
	sceneJSON := `{"objects": [
		{"kind": "group", "tag": "Shelf", "bounds": {"width": 600, "height": 18, "depth": 300}}
	]}`
	require.NoError(t, os.WriteFile(scenePath, []byte(sceneJSON), 0644))

	outPath := filepath.Join(dir, "report.csv")
	_, _, err := runCommandHome(t, home, "export", scenePath, "-o", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	// Without the configured unit the bounds would be read as inches.
	assert.Contains(t, string(data), "Shelf,18,600,300,1,,,,\n")
}

func TestExportCommand_ConfigMarkerOverride(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, `{"edge_markers": ["edge red", "", "", ""]}`)

	dir := t.TempDir()
	scenePath := filepath.Join(dir, "marked.json")
	sceneJSON := `{"unit": "mm", "objects": [
		{"kind": "group", "tag": "Door", "material": "Edge Red", "bounds": {"width": 400, "height": 18, "depth": 800}},
		{"kind": "group", "tag": "Side", "material": "color a01", "bounds": {"width": 400, "height": 18, "depth": 700}}
	]}`
	require.NoError(t, os.WriteFile(scenePath, []byte(sceneJSON), 0644))

	outPath := filepath.Join(dir, "report.csv")
	_, _, err := runCommandHome(t, home, "export", scenePath, "-o", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Door,18,800,400,1,x,,,\n")
	// The stock name for the overridden edge no longer matches.
	assert.Contains(t, string(data), "Side,18,700,400,1,,,,\n")
}

func TestExportCommand_UnknownFormat(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "kitchen.json")
	require.NoError(t, os.WriteFile(scenePath, []byte(shelfScene), 0644))

	_, _, err := runCommand(t, "export", scenePath, "--format", "docx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown report format")
}

func TestExportCommand_UnsupportedInput(t *testing.T) {
	_, _, err := runCommand(t, "export", "model.step")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported input type")
}

func TestLabelsCommand_EmptySelectionErrors(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(scenePath, []byte(`{"unit": "mm", "objects": []}`), 0644))

	_, _, err := runCommand(t, "labels", scenePath)
	require.Error(t, err)
}

func TestLabelsCommand_WritesPDF(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "kitchen.json")
	require.NoError(t, os.WriteFile(scenePath, []byte(shelfScene), 0644))

	outPath := filepath.Join(dir, "labels.pdf")
	_, _, err := runCommand(t, "labels", scenePath, "-o", outPath)
	require.NoError(t, err)

	info, err := os.Stat(outPath)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestConfigShow(t *testing.T) {
	stdout, _, err := runCommand(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "default_unit")
}
