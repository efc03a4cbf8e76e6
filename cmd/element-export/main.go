// element-export — cut-list and edge-banding report generator
//
// Reads a panel scene (.json), panel list (.csv, .xlsx), or 2D drawing
// (.dxf), aggregates identical panels into counted rows, and writes a
// sorted cut-list report as CSV, PDF, or Excel.
//
// Build:
//   go build -o element-export ./cmd/element-export
package main

import (
	"fmt"
	"os"

	"github.com/sinisakovacic/SketchUp-element-export/internal/cli"
)

// version and commit are set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	cli.Version = version
	cli.Commit = commit

	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
