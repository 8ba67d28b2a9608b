// Package syncer writes exported Canva designs to the local filesystem.
package syncer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hellenic-development/canva-sync/pkg/canva"
)

// Config holds the destination settings for a design sync.
type Config struct {
	OutputDir string       // directory the design file is written into, created when missing
	Format    canva.Format // export output format
}

// Result describes the file written by a successful sync.
type Result struct {
	Path  string // location of the written design file
	Bytes int64  // size of the exported payload
}

// Sync exports the design through the client and writes the payload
// verbatim to <OutputDir>/<designID>.<ext>, replacing any previous file of
// the same name. The output directory is created first; when the export
// fails no file is created or modified.
func Sync(client *canva.Client, designID string, cfg Config) (*Result, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %q: %w", cfg.OutputDir, err)
	}

	data, err := client.ExportDesign(designID, cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to export design %s: %w", designID, err)
	}

	path := filepath.Join(cfg.OutputDir, designID+"."+cfg.Format.Ext())
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write file %q: %w", path, err)
	}

	return &Result{Path: path, Bytes: int64(len(data))}, nil
}
