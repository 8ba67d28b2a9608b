package canvasync

import (
	"fmt"

	"github.com/hellenic-development/canva-sync/pkg/canva"
	"github.com/hellenic-development/canva-sync/pkg/syncer"
)

// DefaultOutputDir is where designs are written when Options.OutputDir is
// empty.
const DefaultOutputDir = "canva_designs"

// Options configures the sync.
type Options struct {
	APIKey    string       // Canva API key, sent as a bearer credential
	DesignURL string       // Canva share or view link
	OutputDir string       // empty = DefaultOutputDir
	Format    canva.Format // empty = canva.FormatPDF
	BaseURL   string       // empty = the production Canva API; set to target a mock or gateway
	Logger    Logger       // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the sync output.
type Result struct {
	DesignID   string // identifier extracted from the share link
	OutputPath string // location of the written design file
	Bytes      int64  // size of the exported payload
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

// Run executes the sync pipeline and returns the result: extract the design
// id from the share link, request the export, write the payload to disk.
func Run(opts Options) (*Result, error) {
	// Apply defaults.
	if opts.OutputDir == "" {
		opts.OutputDir = DefaultOutputDir
	}
	if opts.Format == "" {
		opts.Format = canva.FormatPDF
	} else {
		// Normalize so that library callers may pass any casing.
		format, err := canva.ParseFormat(string(opts.Format))
		if err != nil {
			return nil, err
		}
		opts.Format = format
	}

	// Extract the design id from the URL.
	opts.logInfo("Extracting design id from URL...")
	designID, err := canva.ExtractDesignID(opts.DesignURL)
	if err != nil {
		return nil, fmt.Errorf("extract design id: %w", err)
	}
	opts.logInfo("Design id: %s", designID)

	client := canva.NewClient(opts.APIKey)
	if opts.BaseURL != "" {
		client.WithBaseURL(opts.BaseURL)
	}

	opts.logInfo("Requesting design %s from the Canva API...", designID)
	result, err := syncer.Sync(client, designID, syncer.Config{
		OutputDir: opts.OutputDir,
		Format:    opts.Format,
	})
	if err != nil {
		return nil, fmt.Errorf("sync design: %w", err)
	}
	opts.logInfo("Design downloaded successfully: %s", result.Path)

	return &Result{
		DesignID:   designID,
		OutputPath: result.Path,
		Bytes:      result.Bytes,
	}, nil
}
