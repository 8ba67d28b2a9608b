// Package canvasync downloads Canva designs to local files via the Canva
// export API: it extracts the design identifier from a share link, requests
// an export in the chosen format, and writes the payload to disk.
//
// The CLI lives in cmd/canva-sync; this root package exposes the same
// pipeline as a Go API so that callers can embed the sync in their own
// tools without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named canvasync:
//
//	import "github.com/hellenic-development/canva-sync" // package canvasync
//
// # Quick start
//
//	result, err := canvasync.Run(canvasync.Options{
//	    APIKey:    os.Getenv("CANVA_API_KEY"),
//	    DesignURL: "https://www.canva.com/design/DAF8xQ2abcd/view",
//	    Format:    canva.FormatPDF,
//	    OutputDir: "canva_designs",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.OutputPath)
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
//	type myLogger struct{}
//	func (l *myLogger) Infof(f string, a ...any)  { log.Printf("[INFO]  "+f, a...) }
//	func (l *myLogger) Warnf(f string, a ...any)  { log.Printf("[WARN]  "+f, a...) }
//	func (l *myLogger) Errorf(f string, a ...any) { log.Printf("[ERROR] "+f, a...) }
//
// # Known limitations
//
// The export endpoint is treated as synchronous: the response body is
// written to disk verbatim. If the Canva API answers with an asynchronous
// job descriptor instead of the design payload, the descriptor bytes are
// what ends up in the output file. Polling job status until the export
// completes is not implemented.
package canvasync
