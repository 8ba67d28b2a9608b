package canva

import (
	"fmt"
	"strings"
)

// Version is the current canva-sync release version.
const Version = "0.1.0"

// Format represents a supported export output format. Values are stored in
// their lower-case form; use Wire for the request payload and Ext for file
// naming. An empty Format is not valid on the wire, so callers default to
// FormatPDF before use.
type Format string

// Supported export formats. FormatPDF is the default.
const (
	FormatPDF Format = "pdf"
	FormatPNG Format = "png"
	FormatJPG Format = "jpg"
)

// ParseFormat converts a user-supplied format string into a Format.
// Matching is case-insensitive, so "PDF", "pdf" and "Pdf" are equivalent.
// Values outside the supported set are rejected with an error naming the
// valid choices.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPDF, FormatPNG, FormatJPG:
		return f, nil
	}
	return "", fmt.Errorf("invalid export format %q (must be pdf, png, or jpg)", s)
}

// Wire returns the upper-case form the export API expects in the request
// payload, e.g. "PDF".
func (f Format) Wire() string { return strings.ToUpper(string(f)) }

// Ext returns the lower-case file extension for the format, e.g. "pdf".
func (f Format) Ext() string { return strings.ToLower(string(f)) }

// String implements fmt.Stringer.
func (f Format) String() string { return string(f) }

// PagesAll selects every page of a design. Page-level selection is not part
// of the tool's surface; exports always cover the whole design.
const PagesAll = "all"

// ExportRequest is the JSON body sent to the design export endpoint.
// Format carries the upper-case wire form of the output format and Pages
// the page selection (always PagesAll).
type ExportRequest struct {
	Format string `json:"format"`
	Pages  string `json:"pages"`
}
