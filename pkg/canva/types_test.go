package canva

import (
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{
			name:    "lowercase pdf",
			input:   "pdf",
			want:    FormatPDF,
			wantErr: false,
		},
		{
			name:    "uppercase PDF",
			input:   "PDF",
			want:    FormatPDF,
			wantErr: false,
		},
		{
			name:    "mixed case Pdf",
			input:   "Pdf",
			want:    FormatPDF,
			wantErr: false,
		},
		{
			name:    "png with surrounding whitespace",
			input:   " png ",
			want:    FormatPNG,
			wantErr: false,
		},
		{
			name:    "lowercase jpg",
			input:   "jpg",
			want:    FormatJPG,
			wantErr: false,
		},
		{
			name:    "uppercase JPG",
			input:   "JPG",
			want:    FormatJPG,
			wantErr: false,
		},
		{
			name:    "unsupported gif",
			input:   "gif",
			want:    "",
			wantErr: true,
		},
		{
			name:    "unsupported jpeg spelling",
			input:   "jpeg",
			want:    "",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			want:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseFormat() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatWireAndExt(t *testing.T) {
	tests := []struct {
		format   Format
		wantWire string
		wantExt  string
	}{
		{FormatPDF, "PDF", "pdf"},
		{FormatPNG, "PNG", "png"},
		{FormatJPG, "JPG", "jpg"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			if got := tt.format.Wire(); got != tt.wantWire {
				t.Errorf("Wire() = %v, want %v", got, tt.wantWire)
			}
			if got := tt.format.Ext(); got != tt.wantExt {
				t.Errorf("Ext() = %v, want %v", got, tt.wantExt)
			}
		})
	}
}
