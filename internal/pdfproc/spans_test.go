package pdfproc

import "testing"

func TestFontStyles(t *testing.T) {
	tests := []struct {
		font       string
		wantBold   bool
		wantItalic bool
	}{
		{"Helvetica-Bold", true, false},
		{"Arial-Black", true, false},
		{"Times-Italic", false, true},
		{"Courier-Oblique", false, true},
		{"Helvetica-BoldOblique", true, true},
		{"ABCDEF+TimesNewRoman-BoldItalic", true, true},
		{"ABCDEF+CMR10", false, false},
		{"helvetica-bold", true, false},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.font, func(t *testing.T) {
			bold, italic := fontStyles(tt.font)
			if bold != tt.wantBold {
				t.Errorf("fontStyles(%q) bold = %v, want %v", tt.font, bold, tt.wantBold)
			}
			if italic != tt.wantItalic {
				t.Errorf("fontStyles(%q) italic = %v, want %v", tt.font, italic, tt.wantItalic)
			}
		})
	}
}
