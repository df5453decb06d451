package operations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentType(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"guidance wins over plain standard", "Meridian_Technical_Standard_Guidance_V1.pdf", "Technical Standard Guidance"},
		{"standard", "Meridian_Technical_Standard_V1.pdf", "Technical Standard"},
		{"version description document", "Meridian_VDD_V2.1_20230901.pdf", "VDD (Version Description Document)"},
		{"unrecognized", "Quarterly_Report.pdf", "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DocumentType(tt.filename))
		})
	}
}

func TestDocumentVersion(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"single component", "Meridian_Technical_Standard_V1.pdf", "1"},
		{"dotted version", "Meridian_VDD_V2.1_20230901.pdf", "2.1"},
		{"deep version", "Spec_V10.2.3.pdf", "10.2.3"},
		{"letters after V do not match", "Meridian_VDD.pdf", "Unknown"},
		{"no version", "report.pdf", "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DocumentVersion(tt.filename))
		})
	}
}

func TestFilenameDate(t *testing.T) {
	assert.Equal(t, "20230901", FilenameDate("Meridian_VDD_V2.1_20230901.pdf"))
	assert.Equal(t, "", FilenameDate("Meridian_Technical_Standard_V1.pdf"))
}
