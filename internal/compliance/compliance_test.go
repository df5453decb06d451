package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentFamilyPredicates(t *testing.T) {
	tests := []struct {
		name           string
		filename       string
		standard       bool
		standardFamily bool
		guidance       bool
	}{
		{
			name:           "standard volume",
			filename:       "Meridian_Technical_Standard_V1.pdf",
			standard:       true,
			standardFamily: true,
		},
		{
			name:           "guidance volume",
			filename:       "Meridian_Technical_Standard_Guidance_V1.pdf",
			standardFamily: true,
			guidance:       true,
		},
		{
			name:     "unrelated guidance",
			filename: "Deployment_Guidance_Notes.pdf",
			guidance: true,
		},
		{
			name:     "unrelated document",
			filename: "Quarterly_Report.pdf",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.standard, IsStandard(tt.filename))
			assert.Equal(t, tt.standardFamily, IsStandardFamily(tt.filename))
			assert.Equal(t, tt.guidance, IsGuidance(tt.filename))
		})
	}
}
