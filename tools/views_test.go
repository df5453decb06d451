package tools

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docstrata/strata-mcp/models"
)

func TestSectionViewTruncatesText(t *testing.T) {
	section := &models.Section{
		Title:       "Data Exchange",
		Type:        models.SectionTypeSection,
		Level:       1,
		PageStart:   4,
		PageEnd:     9,
		TextContent: strings.Repeat("x", 600),
		Subsections: []*models.Section{
			{
				Title:       "Message Formats",
				Type:        models.SectionTypeSubsection,
				Level:       2,
				PageStart:   5,
				TextContent: "short",
			},
		},
	}

	view := sectionView(section)

	assert.Equal(t, "Data Exchange", view.Title)
	assert.Equal(t, "section", view.SectionType)
	assert.Len(t, view.TextContent, 503)
	assert.True(t, strings.HasSuffix(view.TextContent, "..."))
	require.Len(t, view.Subsections, 1)
	assert.Equal(t, "short", view.Subsections[0].TextContent)
}

func TestSectionViewKeepsTextAtLimit(t *testing.T) {
	section := &models.Section{Title: "A", TextContent: strings.Repeat("y", 500)}

	view := sectionView(section)

	assert.Len(t, view.TextContent, 500)
	assert.False(t, strings.HasSuffix(view.TextContent, "..."))
}

func TestOutlineItemOmitsText(t *testing.T) {
	section := &models.Section{
		Title:         "Appendix A",
		Type:          models.SectionTypeAppendix,
		Level:         1,
		PageStart:     30,
		PageEnd:       34,
		SectionNumber: "A",
		TextContent:   "body text that must not appear",
		Subsections: []*models.Section{
			{Title: "A.1", Type: models.SectionTypeSection, Level: 2, PageStart: 31},
		},
	}

	item := outlineItem(section)

	assert.Equal(t, "Appendix A", item.Title)
	assert.Equal(t, "appendix", item.SectionType)
	assert.Equal(t, "A", item.SectionNumber)
	require.Len(t, item.Subsections, 1)
	assert.Equal(t, "A.1", item.Subsections[0].Title)
}

func TestPageEstimate(t *testing.T) {
	pages := []models.PageMetadata{
		{PageNumber: 1, TextLength: 100},
		{PageNumber: 2, TextLength: 100},
		{PageNumber: 3, TextLength: 100},
	}

	tests := []struct {
		name string
		pos  int
		want int
	}{
		{"start of first page", 0, 1},
		{"end of first page", 99, 1},
		{"start of second page", 100, 2},
		{"middle of third page", 250, 3},
		{"past the end clamps to page count", 1000, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pageEstimate(tt.pos, pages, 3))
		})
	}
}
