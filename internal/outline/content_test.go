package outline

import (
	"testing"

	"github.com/docstrata/strata-mcp/models"
)

func TestBindContent(t *testing.T) {
	child := &models.Section{Title: "Background", PageStart: 2, PageEnd: 2}
	bounded := &models.Section{
		Title:       "Introduction",
		PageStart:   1,
		PageEnd:     3,
		Subsections: []*models.Section{child},
	}
	open := &models.Section{Title: "Methods", PageStart: 4}

	BindContent([]*models.Section{bounded, open})

	want := "[Content from page 1]\n[Content from page 2]\n[Content from page 3]"
	if bounded.TextContent != want {
		t.Errorf("Expected %q, got %q", want, bounded.TextContent)
	}
	if child.TextContent != "[Content from page 2]" {
		t.Errorf("Expected single page placeholder, got %q", child.TextContent)
	}
	if open.TextContent != "[Content starting from page 4]" {
		t.Errorf("Expected open-ended placeholder, got %q", open.TextContent)
	}
}
