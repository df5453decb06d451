package outline

import (
	"fmt"
	"strings"

	"github.com/docstrata/strata-mcp/models"
)

// BindContent attaches page-range placeholder text to every section in the
// tree, parent before children. Exact sub-page slicing is not attempted;
// the page range is the contract callers filter on.
func BindContent(sections []*models.Section) {
	for _, section := range sections {
		section.TextContent = sectionContent(section)
		BindContent(section.Subsections)
	}
}

func sectionContent(section *models.Section) string {
	if section.PageEnd == 0 {
		return fmt.Sprintf("[Content starting from page %d]", section.PageStart)
	}

	lines := make([]string, 0, section.PageEnd-section.PageStart+1)
	for page := section.PageStart; page <= section.PageEnd; page++ {
		lines = append(lines, fmt.Sprintf("[Content from page %d]", page))
	}
	return strings.Join(lines, "\n")
}
