package compliance

import (
	"regexp"
	"sort"
	"strings"
)

// ChecklistItem is one actionable entry pulled from a guidance document.
type ChecklistItem struct {
	Item           string `json:"item"`
	Category       string `json:"category"`
	Priority       string `json:"priority"`
	SourceDocument string `json:"source_document"`
}

const (
	maxChecklistItems = 30
	maxChecklistBlock = 1000
	minChecklistItem  = 10
)

// Blocks that look like lists: a lead-in word followed by bulleted or
// numbered lines, or a modal sentence ending in verification language.
var (
	checklistBlockPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:checklist|check list|verification|validation)[\s\S]*?(?:\n\s*[-•*]\s*[^\n]+)+`),
		regexp.MustCompile(`(?i)(?:requirements|criteria|steps)[\s\S]*?(?:\n\s*\d+\.\s*[^\n]+)+`),
		regexp.MustCompile(`(?i)(?:must|shall|should)[\s\S]*?(?:verify|validate|ensure|confirm)`),
	}

	bulletItem   = regexp.MustCompile(`[-•*]\s*([^\n]+)`)
	numberedItem = regexp.MustCompile(`\d+\.\s*([^\n]+)`)
)

func checklistCategory(lower string) string {
	switch {
	case containsAny(lower, "security", "encrypt", "authentication"):
		return "Security"
	case containsAny(lower, "interface", "protocol", "interoperability"):
		return "Interoperability"
	case containsAny(lower, "data", "information", "metadata"):
		return "Data Management"
	case containsAny(lower, "test", "validation", "verification"):
		return "Testing"
	}
	return "General"
}

// BuildChecklist extracts checklist items from guidance documents. The
// optional systemType keeps only items mentioning it. Items are deduped,
// sorted by priority then category, and returned both as a flat list
// capped at maxChecklistItems and grouped by category without the cap;
// the returned total counts the deduped set.
func BuildChecklist(docs []Document, systemType string) ([]ChecklistItem, map[string][]ChecklistItem, int) {
	typeFilter := strings.ToLower(systemType)

	var collected []ChecklistItem
	for _, doc := range docs {
		for _, re := range checklistBlockPatterns {
			for _, block := range re.FindAllString(doc.Text, -1) {
				if len(block) > maxChecklistBlock {
					continue
				}
				entries := bulletItem.FindAllStringSubmatch(block, -1)
				if len(entries) == 0 {
					entries = numberedItem.FindAllStringSubmatch(block, -1)
				}
				for _, entry := range entries {
					item := strings.TrimSpace(entry[1])
					if len(item) <= minChecklistItem {
						continue
					}
					lower := strings.ToLower(item)
					if typeFilter != "" && !strings.Contains(lower, typeFilter) {
						continue
					}
					priority := "medium"
					if containsAny(lower, "must", "shall", "critical") {
						priority = "high"
					}
					collected = append(collected, ChecklistItem{
						Item:           item,
						Category:       checklistCategory(lower),
						Priority:       priority,
						SourceDocument: doc.Name,
					})
				}
			}
		}
	}

	seen := make(map[string]struct{}, len(collected))
	var unique []ChecklistItem
	for _, item := range collected {
		if _, dup := seen[item.Item]; dup {
			continue
		}
		seen[item.Item] = struct{}{}
		unique = append(unique, item)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		if unique[i].Priority != unique[j].Priority {
			return unique[i].Priority == "high"
		}
		return unique[i].Category < unique[j].Category
	})

	byCategory := make(map[string][]ChecklistItem)
	for _, item := range unique {
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}

	total := len(unique)
	if len(unique) > maxChecklistItems {
		unique = unique[:maxChecklistItems]
	}
	return unique, byCategory, total
}
