package compliance

import (
	"regexp"
	"sort"
	"strings"
)

// Example is a worked example or illustration block from a guidance
// document.
type Example struct {
	ExampleText    string `json:"example_text"`
	ExampleType    string `json:"example_type"`
	SourceDocument string `json:"source_document"`
	Relevance      string `json:"relevance"`
}

const (
	maxExamples       = 15
	minExampleLength  = 50
	maxExampleLength  = 1000
	exampleDedupWidth = 100
)

// Paragraph-shaped blocks introduced by example, figure, or deployment
// language, running to the next blank line.
var exampleBlockPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:example|for example|use case|case study|scenario)[\s\S]*?(?:\n\n|\n\s*\n)`),
	regexp.MustCompile(`(?i)(?:figure|table|diagram)\s*\d+[\s\S]*?(?:\n\n|\n\s*\n)`),
	regexp.MustCompile(`(?i)(?:implementation|deployment|configuration)[\s\S]*?(?:\n\n|\n\s*\n)`),
}

func exampleType(lower string) string {
	switch {
	case strings.Contains(lower, "data"):
		return "Data Exchange"
	case strings.Contains(lower, "system"):
		return "System Integration"
	case strings.Contains(lower, "interface"):
		return "Interface"
	case strings.Contains(lower, "security"):
		return "Security"
	case strings.Contains(lower, "test"):
		return "Testing"
	}
	return "General"
}

// ExtractExamples pulls example blocks from guidance documents. The
// optional scenario keeps only blocks mentioning it and marks them high
// relevance. Blocks are deduped on their first exampleDedupWidth bytes,
// sorted high-relevance first, and capped at maxExamples; the returned
// total counts the deduped set.
func ExtractExamples(docs []Document, scenario string) ([]Example, int) {
	scenarioFilter := strings.ToLower(scenario)

	var collected []Example
	for _, doc := range docs {
		for _, re := range exampleBlockPatterns {
			for _, block := range re.FindAllString(doc.Text, -1) {
				trimmed := strings.TrimSpace(block)
				if len(trimmed) < minExampleLength || len(block) > maxExampleLength {
					continue
				}
				lower := strings.ToLower(block)
				if scenarioFilter != "" && !strings.Contains(lower, scenarioFilter) {
					continue
				}
				relevance := "medium"
				if scenarioFilter != "" {
					relevance = "high"
				}
				collected = append(collected, Example{
					ExampleText:    trimmed,
					ExampleType:    exampleType(lower),
					SourceDocument: doc.Name,
					Relevance:      relevance,
				})
			}
		}
	}

	seen := make(map[string]struct{}, len(collected))
	var unique []Example
	for _, ex := range collected {
		key := ex.ExampleText
		if len(key) > exampleDedupWidth {
			key = key[:exampleDedupWidth]
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, ex)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Relevance == "high" && unique[j].Relevance != "high"
	})
	total := len(unique)
	if len(unique) > maxExamples {
		unique = unique[:maxExamples]
	}
	return unique, total
}
