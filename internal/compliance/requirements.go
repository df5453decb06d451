package compliance

import (
	"regexp"
	"sort"
	"strings"
)

// Requirement is a query match from a standard document, kept only when
// requirement language appears near the match.
type Requirement struct {
	RequirementText string `json:"requirement_text"`
	Context         string `json:"context"`
	SourceDocument  string `json:"source_document"`
	MatchPosition   int    `json:"match_position"`
	Relevance       string `json:"relevance"`
}

const (
	maxRequirements     = 15
	requirementScanStop = 20
	requirementWindow   = 200
)

var (
	sentenceSplit = regexp.MustCompile(`[.!?]+`)

	requirementIndicators = []string{"must", "shall", "should", "will", "may", "requirement", "compliance"}
)

// SearchRequirements scans standard documents for query occurrences. Each
// hit keeps a window of surrounding text; hits whose window carries no
// requirement language are discarded, and the sentence containing the
// query becomes the requirement text. Scanning stops after
// requirementScanStop raw hits across all documents. Results are deduped
// by requirement text, sorted binding-first, and capped at
// maxRequirements; the returned total counts the deduped set.
func SearchRequirements(docs []Document, query string) ([]Requirement, int) {
	queryLower := strings.ToLower(query)

	var found []Requirement
	for _, doc := range docs {
		if len(found) >= requirementScanStop {
			break
		}
		textLower := strings.ToLower(doc.Text)
		// Windows come from the original text; positions are computed on the
		// lowered text, so fall back to it if lowering changed lengths.
		windowSrc := doc.Text
		if len(textLower) != len(windowSrc) {
			windowSrc = textLower
		}
		start := 0
		for len(found) < requirementScanStop {
			idx := strings.Index(textLower[start:], queryLower)
			if idx < 0 {
				break
			}
			pos := start + idx

			windowStart := pos - requirementWindow
			if windowStart < 0 {
				windowStart = 0
			}
			windowEnd := pos + len(queryLower) + requirementWindow
			if windowEnd > len(windowSrc) {
				windowEnd = len(windowSrc)
			}
			window := windowSrc[windowStart:windowEnd]

			if containsAny(strings.ToLower(window), requirementIndicators...) {
				var sentence string
				for _, s := range sentenceSplit.Split(window, -1) {
					if strings.Contains(strings.ToLower(s), queryLower) {
						sentence = strings.TrimSpace(s)
						break
					}
				}
				if sentence != "" {
					relevance := "medium"
					if containsAny(strings.ToLower(sentence), "must", "shall") {
						relevance = "high"
					}
					found = append(found, Requirement{
						RequirementText: sentence,
						Context:         window,
						SourceDocument:  doc.Name,
						MatchPosition:   pos,
						Relevance:       relevance,
					})
				}
			}
			start = pos + 1
		}
	}

	seen := make(map[string]struct{}, len(found))
	var unique []Requirement
	for _, req := range found {
		if _, dup := seen[req.RequirementText]; dup {
			continue
		}
		seen[req.RequirementText] = struct{}{}
		unique = append(unique, req)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Relevance == "high" && unique[j].Relevance != "high"
	})
	total := len(unique)
	if len(unique) > maxRequirements {
		unique = unique[:maxRequirements]
	}
	return unique, total
}
