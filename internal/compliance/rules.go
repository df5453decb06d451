package compliance

import (
	"regexp"
	"sort"
	"strings"
)

// Rule is one modal-verb statement lifted from a standard document.
type Rule struct {
	RuleText       string `json:"rule_text"`
	RuleType       string `json:"rule_type"`
	Context        string `json:"context"`
	SourceDocument string `json:"source_document"`
	Confidence     string `json:"confidence"`
}

const (
	maxRules      = 50
	maxRuleLength = 500
)

// Modal verbs in scan order. rulePriority drives the final sort so binding
// language outranks permissive language.
var (
	modalPatterns = []struct {
		verb string
		re   *regexp.Regexp
	}{
		{"must", regexp.MustCompile(`(?i)\bmust\b[^.!?]*[.!?]`)},
		{"shall", regexp.MustCompile(`(?i)\bshall\b[^.!?]*[.!?]`)},
		{"should", regexp.MustCompile(`(?i)\bshould\b[^.!?]*[.!?]`)},
		{"may", regexp.MustCompile(`(?i)\bmay\b[^.!?]*[.!?]`)},
		{"will", regexp.MustCompile(`(?i)\bwill\b[^.!?]*[.!?]`)},
	}

	rulePriority = map[string]int{"must": 1, "shall": 2, "should": 3, "will": 4, "may": 5}
)

// ruleContext buckets a rule sentence by its dominant subject matter.
func ruleContext(rule string) string {
	lower := strings.ToLower(rule)
	switch {
	case containsAny(lower, "security", "secure", "encrypt", "authentication"):
		return "Security"
	case containsAny(lower, "interoperability", "interface", "protocol"):
		return "Interoperability"
	case containsAny(lower, "data", "information", "metadata"):
		return "Data Management"
	case containsAny(lower, "system", "component", "architecture"):
		return "System Architecture"
	case containsAny(lower, "test", "validation", "verification"):
		return "Testing & Validation"
	}
	return "General"
}

// ExtractRules scans standard documents for modal-verb statements. Both
// filters are optional: ruleType matches a modal verb exactly, category
// matches the derived context as a case-insensitive substring. Results are
// sorted binding-first and capped at maxRules; the returned total counts
// every match before the cap.
func ExtractRules(docs []Document, category, ruleType string) ([]Rule, int) {
	categoryFilter := strings.ToLower(category)

	var rules []Rule
	for _, doc := range docs {
		for _, mp := range modalPatterns {
			if ruleType != "" && !strings.EqualFold(ruleType, mp.verb) {
				continue
			}
			for _, match := range mp.re.FindAllString(doc.Text, -1) {
				cleaned := strings.TrimSpace(match)
				if len(cleaned) > maxRuleLength {
					continue
				}
				context := ruleContext(cleaned)
				if categoryFilter != "" && !strings.Contains(strings.ToLower(context), categoryFilter) {
					continue
				}
				confidence := "medium"
				if mp.verb == "must" || mp.verb == "shall" {
					confidence = "high"
				}
				rules = append(rules, Rule{
					RuleText:       cleaned,
					RuleType:       mp.verb,
					Context:        context,
					SourceDocument: doc.Name,
					Confidence:     confidence,
				})
			}
		}
	}

	sort.SliceStable(rules, func(i, j int) bool {
		return rulePriority[rules[i].RuleType] < rulePriority[rules[j].RuleType]
	})
	total := len(rules)
	if len(rules) > maxRules {
		rules = rules[:maxRules]
	}
	return rules, total
}
