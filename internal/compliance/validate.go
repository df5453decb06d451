package compliance

import (
	"regexp"
	"strings"
)

// Evidence is a standard-document sentence that ties a claim term to
// binding requirement language.
type Evidence struct {
	Requirement    string `json:"requirement"`
	SourceDocument string `json:"source_document"`
	Relevance      string `json:"relevance"`
}

// Validation is the outcome of checking a claim against the standards.
type Validation struct {
	Verdict    string     `json:"validation_result"`
	Evidence   []Evidence `json:"supporting_evidence"`
	Issues     []string   `json:"potential_issues"`
	Confidence string     `json:"confidence"`
}

const (
	maxEvidence       = 10
	minEvidenceLength = 20
)

var (
	claimWord = regexp.MustCompile(`\b[a-z]{4,}\b`)

	claimStopwords = map[string]struct{}{
		"with": {}, "that": {}, "this": {}, "from": {}, "have": {},
		"will": {}, "been": {}, "they": {}, "them": {},
	}

	complianceIndicators = []string{"compliant", "compliance", "meets", "satisfies", "conforms", "adheres"}
)

// keyTerms pulls the distinctive words out of a claim: lowercase runs of
// four or more letters, minus a short stopword list. Repeated words are
// kept so a repeated term weighs its evidence accordingly.
func keyTerms(claim string) []string {
	var terms []string
	for _, word := range claimWord.FindAllString(strings.ToLower(claim), -1) {
		if _, skip := claimStopwords[word]; skip {
			continue
		}
		terms = append(terms, word)
	}
	return terms
}

// ValidateClaim checks a compliance claim against standard documents.
// Sentences carrying both a claim term and binding language become
// evidence. Issues are recorded when the claim never states compliance or
// when no evidence exists; the verdict follows from which of the two sets
// is populated. Evidence is capped at maxEvidence after the confidence
// call, so a rich match still reads as high confidence.
func ValidateClaim(docs []Document, claim string) Validation {
	terms := keyTerms(claim)

	var evidence []Evidence
	for _, doc := range docs {
		sentences := sentenceSplit.Split(doc.Text, -1)
		for _, term := range terms {
			for _, sentence := range sentences {
				lower := strings.ToLower(sentence)
				if !strings.Contains(lower, term) {
					continue
				}
				if !containsAny(lower, "must", "shall", "should") {
					continue
				}
				trimmed := strings.TrimSpace(sentence)
				if len(trimmed) <= minEvidenceLength {
					continue
				}
				evidence = append(evidence, Evidence{
					Requirement:    trimmed,
					SourceDocument: doc.Name,
					Relevance:      "high",
				})
			}
		}
	}

	var issues []string
	if !containsAny(strings.ToLower(claim), complianceIndicators...) {
		issues = append(issues, "Claim does not explicitly state compliance")
	}
	if len(evidence) == 0 {
		issues = append(issues, "No supporting evidence found in Meridian documents")
	}

	verdict := "unclear"
	switch {
	case len(evidence) > 0 && len(issues) == 0:
		verdict = "supported"
	case len(evidence) > 0:
		verdict = "partially_supported"
	case len(issues) > 0:
		verdict = "unsupported"
	}

	confidence := "medium"
	if len(evidence) > 3 {
		confidence = "high"
	}
	if len(evidence) > maxEvidence {
		evidence = evidence[:maxEvidence]
	}

	return Validation{
		Verdict:    verdict,
		Evidence:   evidence,
		Issues:     issues,
		Confidence: confidence,
	}
}
