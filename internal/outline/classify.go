package outline

import (
	"regexp"
	"strings"

	"github.com/docstrata/strata-mcp/models"
)

// minSectionConfidence is the floor below which a candidate never becomes
// a section. The boundary is inclusive: exactly 0.3 is kept.
const minSectionConfidence = 0.3

// sectionPatterns are tried in order; the first match wins. The alphabetic
// pattern sits before the roman one, so "I." parses as alphabetic while
// "II." falls through to roman.
var sectionPatterns = []*regexp.Regexp{
	// Dotted numeric with two or more components; the trailing period is
	// optional, so "1.2 Background" and "1.2. Background" both match.
	regexp.MustCompile(`^(\d+(?:\.\d+)+)\.?\s+(.+)$`),
	// Numeric with a required trailing period, covering "1. Title" and
	// unspaced forms like "1.Title".
	regexp.MustCompile(`^(\d+(?:\.\d+)*)\.\s*(.+)$`),
	regexp.MustCompile(`^([A-Z](?:\.\d+)*)\.\s*(.+)$`),
	regexp.MustCompile(`^([IVX]+)\.\s*(.+)$`),
	regexp.MustCompile(`^[•\-\*]\s*(.+)$`),
	regexp.MustCompile(`^(Appendix\s+[A-Z])\s*[\-\:]\s*(.+)$`),
	regexp.MustCompile(`^(Chapter\s+\d+)\s*[\-\:]\s*(.+)$`),
}

// ExtractSectionNumber splits a header into its leading numbering token and
// clean title. The nesting level is the count of dot-separated components
// of the token ("1.2.3" gives level 3); bullets and unmatched text are
// level 1 with no token.
func ExtractSectionNumber(title string) (number, clean string, level int) {
	trimmed := strings.TrimSpace(title)
	for _, pattern := range sectionPatterns {
		m := pattern.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		if len(m) == 3 {
			number = m[1]
			clean = strings.TrimSpace(m[2])
			return number, clean, strings.Count(number, ".") + 1
		}
		// Single capture group, e.g. a bullet marker with no number.
		return "", strings.TrimSpace(m[1]), 1
	}
	return "", trimmed, 1
}

// ClassifySectionType maps a clean title onto its semantic type by ordered
// keyword matching. Generic titles are SECTION regardless of level.
func ClassifySectionType(title string) models.SectionType {
	t := strings.ToLower(strings.TrimSpace(title))
	switch {
	case strings.Contains(t, "title") ||
		strings.Contains(t, "executive summary") ||
		strings.Contains(t, "abstract"):
		return models.SectionTypeTitle
	case strings.HasPrefix(t, "chapter"):
		return models.SectionTypeChapter
	case strings.HasPrefix(t, "appendix") || strings.Contains(t, "annex"):
		return models.SectionTypeAppendix
	case strings.Contains(t, "reference") || strings.Contains(t, "bibliography"):
		return models.SectionTypeReference
	case strings.Contains(t, "glossary") || strings.Contains(t, "definition"):
		return models.SectionTypeGlossary
	case strings.Contains(t, "index"):
		return models.SectionTypeIndex
	default:
		return models.SectionTypeSection
	}
}

// ClassifyCandidate turns a merged candidate into an unplaced section.
// Candidates below the confidence floor, or empty after trimming, are
// discarded with a nil return.
func ClassifyCandidate(cand models.HeaderCandidate) *models.Section {
	text := strings.TrimSpace(cand.Text)
	if cand.Confidence < minSectionConfidence || text == "" {
		return nil
	}

	number, clean, level := ExtractSectionNumber(text)
	return &models.Section{
		Title:         clean,
		Type:          ClassifySectionType(clean),
		Level:         level,
		PageStart:     cand.Page,
		SectionNumber: number,
	}
}
