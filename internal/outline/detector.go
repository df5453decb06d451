package outline

import (
	"math"
	"strings"
	"unicode"

	"github.com/docstrata/strata-mcp/models"
)

// MinHeaderFontSize is the font size above which a span counts as large.
// One threshold is used for every header heuristic in the repository.
const MinHeaderFontSize = 12.0

// HeaderSignals are the formatting facts confidence scoring works from.
// Kept separate from Span so the scoring stays a pure function that tests
// can drive without any PDF decoding.
type HeaderSignals struct {
	Text     string
	FontSize float64
	Bold     bool
	Italic   bool
}

// DetectHeaders scans formatting spans for probable headers. A span
// qualifies when its trimmed text is longer than 3 characters and it is
// either bold and large, or larger than 16pt outright.
func DetectHeaders(spans []models.Span) []models.HeaderCandidate {
	var candidates []models.HeaderCandidate
	for _, span := range spans {
		text := strings.TrimSpace(span.Text)
		if len(text) <= 3 {
			continue
		}
		large := span.FontSize > MinHeaderFontSize
		if !(span.Bold && large) && span.FontSize <= 16 {
			continue
		}
		candidates = append(candidates, models.HeaderCandidate{
			Text:     text,
			Page:     span.Page,
			FontSize: span.FontSize,
			Bold:     span.Bold,
			Italic:   span.Italic,
			BBox:     span.BBox,
			HasBBox:  span.HasBBox,
			Confidence: HeaderConfidence(HeaderSignals{
				Text:     text,
				FontSize: span.FontSize,
				Bold:     span.Bold,
				Italic:   span.Italic,
			}),
			Source: models.SourceFormatting,
		})
	}
	return candidates
}

// HeaderConfidence scores how header-like a piece of text is, in [0, 1].
// Weighted signals: font size, boldness, leading section number, structural
// keywords, title-like length, and casing.
func HeaderConfidence(sig HeaderSignals) float64 {
	score := 0.0

	switch {
	case sig.FontSize > 16:
		score += 0.4
	case sig.FontSize > 14:
		score += 0.3
	case sig.FontSize > 12:
		score += 0.2
	}

	if sig.Bold {
		score += 0.3
	}

	if leadNumeric.MatchString(sig.Text) {
		score += 0.2
	}

	lower := strings.ToLower(sig.Text)
	if strings.Contains(lower, "chapter") ||
		strings.Contains(lower, "section") ||
		strings.Contains(lower, "appendix") {
		score += 0.1
	}

	if len(strings.Fields(sig.Text)) <= 8 && len(sig.Text) > 5 {
		score += 0.1
	}

	if isUpper(sig.Text) {
		score += 0.1
	} else if isTitleCase(sig.Text) {
		score += 0.05
	}

	return math.Min(score, 1.0)
}

// isUpper reports whether s contains at least one cased rune and no
// lowercase runes.
func isUpper(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}

// isTitleCase reports whether every cased run in s starts uppercase and
// continues lowercase.
func isTitleCase(s string) bool {
	hasCased := false
	prevCased := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				return false
			}
			prevCased = true
			hasCased = true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
			hasCased = true
		default:
			prevCased = false
		}
	}
	return hasCased
}
