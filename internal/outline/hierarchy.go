package outline

import (
	"regexp"

	"github.com/docstrata/strata-mcp/models"
)

// BuildHierarchy nests the page-ordered candidate stream into a section
// tree using a stack of open ancestors: the stack pops while its top level
// is >= the incoming level, so equal levels become siblings. Candidates the
// classifier discards contribute nothing.
func BuildHierarchy(candidates []models.HeaderCandidate) []*models.Section {
	var top []*models.Section
	var stack []*models.Section

	for _, cand := range candidates {
		section := ClassifyCandidate(cand)
		if section == nil {
			continue
		}

		for len(stack) > 0 && stack[len(stack)-1].Level >= section.Level {
			stack = stack[:len(stack)-1]
		}

		if len(stack) > 0 {
			parent := stack[len(stack)-1]
			parent.Subsections = append(parent.Subsections, section)
			section.ParentSection = parent.Title
		} else {
			top = append(top, section)
		}
		stack = append(stack, section)
	}
	return top
}

// BackfillEndPages sets every sibling's end page to its successor's start
// page minus one, recursively and independently at each nesting level.
// Siblings sharing a start page clamp to their own start so the range stays
// valid. The last sibling of each list keeps PageEnd unset, meaning
// "through end of document" to callers.
func BackfillEndPages(sections []*models.Section) {
	for i, section := range sections {
		if i < len(sections)-1 {
			end := sections[i+1].PageStart - 1
			if end < section.PageStart {
				end = section.PageStart
			}
			section.PageEnd = end
		}
		BackfillEndPages(section.Subsections)
	}
}

// CountSections returns the pre-order node count of the tree.
func CountSections(sections []*models.Section) int {
	total := len(sections)
	for _, section := range sections {
		total += CountSections(section.Subsections)
	}
	return total
}

// MaxDepth returns 0 for an empty tree, otherwise the longest root-to-leaf
// chain length: a flat list is depth 1.
func MaxDepth(sections []*models.Section) int {
	if len(sections) == 0 {
		return 0
	}
	depth := 1
	for _, section := range sections {
		if len(section.Subsections) > 0 {
			if d := 1 + MaxDepth(section.Subsections); d > depth {
				depth = d
			}
		}
	}
	return depth
}

// Leading-token patterns for numbering scheme detection. The alphabetic
// pattern also claims single-letter romans, mirroring the classifier order.
var (
	leadNumeric    = regexp.MustCompile(`^\d+(?:\.\d+)*\.`)
	leadAlphabetic = regexp.MustCompile(`^[A-Z](?:\.\d+)*\.`)
	leadRoman      = regexp.MustCompile(`^[IVX]+\.`)
)

// schemeOrder fixes the tie-break: earlier schemes win equal counts.
var schemeOrder = []string{"numeric", "alphabetic", "roman", "mixed"}

// DetectNumberingScheme reports the dominant numbering style among the
// merged header texts, before any confidence filtering. Empty input
// reports "numeric".
func DetectNumberingScheme(candidates []models.HeaderCandidate) string {
	counts := make(map[string]int, len(schemeOrder))
	for _, cand := range candidates {
		switch {
		case leadNumeric.MatchString(cand.Text):
			counts["numeric"]++
		case leadAlphabetic.MatchString(cand.Text):
			counts["alphabetic"]++
		case leadRoman.MatchString(cand.Text):
			counts["roman"]++
		default:
			counts["mixed"]++
		}
	}

	best := schemeOrder[0]
	for _, scheme := range schemeOrder[1:] {
		if counts[scheme] > counts[best] {
			best = scheme
		}
	}
	return best
}
