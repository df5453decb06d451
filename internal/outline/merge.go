package outline

import (
	"sort"
	"strings"

	"github.com/docstrata/strata-mcp/models"
)

const (
	// bookmarkConfidence is the fixed score for bookmark-sourced candidates.
	bookmarkConfidence = 0.8

	// similarityThreshold is the word-set Jaccard score above which two
	// same-page candidates count as one header.
	similarityThreshold = 0.8
)

// BookmarkCandidates converts embedded bookmark entries into header
// candidates. Bookmarks carry no formatting, so they get nominal font
// metadata and a fixed confidence.
func BookmarkCandidates(bookmarks []models.Bookmark) []models.HeaderCandidate {
	candidates := make([]models.HeaderCandidate, 0, len(bookmarks))
	for _, bm := range bookmarks {
		candidates = append(candidates, models.HeaderCandidate{
			Text:       bm.Title,
			Page:       bm.Page,
			FontSize:   14,
			Bold:       true,
			Italic:     false,
			Confidence: bookmarkConfidence,
			Source:     models.SourceBookmark,
		})
	}
	return candidates
}

// MergeCandidates combines formatting-derived and bookmark-derived
// candidates into one page-ordered list with near-duplicates collapsed.
// When a duplicate pair is found the higher-confidence entry survives, in
// the position of the earlier one. Merging is idempotent.
func MergeCandidates(formatting, bookmarks []models.HeaderCandidate) []models.HeaderCandidate {
	all := make([]models.HeaderCandidate, 0, len(formatting)+len(bookmarks))
	for _, list := range [][]models.HeaderCandidate{formatting, bookmarks} {
		for _, cand := range list {
			if cand.Text == "" || cand.Page < 1 {
				continue
			}
			all = append(all, cand)
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Page != all[j].Page {
			return all[i].Page < all[j].Page
		}
		return verticalPos(all[i]) < verticalPos(all[j])
	})

	var unique []models.HeaderCandidate
	for _, cand := range all {
		dup := -1
		for i, kept := range unique {
			if kept.Page == cand.Page && wordJaccard(kept.Text, cand.Text) > similarityThreshold {
				dup = i
				break
			}
		}
		if dup < 0 {
			unique = append(unique, cand)
			continue
		}
		if cand.Confidence > unique[dup].Confidence {
			unique[dup] = cand
		}
	}
	return unique
}

// verticalPos orders same-page candidates top to bottom; entries without a
// bounding box sort first.
func verticalPos(cand models.HeaderCandidate) float64 {
	if !cand.HasBBox {
		return 0
	}
	return cand.BBox[1]
}

// wordJaccard computes word-set Jaccard similarity over lowercased,
// whitespace-split text. Either side empty scores 0.
func wordJaccard(a, b string) float64 {
	wordsA := wordSet(a)
	wordsB := wordSet(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	intersection := 0
	for w := range wordsA {
		if _, ok := wordsB[w]; ok {
			intersection++
		}
	}
	union := len(wordsA) + len(wordsB) - intersection
	return float64(intersection) / float64(union)
}

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[w] = struct{}{}
	}
	return set
}
