package outline

import (
	"testing"

	"github.com/docstrata/strata-mcp/models"
)

func TestExtractSectionNumber(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantNumber string
		wantTitle  string
		wantLevel  int
	}{
		{"single numeric", "1. Introduction", "1", "Introduction", 1},
		{"two part numeric without period", "1.1 Background", "1.1", "Background", 2},
		{"two part numeric with period", "1.2. Background", "1.2", "Background", 2},
		{"three part numeric", "2.3.1. Experimental Design", "2.3.1", "Experimental Design", 3},
		{"three part numeric without period", "2.3.1 Data", "2.3.1", "Data", 3},
		{"numeric without space", "1.Introduction", "1", "Introduction", 1},
		{"alphabetic", "A. Scope", "A", "Scope", 1},
		{"alphabetic with numeric tail", "A.1. Detailed Scope", "A.1", "Detailed Scope", 2},
		{"single letter roman parses as alphabetic", "I. Preamble", "I", "Preamble", 1},
		{"multi letter roman", "II. History", "II", "History", 1},
		{"roman", "IV. Results", "IV", "Results", 1},
		{"bullet", "• Bullet point item", "", "Bullet point item", 1},
		{"dash", "- Dashed item", "", "Dashed item", 1},
		{"star", "* Starred item", "", "Starred item", 1},
		{"appendix with dash", "Appendix B - Data Tables", "Appendix B", "Data Tables", 1},
		{"appendix with colon", "Appendix C: Source Listings", "Appendix C", "Source Listings", 1},
		{"chapter with dash", "Chapter 3 - Implementation", "Chapter 3", "Implementation", 1},
		{"chapter with colon", "Chapter 12: Planning", "Chapter 12", "Planning", 1},
		{"unmatched", "Overview", "", "Overview", 1},
		{"bare number is not a section number", "1000 Islands", "", "1000 Islands", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			number, title, level := ExtractSectionNumber(tt.text)
			if number != tt.wantNumber {
				t.Errorf("Expected number %q, got %q", tt.wantNumber, number)
			}
			if title != tt.wantTitle {
				t.Errorf("Expected title %q, got %q", tt.wantTitle, title)
			}
			if level != tt.wantLevel {
				t.Errorf("Expected level %d, got %d", tt.wantLevel, level)
			}
		})
	}
}

func TestNumericLevelEqualsDotGroups(t *testing.T) {
	tests := []struct {
		text      string
		wantLevel int
	}{
		{"4. Deployment", 1},
		{"2.3 Operations", 2},
		{"2.3.1 Data Handling", 3},
		{"10.2.3.4. Deep Nesting", 4},
	}

	for _, tt := range tests {
		if _, _, level := ExtractSectionNumber(tt.text); level != tt.wantLevel {
			t.Errorf("%q: expected level %d, got %d", tt.text, tt.wantLevel, level)
		}
	}
}

func TestClassifySectionType(t *testing.T) {
	tests := []struct {
		title string
		want  models.SectionType
	}{
		{"Document Title", models.SectionTypeTitle},
		{"Executive Summary", models.SectionTypeTitle},
		{"Abstract", models.SectionTypeTitle},
		{"Chapter 5", models.SectionTypeChapter},
		{"Appendix A", models.SectionTypeAppendix},
		{"Technical Annex B", models.SectionTypeAppendix},
		{"References", models.SectionTypeReference},
		{"Selected Bibliography", models.SectionTypeReference},
		{"Glossary of Terms", models.SectionTypeGlossary},
		{"Definitions", models.SectionTypeGlossary},
		{"Subject Index", models.SectionTypeIndex},
		{"Methodology", models.SectionTypeSection},
		{"Chapter Title Conventions", models.SectionTypeTitle},
	}

	for _, tt := range tests {
		if got := ClassifySectionType(tt.title); got != tt.want {
			t.Errorf("ClassifySectionType(%q): expected %q, got %q", tt.title, tt.want, got)
		}
	}
}

func TestClassifyCandidate(t *testing.T) {
	t.Run("maps candidate fields onto the section", func(t *testing.T) {
		cand := models.HeaderCandidate{Text: "1.2 Background", Page: 4, Confidence: 0.9}

		section := ClassifyCandidate(cand)
		if section == nil {
			t.Fatal("Expected a section, got nil")
		}
		if section.Title != "Background" {
			t.Errorf("Expected title Background, got %q", section.Title)
		}
		if section.Type != models.SectionTypeSection {
			t.Errorf("Expected section type, got %q", section.Type)
		}
		if section.Level != 2 {
			t.Errorf("Expected level 2, got %d", section.Level)
		}
		if section.PageStart != 4 {
			t.Errorf("Expected page start 4, got %d", section.PageStart)
		}
		if section.SectionNumber != "1.2" {
			t.Errorf("Expected section number 1.2, got %q", section.SectionNumber)
		}
		if section.PageEnd != 0 {
			t.Errorf("Expected unset end page, got %d", section.PageEnd)
		}
	})

	t.Run("keeps a candidate exactly at the confidence floor", func(t *testing.T) {
		cand := models.HeaderCandidate{Text: "Borderline Heading", Page: 1, Confidence: 0.3}
		if ClassifyCandidate(cand) == nil {
			t.Error("Expected candidate at confidence 0.3 to be kept")
		}
	})

	t.Run("discards below the confidence floor", func(t *testing.T) {
		cand := models.HeaderCandidate{Text: "Faint Heading", Page: 1, Confidence: 0.29}
		if got := ClassifyCandidate(cand); got != nil {
			t.Errorf("Expected nil, got %+v", got)
		}
	})

	t.Run("discards empty text", func(t *testing.T) {
		cand := models.HeaderCandidate{Text: "   ", Page: 1, Confidence: 0.9}
		if got := ClassifyCandidate(cand); got != nil {
			t.Errorf("Expected nil, got %+v", got)
		}
	})
}
