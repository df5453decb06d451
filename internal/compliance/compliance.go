// Package compliance extracts rules, requirements, checklists, and worked
// examples from Meridian document text, and validates claims against them.
// Extraction is pattern based over flattened text and never consults
// document structure. Callers choose which documents feed each routine:
// rule extraction and claim validation read Technical Standard volumes,
// checklists and examples read Guidance volumes.
package compliance

import "strings"

// A Document pairs a source filename with its extracted text.
type Document struct {
	Name string
	Text string
}

// IsStandard reports whether a filename names a Technical Standard volume,
// excluding its Guidance companion.
func IsStandard(name string) bool {
	return strings.Contains(name, "Technical_Standard") && !strings.Contains(name, "Guidance")
}

// IsStandardFamily reports whether a filename belongs to the Technical
// Standard family, Guidance volumes included.
func IsStandardFamily(name string) bool {
	return strings.Contains(name, "Technical_Standard")
}

// IsGuidance reports whether a filename names a Guidance volume.
func IsGuidance(name string) bool {
	return strings.Contains(name, "Guidance")
}

func containsAny(haystack string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
