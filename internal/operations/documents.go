package operations

import (
	"regexp"
	"strings"
)

var (
	versionPattern = regexp.MustCompile(`V(\d+(?:\.\d+)*)`)
	datePattern    = regexp.MustCompile(`\d{8}`)
)

// DocumentType infers the document family from a filename. Guidance is
// checked before the plain standard so the longer marker wins.
func DocumentType(name string) string {
	switch {
	case strings.Contains(name, "Technical_Standard_Guidance"):
		return "Technical Standard Guidance"
	case strings.Contains(name, "Technical_Standard"):
		return "Technical Standard"
	case strings.Contains(name, "VDD"):
		return "VDD (Version Description Document)"
	}
	return "Unknown"
}

// DocumentVersion extracts the V-prefixed version number from a filename,
// or "Unknown" when none is present.
func DocumentVersion(name string) string {
	if m := versionPattern.FindStringSubmatch(name); m != nil {
		return m[1]
	}
	return "Unknown"
}

// FilenameDate extracts the first eight-digit date run from a filename.
// Empty when the filename carries no date.
func FilenameDate(name string) string {
	return datePattern.FindString(name)
}
