package pdfproc

import (
	"strconv"
	"strings"
	"time"
)

// ParsePDFDate converts a PDF date string into a time.Time. PDF dates have
// the form D:YYYYMMDDHHmmSSOHH'mm' where O is the offset sign, but files in
// the wild carry truncated and mangled variants, so shorter forms are
// accepted and a cleaned ISO reading is tried last. Returns nil when the
// string cannot be interpreted.
func ParsePDFDate(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	s = strings.TrimPrefix(s, "D:")

	if len(s) >= 14 {
		if t, ok := parseFullTimestamp(s); ok {
			return &t
		}
	} else if len(s) == 8 {
		if t, err := time.Parse("20060102", s); err == nil {
			return &t
		}
	}

	if t, ok := parseCleanedISO(s); ok {
		return &t
	}
	return nil
}

// parseFullTimestamp reads YYYYMMDDHHmmSS plus an optional +HH'mm' offset.
// The offset sign applies to both the hour and minute parts.
func parseFullTimestamp(s string) (time.Time, bool) {
	t, err := time.Parse("20060102150405", s[:14])
	if err != nil {
		return time.Time{}, false
	}

	rest := s[14:]
	if len(rest) >= 6 && (rest[0] == '+' || rest[0] == '-') {
		hours, errH := strconv.Atoi(rest[1:3])
		mins, errM := strconv.Atoi(rest[4:6])
		if errH == nil && errM == nil {
			offset := hours*3600 + mins*60
			if rest[0] == '-' {
				offset = -offset
			}
			t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.FixedZone("", offset))
		}
	}
	return t, true
}

// parseCleanedISO strips quote artifacts, rebuilds the string as RFC 3339,
// and retries. Salvages dates like 20240101120000+05'00' with stray
// separators that the strict path rejected.
func parseCleanedISO(s string) (time.Time, bool) {
	cleaned := strings.ReplaceAll(s, "'", "")
	cleaned = strings.ReplaceAll(cleaned, "Z", "+00:00")
	if len(cleaned) < 14 {
		return time.Time{}, false
	}

	iso := cleaned[0:4] + "-" + cleaned[4:6] + "-" + cleaned[6:8] +
		"T" + cleaned[8:10] + ":" + cleaned[10:12] + ":" + cleaned[12:14]
	layout := "2006-01-02T15:04:05"
	if rest := cleaned[14:]; len(rest) >= 5 && (rest[0] == '+' || rest[0] == '-') {
		iso += rest[0:3] + ":" + rest[3:5]
		layout = "2006-01-02T15:04:05-07:00"
	}

	t, err := time.Parse(layout, iso)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
