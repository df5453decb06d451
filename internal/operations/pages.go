package operations

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePageRange parses a page range of the form "N" or "N-M" into an
// inclusive 1-based start and end. An empty range selects the whole
// document: start 1, end 0 (through the last page). Anything else is a
// format error; bounds checking is left to the extraction call.
func ParsePageRange(pageRange string) (start, end int, err error) {
	if pageRange == "" {
		return 1, 0, nil
	}
	if strings.Contains(pageRange, "-") {
		parts := strings.Split(pageRange, "-")
		if len(parts) != 2 {
			return 0, 0, fmt.Errorf("invalid page range format: %s", pageRange)
		}
		start, err = strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid page range format: %s", pageRange)
		}
		end, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid page range format: %s", pageRange)
		}
		return start, end, nil
	}
	page, err := strconv.Atoi(strings.TrimSpace(pageRange))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid page range format: %s", pageRange)
	}
	return page, page, nil
}
