package fields

import (
	"regexp"
	"strings"
)

var (
	monthYearPattern = regexp.MustCompile(`\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4}\b`)
	yearPattern      = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

	// Explicit range shapes: "X - Y", "X to Y", with "Present" accepted as
	// the open end.
	dateRangePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\w+\s+\d{4})\s*[-–—]\s*(\w+\s+\d{4}|Present)`),
		regexp.MustCompile(`(\d{4})\s*[-–—]\s*(\d{4}|Present)`),
		regexp.MustCompile(`(\w+\s+\d{4})\s+to\s+(\w+\s+\d{4}|Present)`),
	}
)

// DateRange is a structured start/end pair. End is "Present" for open ranges.
type DateRange struct {
	Start string
	End   string
}

// ExtractDates collects "Month Year" tokens and bare 4-digit years from text
// as a deduplicated set. The result is unordered; callers must not depend on
// its order.
func ExtractDates(text string) []string {
	seen := make(map[string]bool)
	dates := make([]string, 0)

	for _, m := range monthYearPattern.FindAllString(text, -1) {
		if !seen[m] {
			seen[m] = true
			dates = append(dates, m)
		}
	}
	for _, m := range yearPattern.FindAllString(text, -1) {
		if !seen[m] {
			seen[m] = true
			dates = append(dates, m)
		}
	}

	return dates
}

// ExtractDateRanges collects structured date-range pairs. Patterns are tried
// in declaration order and a text span claimed by an earlier pattern is not
// re-matched by a later one, so "Jan 2020 - Present" yields a single range.
func ExtractDateRanges(text string) []DateRange {
	var ranges []DateRange
	var claimed [][2]int

	overlaps := func(start, end int) bool {
		for _, span := range claimed {
			if start < span[1] && end > span[0] {
				return true
			}
		}
		return false
	}

	for _, pattern := range dateRangePatterns {
		for _, m := range pattern.FindAllStringSubmatchIndex(text, -1) {
			if overlaps(m[0], m[1]) {
				continue
			}
			claimed = append(claimed, [2]int{m[0], m[1]})
			ranges = append(ranges, DateRange{
				Start: text[m[2]:m[3]],
				End:   text[m[4]:m[5]],
			})
		}
	}

	return ranges
}

// MatchesDateRange reports whether a line contains a date-range shape.
func MatchesDateRange(line string) bool {
	for _, pattern := range dateRangePatterns {
		if pattern.MatchString(line) {
			return true
		}
	}
	// A lone month-year token also marks a date line for the entry scanners.
	return monthYearPattern.MatchString(line) && !strings.Contains(line, "@")
}
