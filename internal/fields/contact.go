// Package fields provides the independent extraction strategies that run over
// a resume's line sequence or a single labeled section. Every extractor is a
// pure function: it never fails, it returns empty results when nothing
// matches, and it never observes another extractor's output.
package fields

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Phone shapes tried in priority order; the first pattern with any match
	// wins.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\(\d{3}\)\s*\d{3}-\d{4}`),
		regexp.MustCompile(`\d{3}-\d{3}-\d{4}`),
		regexp.MustCompile(`\d{3}\.\d{3}\.\d{4}`),
		regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	}

	linkedinPattern = regexp.MustCompile(`linkedin\.com/in/[A-Za-z0-9-]+`)
	githubPattern   = regexp.MustCompile(`github\.com/[A-Za-z0-9-]+`)
	websitePattern  = regexp.MustCompile(`https?://[^\s]+`)

	// namePattern accepts 1-4 capitalized words, optionally with a middle
	// initial, e.g. "John Smith" or "John A. Smith".
	namePattern = regexp.MustCompile(`^([A-Z][a-z]+(?:\s+(?:[A-Z]\.|[A-Z][a-z]+)){0,3})$`)
)

// headLines is how far into the document the name and email scans look.
const headLines = 10

// Contact holds the contact fields recovered by pattern extraction. Empty
// fields mean the pattern found nothing.
type Contact struct {
	Name     string
	Email    string
	Phone    string
	LinkedIn string
	GitHub   string
	Website  string
}

// ExtractContact scans the line sequence for contact details. The name is
// taken from the first of the opening lines that matches a capitalized
// 1-4-word shape; the email from the first standard address in the first ten
// lines; the phone from a fixed priority order of number shapes anywhere in
// the document.
func ExtractContact(lines []string) Contact {
	var c Contact

	head := lines
	if len(head) > headLines {
		head = head[:headLines]
	}

	for _, line := range head {
		if c.Name == "" {
			if m := namePattern.FindString(line); m != "" {
				c.Name = m
			}
		}
		if c.Email == "" {
			if m := emailPattern.FindString(line); m != "" {
				c.Email = m
			}
		}
	}

	text := strings.Join(lines, "\n")

	for _, pattern := range phonePatterns {
		if m := pattern.FindString(text); m != "" {
			c.Phone = m
			break
		}
	}

	c.LinkedIn = linkedinPattern.FindString(text)
	c.GitHub = githubPattern.FindString(text)
	c.Website = websitePattern.FindString(text)

	return c
}

// FallbackName is the looser name heuristic used when the shape-gated scan
// found nothing: the first of the opening five lines whose words all start
// with an uppercase letter, at most four words long.
func FallbackName(lines []string) string {
	limit := 5
	if len(lines) < limit {
		limit = len(lines)
	}

	for _, line := range lines[:limit] {
		words := strings.Fields(line)
		if len(words) == 0 || len(words) > 4 {
			continue
		}
		allUpper := true
		for _, word := range words {
			r := rune(word[0])
			if r < 'A' || r > 'Z' {
				allUpper = false
				break
			}
		}
		if allUpper {
			return line
		}
	}
	return ""
}

// FallbackEmail matches the email pattern anywhere in the document.
func FallbackEmail(text string) string {
	return emailPattern.FindString(text)
}
