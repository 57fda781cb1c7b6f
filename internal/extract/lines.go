package extract

import "strings"

// BuildLines converts raw extracted text into the line sequence every
// downstream stage shares: trimmed, non-empty lines in original order.
// Blank lines are dropped here and never re-introduced.
func BuildLines(content string) []string {
	if content == "" {
		return nil
	}

	// Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	raw := strings.Split(content, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	return lines
}

// IsPageMarker reports whether a line is a page-boundary marker emitted by
// the PDF extractor.
func IsPageMarker(line string) bool {
	return strings.HasPrefix(line, "--- PAGE ") && strings.HasSuffix(line, " ---")
}
