package fields

import "strings"

// bulletGlyphs is the fixed set of leading characters that mark a bullet
// line.
const bulletGlyphs = "•-*→▶○▪▫"

// IsBullet reports whether a line's first character is a bullet glyph.
func IsBullet(line string) bool {
	if line == "" {
		return false
	}
	for _, glyph := range bulletGlyphs {
		if strings.HasPrefix(line, string(glyph)) {
			return true
		}
	}
	return false
}

// ExtractBullets returns the bullet lines of a block in original order.
// Bullets keep their leading glyph; the source formatting is preserved
// rather than normalized.
func ExtractBullets(lines []string) []string {
	bullets := make([]string, 0)
	for _, line := range lines {
		if IsBullet(line) {
			bullets = append(bullets, line)
		}
	}
	return bullets
}

// SectionList keeps every line of a section, bulleted or not, in original
// order for fields stored as plain lists (summary handled separately).
func SectionList(lines []string) []string {
	out := make([]string, 0, len(lines))
	out = append(out, lines...)
	return out
}
