package parser

import (
	"math"

	"github.com/GillzV/jobassist/internal/types"
)

// Confidence scores a merged record 0-100. The score is additive over field
// presence, with sentinel values counting as absent. The four minor sections
// accumulate fractionally and round once at the end.
func Confidence(record *types.ResumeRecord) int {
	score := 0.0

	// Contact information (30 points)
	if record.HasName() {
		score += 10
	}
	if record.HasEmail() {
		score += 10
	}
	if record.Phone != "" {
		score += 10
	}

	// Experience (25 points)
	if len(record.Experience) > 0 {
		score += 25
	}

	// Education (20 points)
	if len(record.Education) > 0 {
		score += 20
	}

	// Skills (15 points)
	if record.HasSkills() {
		score += 15
	}

	// Additional sections (up to 10 points)
	if record.Summary != "" {
		score += 2.5
	}
	if len(record.Projects) > 0 {
		score += 2.5
	}
	if len(record.Certifications) > 0 {
		score += 2.5
	}
	if len(record.Languages) > 0 {
		score += 2.5
	}

	result := int(math.Round(score))
	if result > 100 {
		result = 100
	}
	if result < 0 {
		result = 0
	}
	return result
}
