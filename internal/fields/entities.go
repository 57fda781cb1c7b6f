package fields

import (
	"regexp"

	"github.com/GillzV/jobassist/internal/types"
)

// Line-shape classifiers for the entry scanners. Shapes are keyword-driven:
// a seniority+role pairing opens an experience entry, a degree-level word
// opens an education entry, a suffix noun like App or Platform opens a
// project entry.
var (
	jobTitlePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:Senior|Junior|Lead|Principal|Staff|Software|Data|Product|DevOps|Full\s*Stack|Frontend|Backend|Mobile|QA|Cloud|Security|Network|Database|System|Business|Project|Program|Marketing|Sales|Research)\s+(?:Engineer|Developer|Scientist|Manager|Analyst|Architect|Designer|Consultant|Coordinator|Specialist|Director|Administrator|Researcher)\b`),
		regexp.MustCompile(`\b(?:CEO|CTO|CFO|COO|VP|Director|Head|Team\s*Lead|Scrum\s*Master|Product\s*Owner)\b`),
	}

	companyPattern = regexp.MustCompile(`\b(?:Inc|Corp|LLC|Ltd|Company|Technologies|Solutions|Systems|Group|Enterprises|Industries|Labs)\b`)

	degreePattern      = regexp.MustCompile(`(?i)\b(?:Bachelor|Master|PhD|Doctorate|Associate|Diploma|B\.?S\.?|M\.?S\.?|MBA)\b`)
	institutionPattern = regexp.MustCompile(`(?i)\b(?:University|College|Institute|School)\b`)

	projectNamePattern = regexp.MustCompile(`^[A-Z][A-Za-z\s]+(?:App|System|Platform|Tool|Dashboard|Website|API|Bot|Application|Service)\b`)
	projectTechPattern = regexp.MustCompile(`(?i)\b(?:Technologies|Tech|Tools|Stack|Built with|Using)\b`)
)

// ScanExperience walks a block of lines with a one-entry buffer: a
// title-shaped line flushes the buffered entry and opens a new one, a
// company-shaped line attaches to an open entry, a date-shaped line attaches
// its dates. Lines matching no shape are dropped. The last buffered entry is
// flushed at end of block.
func ScanExperience(lines []string) []types.ExperienceEntry {
	entries := []types.ExperienceEntry{}
	var current *types.ExperienceEntry

	for _, line := range lines {
		switch {
		case matchesJobTitle(line):
			if current != nil {
				entries = append(entries, *current)
			}
			current = &types.ExperienceEntry{Title: line}
		case companyPattern.MatchString(line):
			if current != nil && current.Company == "" {
				current.Company = line
			}
		case MatchesDateRange(line):
			if current != nil && current.Dates == "" {
				current.Dates = line
			}
		}
	}

	if current != nil {
		entries = append(entries, *current)
	}
	return entries
}

// ScanEducation applies the same one-entry buffer over degree and
// institution shapes.
func ScanEducation(lines []string) []types.EducationEntry {
	entries := []types.EducationEntry{}
	var current *types.EducationEntry

	for _, line := range lines {
		switch {
		case degreePattern.MatchString(line):
			if current != nil {
				entries = append(entries, *current)
			}
			current = &types.EducationEntry{Degree: line}
		case institutionPattern.MatchString(line):
			if current != nil && current.Institution == "" {
				current.Institution = line
			}
		}
	}

	if current != nil {
		entries = append(entries, *current)
	}
	return entries
}

// ScanProjects applies the one-entry buffer over project-name and
// technology-list shapes.
func ScanProjects(lines []string) []types.ProjectEntry {
	entries := []types.ProjectEntry{}
	var current *types.ProjectEntry

	for _, line := range lines {
		switch {
		case projectNamePattern.MatchString(line):
			if current != nil {
				entries = append(entries, *current)
			}
			current = &types.ProjectEntry{Name: line}
		case projectTechPattern.MatchString(line):
			if current != nil && current.Technologies == "" {
				current.Technologies = line
			}
		}
	}

	if current != nil {
		entries = append(entries, *current)
	}
	return entries
}

func matchesJobTitle(line string) bool {
	for _, pattern := range jobTitlePatterns {
		if pattern.MatchString(line) {
			return true
		}
	}
	return false
}
