// Package segment partitions a resume line sequence into labeled sections by
// matching lines against a canonical table of section-header phrases.
package segment

import "strings"

// Label is a canonical section kind.
type Label string

// Canonical section labels.
const (
	LabelContact        Label = "contact"
	LabelSummary        Label = "summary"
	LabelExperience     Label = "experience"
	LabelEducation      Label = "education"
	LabelSkills         Label = "skills"
	LabelProjects       Label = "projects"
	LabelCertifications Label = "certifications"
	LabelLanguages      Label = "languages"
	LabelVolunteer      Label = "volunteer"
	LabelAwards         Label = "awards"
)

// labelOrder fixes the iteration order over the header table. A line matching
// phrases under more than one label resolves to the first label tested, so
// this order must stay stable for reproducible segmentation.
var labelOrder = []Label{
	LabelContact,
	LabelSummary,
	LabelExperience,
	LabelEducation,
	LabelSkills,
	LabelProjects,
	LabelCertifications,
	LabelLanguages,
	LabelVolunteer,
	LabelAwards,
}

// headerPhrases maps each canonical label to its recognized phrase variants.
// Matching is case-insensitive and ignores trailing punctuation; the mapping
// is many-to-one, and lines outside the table never produce a label.
var headerPhrases = map[Label][]string{
	LabelContact: {
		"contact information", "contact details", "contact",
		"personal details", "personal information",
	},
	LabelSummary: {
		"professional summary", "executive summary", "summary",
		"career objective", "objective", "profile", "about",
	},
	LabelExperience: {
		"work experience", "professional experience", "experience",
		"employment history", "career history", "work history", "employment",
	},
	LabelEducation: {
		"education", "academic background", "academic history",
		"qualifications", "degrees",
	},
	LabelSkills: {
		"technical skills", "skills", "competencies", "expertise",
		"technologies", "programming languages", "core skills",
	},
	LabelProjects: {
		"projects", "key projects", "portfolio",
		"achievements", "accomplishments", "personal projects",
	},
	LabelCertifications: {
		"certifications", "certificates", "licenses", "credentials",
		"professional certifications",
	},
	LabelLanguages: {
		"languages", "language skills", "fluency", "proficiency",
	},
	LabelVolunteer: {
		"volunteer work", "volunteering", "volunteer",
		"community service", "charity work",
	},
	LabelAwards: {
		"awards", "honors", "recognition",
	},
}

// Section is a labeled contiguous block of lines. The header line itself is
// excluded from Lines.
type Section struct {
	Label Label
	Lines []string
}

// MatchHeader reports the canonical label for a header line, or "" when the
// line is not a recognized header. Any line containing a recognized phrase is
// accepted; there is no minimum-length gate, so short body lines that happen
// to contain a section keyword can misfire.
func MatchHeader(line string) Label {
	normalized := normalizeHeader(line)
	if normalized == "" {
		return ""
	}

	for _, label := range labelOrder {
		for _, phrase := range headerPhrases[label] {
			if strings.Contains(normalized, phrase) {
				return label
			}
		}
	}
	return ""
}

// Split partitions lines into sections keyed by label. Lines before the first
// recognized header belong to no section. When the same label reappears later
// in the document, the later section overwrites the earlier one
// (last-occurrence-wins; repeats are not merged).
func Split(lines []string) map[Label]Section {
	sections := make(map[Label]Section)

	var current Label
	var content []string

	flush := func() {
		if current != "" && len(content) > 0 {
			sections[current] = Section{Label: current, Lines: content}
		}
	}

	for _, line := range lines {
		label := MatchHeader(line)
		if label != "" {
			flush()
			current = label
			content = nil
			continue
		}
		if current != "" {
			content = append(content, line)
		}
	}
	flush()

	return sections
}

// normalizeHeader lowercases a line and strips trailing colon/punctuation.
func normalizeHeader(line string) string {
	line = strings.ToLower(strings.TrimSpace(line))
	return strings.TrimRight(line, ":;.,-–— \t")
}
