package fields

import "strings"

// skillCategoryOrder fixes iteration order over the taxonomy so grouped and
// flat results are reproducible.
var skillCategoryOrder = []string{
	"programming_languages",
	"frameworks",
	"databases",
	"cloud_platforms",
	"tools",
	"methodologies",
}

// skillTaxonomy is the static category → canonical skill literal mapping.
// It is process-wide read-only configuration; matching is case-insensitive
// substring membership against the document text, with no word-boundary
// enforcement (substrings inside longer words are accepted).
var skillTaxonomy = map[string][]string{
	"programming_languages": {
		"Python", "JavaScript", "Java", "C++", "C#", "PHP", "Ruby", "Go",
		"Rust", "Swift", "Kotlin", "Scala", "TypeScript",
	},
	"frameworks": {
		"React", "Angular", "Vue", "Node.js", "Django", "Flask", "Spring",
		"Express", "Laravel", "ASP.NET", "Ruby on Rails",
	},
	"databases": {
		"MySQL", "PostgreSQL", "MongoDB", "Redis", "SQLite", "Oracle",
		"SQL Server", "Cassandra", "DynamoDB",
	},
	"cloud_platforms": {
		"AWS", "Azure", "GCP", "Heroku", "DigitalOcean", "Vercel", "Netlify",
	},
	"tools": {
		"Git", "Docker", "Kubernetes", "Jenkins", "GitLab", "GitHub", "Jira",
		"Confluence", "Slack", "Trello",
	},
	"methodologies": {
		"Agile", "Scrum", "Kanban", "Waterfall", "DevOps", "CI/CD", "TDD", "BDD",
	},
}

// ExtractSkillsByCategory returns taxonomy hits grouped by category. Only
// categories with at least one hit appear in the result.
func ExtractSkillsByCategory(text string) map[string][]string {
	lower := strings.ToLower(text)
	result := make(map[string][]string)

	for _, category := range skillCategoryOrder {
		var found []string
		for _, skill := range skillTaxonomy[category] {
			if strings.Contains(lower, strings.ToLower(skill)) {
				found = append(found, skill)
			}
		}
		if len(found) > 0 {
			result[category] = found
		}
	}

	return result
}

// ExtractSkills returns a flat deduplicated list of taxonomy hits in fixed
// category order. A skill literal appears at most once no matter how often it
// occurs in the text.
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)
	seen := make(map[string]bool)
	skills := make([]string, 0)

	for _, category := range skillCategoryOrder {
		for _, skill := range skillTaxonomy[category] {
			if seen[skill] {
				continue
			}
			if strings.Contains(lower, strings.ToLower(skill)) {
				seen[skill] = true
				skills = append(skills, skill)
			}
		}
	}

	return skills
}

// SplitSkillList breaks a skills section's text on the common delimiters
// (comma, semicolon, bullet, newline), keeping entries longer than two
// characters.
func SplitSkillList(lines []string) []string {
	text := strings.Join(lines, "\n")
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || r == '•' || r == '\n'
	})

	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if len(part) > 2 {
			skills = append(skills, part)
		}
	}
	return skills
}
