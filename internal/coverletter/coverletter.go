// Package coverletter generates cover letters by substituting resume-derived
// strings into a small set of role-specific templates. The inputs are always
// present on a parsed record (possibly as sentinels), so substitution never
// fails on a missing field.
package coverletter

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/GillzV/jobassist/internal/types"
)

// Kind names a cover letter template.
type Kind string

// Available template kinds.
const (
	KindSoftwareEngineer Kind = "software_engineer"
	KindDataScientist    Kind = "data_scientist"
	KindProductManager   Kind = "product_manager"
	KindGeneral          Kind = "general"
)

// Fallback strings used when the record carries no real data for a slot.
const (
	fallbackSkills     = "various technical and professional skills"
	fallbackExperience = "relevant experience"
	fallbackEducation  = "relevant education"
)

const maxEntryLength = 100

var templates = map[Kind]*template.Template{
	KindSoftwareEngineer: template.Must(template.New(string(KindSoftwareEngineer)).Parse(softwareEngineerTemplate)),
	KindDataScientist:    template.Must(template.New(string(KindDataScientist)).Parse(dataScientistTemplate)),
	KindProductManager:   template.Must(template.New(string(KindProductManager)).Parse(productManagerTemplate)),
	KindGeneral:          template.Must(template.New(string(KindGeneral)).Parse(generalTemplate)),
}

// SelectKind picks a template from job-title keywords. Software keywords win
// over data keywords, which win over product keywords; anything else falls
// back to the general template.
func SelectKind(jobTitle string) Kind {
	title := strings.ToLower(jobTitle)
	switch {
	case strings.Contains(title, "software") || strings.Contains(title, "developer") || strings.Contains(title, "engineer"):
		return KindSoftwareEngineer
	case strings.Contains(title, "data") || strings.Contains(title, "analyst"):
		return KindDataScientist
	case strings.Contains(title, "product") || strings.Contains(title, "manager"):
		return KindProductManager
	default:
		return KindGeneral
	}
}

type letterData struct {
	Name       string
	Company    string
	Position   string
	Skills     string
	Experience string
	Education  string
}

// Generate renders the cover letter for a job using the parsed resume record.
func Generate(job types.JobListing, record *types.ResumeRecord) (string, error) {
	kind := SelectKind(job.Title)
	tmpl := templates[kind]

	name := record.Name
	if !record.HasName() {
		name = "Your Name"
	}

	data := letterData{
		Name:       name,
		Company:    job.Company,
		Position:   job.Title,
		Skills:     FormatSkills(record.Skills),
		Experience: FormatExperience(record.Experience),
		Education:  FormatEducation(record.Education),
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", kind, err)
	}
	return sb.String(), nil
}

// FormatSkills joins the first five skills for the skills slot.
func FormatSkills(skills []string) string {
	if len(skills) == 0 || (len(skills) == 1 && skills[0] == types.SkillsNotFound) {
		return fallbackSkills
	}
	if len(skills) > 5 {
		skills = skills[:5]
	}
	return strings.Join(skills, ", ")
}

// FormatExperience renders the first experience entry, truncated.
func FormatExperience(experience []types.ExperienceEntry) string {
	if len(experience) == 0 {
		return fallbackExperience
	}
	return truncate(describeExperience(experience[0]))
}

// FormatEducation renders the first education entry, truncated.
func FormatEducation(education []types.EducationEntry) string {
	if len(education) == 0 {
		return fallbackEducation
	}
	entry := education[0]
	text := entry.Degree
	if entry.Institution != "" {
		text += ", " + entry.Institution
	}
	return truncate(text)
}

func describeExperience(entry types.ExperienceEntry) string {
	text := entry.Title
	if entry.Company != "" {
		text += " at " + entry.Company
	}
	if entry.Dates != "" {
		text += " (" + entry.Dates + ")"
	}
	return text
}

func truncate(text string) string {
	if len(text) > maxEntryLength {
		return text[:maxEntryLength] + "..."
	}
	return text
}
