package parser

import (
	"github.com/GillzV/jobassist/internal/fields"
	"github.com/GillzV/jobassist/internal/segment"
	"github.com/GillzV/jobassist/internal/types"
)

// merge combines the strategy outputs into one canonical record:
// seed defaults, overlay non-empty contact results, copy recognized section
// content, then fill remaining gaps with the looser fallback heuristics.
// Name, email and skills render a sentinel when even the fallback finds
// nothing; every other field keeps its empty default.
func merge(p partials, lines []string, text string) *types.ResumeRecord {
	record := types.NewResumeRecord()

	// Contact overlay: absence never overwrites the default.
	if p.contact.Name != "" {
		record.Name = p.contact.Name
	}
	if p.contact.Email != "" {
		record.Email = p.contact.Email
	}
	if p.contact.Phone != "" {
		record.Phone = p.contact.Phone
	}
	if p.contact.LinkedIn != "" {
		record.LinkedIn = p.contact.LinkedIn
	}
	if p.contact.GitHub != "" {
		record.GitHub = p.contact.GitHub
	}
	if p.contact.Website != "" {
		record.Website = p.contact.Website
	}

	// Section content overwrites defaults unconditionally.
	if s, ok := p.sections[segment.LabelSummary]; ok {
		record.Summary = sectionText(s)
	}
	if s, ok := p.sections[segment.LabelExperience]; ok {
		record.Experience = fields.ScanExperience(s.Lines)
	}
	if s, ok := p.sections[segment.LabelEducation]; ok {
		record.Education = fields.ScanEducation(s.Lines)
	}
	if s, ok := p.sections[segment.LabelSkills]; ok {
		record.Skills = fields.SplitSkillList(s.Lines)
	}
	if s, ok := p.sections[segment.LabelProjects]; ok {
		record.Projects = fields.ScanProjects(s.Lines)
	}
	if s, ok := p.sections[segment.LabelCertifications]; ok {
		record.Certifications = fields.SectionList(s.Lines)
	}
	if s, ok := p.sections[segment.LabelLanguages]; ok {
		record.Languages = fields.SectionList(s.Lines)
	}

	record.Dates = p.dates
	record.BulletPoints = p.bullets
	if len(p.byCategory) > 0 {
		record.SkillsByCategory = p.byCategory
	}

	enhance(record, p, lines, text)

	return record
}

// enhance applies the fallback heuristics to fields still at their default,
// then writes the not-found sentinels where even the fallback came up empty.
func enhance(record *types.ResumeRecord, p partials, lines []string, text string) {
	if record.Name == "" {
		record.Name = fields.FallbackName(lines)
	}
	if record.Name == "" {
		record.Name = types.NameNotFound
	}

	if record.Email == "" {
		record.Email = fields.FallbackEmail(text)
	}
	if record.Email == "" {
		record.Email = types.EmailNotFound
	}

	if len(record.Skills) == 0 {
		record.Skills = p.skills
	}
	if len(record.Skills) == 0 {
		record.Skills = []string{types.SkillsNotFound}
	}
}
