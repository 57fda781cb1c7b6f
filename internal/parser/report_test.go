package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GillzV/jobassist/internal/types"
)

func completeRecord() *types.ResumeRecord {
	r := types.NewResumeRecord()
	r.Name = "John Smith"
	r.Email = "john@example.com"
	r.Phone = "(555) 123-4567"
	r.Summary = "Backend engineer."
	r.Experience = []types.ExperienceEntry{{Title: "Engineer", Company: "Acme Corp"}}
	r.Education = []types.EducationEntry{{Degree: "BS", Institution: "State University"}}
	r.Skills = []string{"Python", "Go"}
	r.Projects = []types.ProjectEntry{{Name: "Tool"}}
	return r
}

func TestValidateCompleteRecord(t *testing.T) {
	issues := Validate(completeRecord())

	assert.Empty(t, issues.Missing)
	assert.Empty(t, issues.Incomplete)
	assert.Empty(t, issues.Suggestions)
}

func TestValidateEmptyRecord(t *testing.T) {
	record := types.NewResumeRecord()
	record.Name = types.NameNotFound
	record.Email = types.EmailNotFound
	record.Skills = []string{types.SkillsNotFound}

	issues := Validate(record)

	assert.Equal(t, []string{"Name", "Email address", "Phone number"}, issues.Missing)
	assert.Equal(t, []string{"Professional summary", "Work experience", "Skills section"}, issues.Incomplete)
	assert.Equal(t, []string{"Add education information", "Add project portfolio"}, issues.Suggestions)
}

func TestValidateDoesNotMutate(t *testing.T) {
	record := completeRecord()
	before := *record

	Validate(record)

	assert.Equal(t, before, *record)
}

func TestBuildReport(t *testing.T) {
	record := completeRecord()
	record.Metadata.ConfidenceScore = 93

	report := BuildReport(record)

	assert.Equal(t, 93, report.ConfidenceScore)
	assert.Equal(t, []string{"summary", "experience", "education", "skills", "projects"}, report.SectionsFound)
	assert.Equal(t, []string{"certifications"}, report.MissingSections)
	assert.Equal(t, "Found", report.DataQuality["name"])
	assert.Equal(t, "Found", report.DataQuality["email"])
	assert.Equal(t, "Found 1 entries", report.DataQuality["experience"])
	assert.Equal(t, "Found 2 skills", report.DataQuality["skills"])
	assert.Empty(t, report.Recommendations)
}

func TestBuildReportEmptyRecord(t *testing.T) {
	record := types.NewResumeRecord()
	record.Name = types.NameNotFound
	record.Email = types.EmailNotFound
	record.Skills = []string{types.SkillsNotFound}

	report := BuildReport(record)

	assert.Empty(t, report.SectionsFound)
	assert.Len(t, report.MissingSections, 6)
	assert.Equal(t, "Missing", report.DataQuality["name"])
	assert.Equal(t, "Missing", report.DataQuality["email"])
	assert.Equal(t, "Missing", report.DataQuality["experience"])
	assert.Equal(t, "Missing", report.DataQuality["skills"])
	assert.Len(t, report.Recommendations, 4)
}
