package fields

import (
	"testing"

	"github.com/GillzV/jobassist/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanExperience(t *testing.T) {
	lines := []string{
		"Senior Software Engineer",
		"Acme Corp",
		"Jan 2020 - Present",
		"• Built the billing pipeline",
		"Data Analyst",
		"Initech Technologies",
		"2017 - 2019",
	}

	entries := ScanExperience(lines)

	require.Len(t, entries, 2)
	assert.Equal(t, types.ExperienceEntry{
		Title:   "Senior Software Engineer",
		Company: "Acme Corp",
		Dates:   "Jan 2020 - Present",
	}, entries[0])
	assert.Equal(t, types.ExperienceEntry{
		Title:   "Data Analyst",
		Company: "Initech Technologies",
		Dates:   "2017 - 2019",
	}, entries[1])
}

func TestScanExperienceCompanyBeforeTitleIsDropped(t *testing.T) {
	// A company line with no open entry has nothing to attach to.
	entries := ScanExperience([]string{"Acme Corp", "Senior Software Engineer"})

	require.Len(t, entries, 1)
	assert.Equal(t, "Senior Software Engineer", entries[0].Title)
	assert.Empty(t, entries[0].Company)
}

func TestScanExperienceUnmatchedLinesDropped(t *testing.T) {
	entries := ScanExperience([]string{"random prose about the team", "more prose"})
	assert.Empty(t, entries)
}

func TestScanExperienceFlushesLastEntry(t *testing.T) {
	entries := ScanExperience([]string{"Lead Engineer"})

	require.Len(t, entries, 1)
	assert.Equal(t, "Lead Engineer", entries[0].Title)
}

func TestScanEducation(t *testing.T) {
	lines := []string{
		"Bachelor of Science in Computer Science",
		"State University",
		"Master of Science",
		"Tech Institute",
	}

	entries := ScanEducation(lines)

	require.Len(t, entries, 2)
	assert.Equal(t, types.EducationEntry{
		Degree:      "Bachelor of Science in Computer Science",
		Institution: "State University",
	}, entries[0])
	assert.Equal(t, types.EducationEntry{
		Degree:      "Master of Science",
		Institution: "Tech Institute",
	}, entries[1])
}

func TestScanEducationInstitutionWithoutDegreeDropped(t *testing.T) {
	entries := ScanEducation([]string{"State University"})
	assert.Empty(t, entries)
}

func TestScanProjects(t *testing.T) {
	lines := []string{
		"Inventory Tracking App",
		"Built with Go and PostgreSQL",
		"Analytics Dashboard",
	}

	entries := ScanProjects(lines)

	require.Len(t, entries, 2)
	assert.Equal(t, types.ProjectEntry{
		Name:         "Inventory Tracking App",
		Technologies: "Built with Go and PostgreSQL",
	}, entries[0])
	assert.Equal(t, types.ProjectEntry{Name: "Analytics Dashboard"}, entries[1])
}
