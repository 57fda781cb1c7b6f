package coverletter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GillzV/jobassist/internal/types"
)

func TestSelectKind(t *testing.T) {
	tests := []struct {
		title    string
		expected Kind
	}{
		{"Senior Software Engineer", KindSoftwareEngineer},
		{"Backend Developer", KindSoftwareEngineer},
		{"Data Scientist", KindDataScientist},
		{"Business Analyst", KindDataScientist},
		{"Product Manager", KindProductManager},
		{"Marketing Coordinator", KindGeneral},
		{"", KindGeneral},
		// "engineer" outranks "data" when both appear.
		{"Data Engineer", KindSoftwareEngineer},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.expected, SelectKind(tt.title))
		})
	}
}

func TestGenerate(t *testing.T) {
	record := types.NewResumeRecord()
	record.Name = "John Smith"
	record.Skills = []string{"Python", "Go", "Docker"}
	record.Experience = []types.ExperienceEntry{{Title: "Senior Engineer", Company: "Acme Corp", Dates: "2020 - Present"}}
	record.Education = []types.EducationEntry{{Degree: "Bachelor of Science", Institution: "State University"}}

	job := types.JobListing{Title: "Software Engineer", Company: "Globex"}

	letter, err := Generate(job, record)
	require.NoError(t, err)

	assert.Contains(t, letter, "Dear Hiring Manager,")
	assert.Contains(t, letter, "Software Engineer position at Globex")
	assert.Contains(t, letter, "Python, Go, Docker")
	assert.Contains(t, letter, "Senior Engineer at Acme Corp (2020 - Present)")
	assert.Contains(t, letter, "Bachelor of Science, State University")
	assert.True(t, strings.HasSuffix(strings.TrimRight(letter, "\n"), "John Smith"))
}

func TestGenerateSentinelRecord(t *testing.T) {
	record := types.NewResumeRecord()
	record.Name = types.NameNotFound
	record.Skills = []string{types.SkillsNotFound}

	letter, err := Generate(types.JobListing{Title: "Teacher", Company: "School"}, record)
	require.NoError(t, err)

	// Sentinels never leak into the letter.
	assert.NotContains(t, letter, types.NameNotFound)
	assert.NotContains(t, letter, types.SkillsNotFound)
	assert.Contains(t, letter, "Your Name")
	assert.Contains(t, letter, fallbackSkills)
	assert.Contains(t, letter, fallbackExperience)
	assert.Contains(t, letter, fallbackEducation)
}

func TestFormatSkills(t *testing.T) {
	tests := []struct {
		name     string
		skills   []string
		expected string
	}{
		{"empty", nil, fallbackSkills},
		{"sentinel", []string{types.SkillsNotFound}, fallbackSkills},
		{"few", []string{"Python", "Go"}, "Python, Go"},
		{"caps at five", []string{"a1", "a2", "a3", "a4", "a5", "a6"}, "a1, a2, a3, a4, a5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatSkills(tt.skills))
		})
	}
}

func TestFormatExperienceTruncates(t *testing.T) {
	long := types.ExperienceEntry{Title: strings.Repeat("x", 120)}

	got := FormatExperience([]types.ExperienceEntry{long})

	assert.Len(t, got, maxEntryLength+3)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestFormatExperienceEmpty(t *testing.T) {
	assert.Equal(t, fallbackExperience, FormatExperience(nil))
}

func TestFormatEducation(t *testing.T) {
	entries := []types.EducationEntry{{Degree: "MBA"}}
	assert.Equal(t, "MBA", FormatEducation(entries))
	assert.Equal(t, fallbackEducation, FormatEducation(nil))
}
