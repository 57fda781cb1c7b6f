package parser

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GillzV/jobassist/internal/types"
)

const sampleResume = `John Smith
john.smith@example.com
(555) 123-4567

Summary
Seasoned engineer with a decade of backend work.

Experience
Senior Software Engineer
Acme Corp
Jan 2020 - Present

Education
Bachelor of Science in Computer Science
State University

Skills
Python, Rust, Docker
`

func TestParseFullResume(t *testing.T) {
	record, err := Parse(context.Background(), sampleResume)
	require.NoError(t, err)

	assert.Equal(t, "John Smith", record.Name)
	assert.Equal(t, "john.smith@example.com", record.Email)
	assert.Equal(t, "(555) 123-4567", record.Phone)
	assert.Equal(t, "Seasoned engineer with a decade of backend work.", record.Summary)

	require.Len(t, record.Experience, 1)
	assert.Equal(t, types.ExperienceEntry{
		Title:   "Senior Software Engineer",
		Company: "Acme Corp",
		Dates:   "Jan 2020 - Present",
	}, record.Experience[0])

	require.Len(t, record.Education, 1)
	assert.Equal(t, types.EducationEntry{
		Degree:      "Bachelor of Science in Computer Science",
		Institution: "State University",
	}, record.Education[0])

	assert.Equal(t, []string{"Python", "Rust", "Docker"}, record.Skills)
}

func TestParseEmptyDocument(t *testing.T) {
	record, err := Parse(context.Background(), "")
	require.NoError(t, err)

	// Every field is present with its default or sentinel.
	assert.Equal(t, types.NameNotFound, record.Name)
	assert.Equal(t, types.EmailNotFound, record.Email)
	assert.Empty(t, record.Phone)
	assert.Empty(t, record.Summary)
	assert.NotNil(t, record.Experience)
	assert.Empty(t, record.Experience)
	assert.NotNil(t, record.Education)
	assert.Empty(t, record.Education)
	assert.Equal(t, []string{types.SkillsNotFound}, record.Skills)
	assert.NotNil(t, record.Projects)
	assert.NotNil(t, record.Certifications)
	assert.NotNil(t, record.Languages)
	assert.NotNil(t, record.Dates)
	assert.NotNil(t, record.BulletPoints)
	assert.Equal(t, 0, record.Metadata.ConfidenceScore)
}

func TestParseIsDeterministic(t *testing.T) {
	first, err := Parse(context.Background(), sampleResume)
	require.NoError(t, err)
	second, err := Parse(context.Background(), sampleResume)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParseNoHeadersStillFindsContact(t *testing.T) {
	text := "John Smith\njohn.smith@example.com\nPython developer at heart"

	record, err := Parse(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, "John Smith", record.Name)
	assert.Equal(t, "john.smith@example.com", record.Email)
	// No recognized section headers: structured lists keep non-error defaults,
	// skills still resolve through the whole-text taxonomy fallback.
	assert.Empty(t, record.Experience)
	assert.Empty(t, record.Education)
	assert.Contains(t, record.Skills, "Python")
}

func TestParseSkipsPageMarkers(t *testing.T) {
	text := "--- PAGE 1 ---\nJohn Smith\njohn.smith@example.com"

	record, err := Parse(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, "John Smith", record.Name)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleResume), 0o644))

	record, err := ParseFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "John Smith", record.Name)
	assert.Equal(t, path, record.Metadata.FilePath)
	assert.NotEmpty(t, record.Metadata.ParsedAt)
	assert.Equal(t, int64(len(sampleResume)), record.Metadata.FileSize)
}

func TestParseFileUnsupportedExtension(t *testing.T) {
	_, err := ParseFile(context.Background(), "resume.odt")
	assert.Error(t, err)
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		name     string
		record   func() *types.ResumeRecord
		expected int
	}{
		{
			name:     "empty record",
			record:   types.NewResumeRecord,
			expected: 0,
		},
		{
			name: "sentinels score nothing",
			record: func() *types.ResumeRecord {
				r := types.NewResumeRecord()
				r.Name = types.NameNotFound
				r.Email = types.EmailNotFound
				r.Skills = []string{types.SkillsNotFound}
				return r
			},
			expected: 0,
		},
		{
			name: "contact only",
			record: func() *types.ResumeRecord {
				r := types.NewResumeRecord()
				r.Name = "John Smith"
				r.Email = "john@example.com"
				r.Phone = "(555) 123-4567"
				return r
			},
			expected: 30,
		},
		{
			name: "fractional sections round up",
			record: func() *types.ResumeRecord {
				r := types.NewResumeRecord()
				r.Summary = "summary"
				r.Projects = []types.ProjectEntry{{Name: "Tool"}}
				r.Certifications = []string{"AWS SAA"}
				return r
			},
			expected: 8, // 7.5 rounds to 8
		},
		{
			name: "everything present caps at 100",
			record: func() *types.ResumeRecord {
				r := types.NewResumeRecord()
				r.Name = "John Smith"
				r.Email = "john@example.com"
				r.Phone = "(555) 123-4567"
				r.Experience = []types.ExperienceEntry{{Title: "Engineer"}}
				r.Education = []types.EducationEntry{{Degree: "BS"}}
				r.Skills = []string{"Python"}
				r.Summary = "summary"
				r.Projects = []types.ProjectEntry{{Name: "Tool"}}
				r.Certifications = []string{"AWS SAA"}
				r.Languages = []string{"Spanish"}
				return r
			},
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Confidence(tt.record()))
		})
	}
}

func TestConfidenceNeverExceedsBounds(t *testing.T) {
	record, err := Parse(context.Background(), sampleResume)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, record.Metadata.ConfidenceScore, 0)
	assert.LessOrEqual(t, record.Metadata.ConfidenceScore, 100)
}
