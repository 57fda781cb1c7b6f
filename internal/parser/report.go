package parser

import (
	"fmt"

	"github.com/GillzV/jobassist/internal/types"
)

// Issues is the post-hoc checklist result. Missing covers critical contact
// fields, Incomplete covers thin core sections, Suggestions are optional
// improvements. The check never mutates the record it inspects.
type Issues struct {
	Missing     []string `json:"missing"`
	Incomplete  []string `json:"incomplete"`
	Suggestions []string `json:"suggestions"`
}

// Report summarizes extraction completeness for user-facing display.
type Report struct {
	ConfidenceScore int               `json:"confidence_score"`
	SectionsFound   []string          `json:"sections_found"`
	MissingSections []string          `json:"missing_sections"`
	DataQuality     map[string]string `json:"data_quality"`
	Recommendations []string          `json:"recommendations"`
}

// Validate runs the fixed checklist over a merged record.
func Validate(record *types.ResumeRecord) Issues {
	issues := Issues{
		Missing:     []string{},
		Incomplete:  []string{},
		Suggestions: []string{},
	}

	if !record.HasName() {
		issues.Missing = append(issues.Missing, "Name")
	}
	if !record.HasEmail() {
		issues.Missing = append(issues.Missing, "Email address")
	}
	if record.Phone == "" {
		issues.Missing = append(issues.Missing, "Phone number")
	}

	if record.Summary == "" {
		issues.Incomplete = append(issues.Incomplete, "Professional summary")
	}
	if len(record.Experience) == 0 {
		issues.Incomplete = append(issues.Incomplete, "Work experience")
	}
	if !record.HasSkills() {
		issues.Incomplete = append(issues.Incomplete, "Skills section")
	}

	if len(record.Education) < 1 {
		issues.Suggestions = append(issues.Suggestions, "Add education information")
	}
	if len(record.Projects) < 1 {
		issues.Suggestions = append(issues.Suggestions, "Add project portfolio")
	}

	return issues
}

// BuildReport assembles the parse report for a merged record.
func BuildReport(record *types.ResumeRecord) Report {
	report := Report{
		ConfidenceScore: record.Metadata.ConfidenceScore,
		SectionsFound:   []string{},
		MissingSections: []string{},
		DataQuality:     map[string]string{},
		Recommendations: []string{},
	}

	sections := []struct {
		name    string
		present bool
	}{
		{"summary", record.Summary != ""},
		{"experience", len(record.Experience) > 0},
		{"education", len(record.Education) > 0},
		{"skills", record.HasSkills()},
		{"projects", len(record.Projects) > 0},
		{"certifications", len(record.Certifications) > 0},
	}
	for _, s := range sections {
		if s.present {
			report.SectionsFound = append(report.SectionsFound, s.name)
		} else {
			report.MissingSections = append(report.MissingSections, s.name)
		}
	}

	if record.HasName() {
		report.DataQuality["name"] = "Found"
	} else {
		report.DataQuality["name"] = "Missing"
		report.Recommendations = append(report.Recommendations, "Name not found - check resume format")
	}

	if record.HasEmail() {
		report.DataQuality["email"] = "Found"
	} else {
		report.DataQuality["email"] = "Missing"
		report.Recommendations = append(report.Recommendations, "Email not found - check resume format")
	}

	if len(record.Experience) > 0 {
		report.DataQuality["experience"] = fmt.Sprintf("Found %d entries", len(record.Experience))
	} else {
		report.DataQuality["experience"] = "Missing"
		report.Recommendations = append(report.Recommendations, "Work experience not found")
	}

	if record.HasSkills() {
		report.DataQuality["skills"] = fmt.Sprintf("Found %d skills", len(record.Skills))
	} else {
		report.DataQuality["skills"] = "Missing"
		report.Recommendations = append(report.Recommendations, "Skills section not found")
	}

	return report
}
