// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/GillzV/jobassist/internal/parser"
	"github.com/GillzV/jobassist/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeRecord outputs a human-readable summary of a parsed record.
func (p *Printer) PrintResumeRecord(record *types.ResumeRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:   %s\n", record.Name))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", record.Email))
	if record.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:  %s\n", record.Phone))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Experience entries: %d\n", len(record.Experience)))
	count := min(len(record.Experience), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := record.Experience[i]
		sb.WriteString(fmt.Sprintf("  • %s", entry.Title))
		if entry.Company != "" {
			sb.WriteString(fmt.Sprintf(" — %s", entry.Company))
		}
		sb.WriteString("\n")
	}
	if len(record.Experience) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Experience)-maxItemsToShow))
	}

	if record.HasSkills() {
		skills := strings.Join(record.Skills, ", ")
		if len(skills) > 40 {
			skills = skills[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nSkills: %s\n", skills))
	}

	sb.WriteString(fmt.Sprintf("\nConfidence: %d/100", record.Metadata.ConfidenceScore))

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReport outputs the completeness report for a parsed record.
func (p *Printer) PrintReport(report parser.Report) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Confidence: %d/100\n", report.ConfidenceScore))
	sb.WriteString(fmt.Sprintf("Sections found:   %s\n", joinOrNone(report.SectionsFound)))
	sb.WriteString(fmt.Sprintf("Sections missing: %s\n", joinOrNone(report.MissingSections)))

	if len(report.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		for _, rec := range report.Recommendations {
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
	}

	p.printBox("PARSE REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintApplicationResult outputs the outcome of an application attempt.
func (p *Printer) PrintApplicationResult(result types.ApplicationRecord) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Position: %s\n", result.JobTitle))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", result.Company))
	sb.WriteString(fmt.Sprintf("Status:   %s\n", result.Status))
	if result.ConfirmationID != "" {
		sb.WriteString(fmt.Sprintf("Confirmation: %s\n", result.ConfirmationID))
	}
	if len(result.Errors) > 0 {
		sb.WriteString("\nErrors:\n")
		for _, msg := range result.Errors {
			sb.WriteString(fmt.Sprintf("  • %s\n", msg))
		}
	}

	p.printBox("APPLICATION RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobListings outputs search results, capped at maxItemsToShow.
func (p *Printer) PrintJobListings(jobs []types.JobListing) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Matches: %d\n\n", len(jobs)))

	count := min(len(jobs), maxItemsToShow)
	for i := 0; i < count; i++ {
		job := jobs[i]
		sb.WriteString(fmt.Sprintf("#%d  %s — %s\n", i+1, job.Title, job.Company))
		sb.WriteString(fmt.Sprintf("    %s", job.Location))
		if job.Salary != "" {
			sb.WriteString(fmt.Sprintf("  %s", job.Salary))
		}
		sb.WriteString("\n")
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(jobs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more\n", len(jobs)-maxItemsToShow))
	}

	p.printBox("JOB SEARCH RESULTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStats outputs the application history summary.
func (p *Printer) PrintStats(stats types.ApplicationStats) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total applications: %d\n", stats.TotalApplications))
	sb.WriteString(fmt.Sprintf("This month: %d   This week: %d\n", stats.ApplicationsThisMonth, stats.ApplicationsThisWeek))
	sb.WriteString(fmt.Sprintf("Success rate: %.1f%%\n", stats.SuccessRate))

	if len(stats.TopCompanies) > 0 {
		sb.WriteString("\nTop companies:\n")
		for _, item := range stats.TopCompanies {
			sb.WriteString(fmt.Sprintf("  • %s (%d)\n", item.Value, item.Count))
		}
	}
	if len(stats.TopPositions) > 0 {
		sb.WriteString("\nTop positions:\n")
		for _, item := range stats.TopPositions {
			sb.WriteString(fmt.Sprintf("  • %s (%d)\n", item.Value, item.Count))
		}
	}

	p.printBox("APPLICATION STATS", strings.TrimSuffix(sb.String(), "\n"))
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
