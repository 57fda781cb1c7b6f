package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GillzV/jobassist/internal/apply"
	"github.com/GillzV/jobassist/internal/observability"
	"github.com/GillzV/jobassist/internal/parser"
	"github.com/GillzV/jobassist/internal/types"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Run the simulated application workflow for a job",
	Long:  "Validate the saved resume record, generate a cover letter, walk the simulated submission steps, and record the outcome. No data leaves the machine.",
	RunE:  runApply,
}

var (
	applyJobTitle    string
	applyCompany     string
	applyLocation    string
	applyJobType     string
	applySalary      string
	applyJobURL      string
	applyResumeFile  string
	applyFailureRate float64
	applyConfigFile  string
	applyDataDir     string
	applyDBURL       string
)

func init() {
	applyCmd.Flags().StringVar(&applyJobTitle, "title", "", "Job title (required)")
	applyCmd.Flags().StringVar(&applyCompany, "company", "", "Company name (required)")
	applyCmd.Flags().StringVar(&applyLocation, "location", "", "Job location")
	applyCmd.Flags().StringVar(&applyJobType, "type", "", "Job type")
	applyCmd.Flags().StringVar(&applySalary, "salary", "", "Advertised salary")
	applyCmd.Flags().StringVar(&applyJobURL, "url", "", "Job posting URL")
	applyCmd.Flags().StringVar(&applyResumeFile, "resume", "", "Parse this resume instead of loading the saved record")
	applyCmd.Flags().Float64Var(&applyFailureRate, "failure-rate", 0, "Simulated per-step failure probability (0-1)")
	applyCmd.Flags().StringVar(&applyConfigFile, "config", "", "Path to JSON config file")
	applyCmd.Flags().StringVar(&applyDataDir, "data-dir", "", "Data directory for the file store")
	applyCmd.Flags().StringVar(&applyDBURL, "db-url", "", "PostgreSQL URL (overrides DATABASE_URL env var)")
	_ = applyCmd.MarkFlagRequired("title")
	_ = applyCmd.MarkFlagRequired("company")

	rootCmd.AddCommand(applyCmd)
}

func runApply(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(applyConfigFile, applyDataDir, applyDBURL)
	if err != nil {
		return err
	}

	ctx := context.Background()

	st, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	var record *types.ResumeRecord
	if applyResumeFile != "" {
		record, err = parser.ParseFile(ctx, applyResumeFile)
		if err != nil {
			return fmt.Errorf("failed to parse resume: %w", err)
		}
	} else {
		record, err = st.LoadResume(ctx)
		if err != nil {
			return err
		}
		if record == nil {
			return fmt.Errorf("no saved resume record (run 'jobassist parse --save' first or pass --resume)")
		}
	}

	job := types.JobListing{
		Title:    applyJobTitle,
		Company:  applyCompany,
		Location: applyLocation,
		Type:     applyJobType,
		Salary:   applySalary,
		URL:      applyJobURL,
	}

	automator := apply.NewAutomator(st)
	automator.FailureRate = applyFailureRate

	result, err := automator.Apply(ctx, job, record)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintApplicationResult(result)

	if result.CoverLetter != "" {
		_, _ = fmt.Fprintf(os.Stdout, "\n%s\n", result.CoverLetter)
	}
	return nil
}
