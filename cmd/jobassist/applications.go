package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GillzV/jobassist/internal/observability"
)

var applicationsCmd = &cobra.Command{
	Use:   "applications",
	Short: "List, search, or delete tracked applications",
	RunE:  runApplications,
}

var (
	appsSearchTerm  string
	appsSearchField string
	appsDeleteID    string
	appsConfigFile  string
	appsDataDir     string
	appsDBURL       string
)

func init() {
	applicationsCmd.Flags().StringVar(&appsSearchTerm, "search", "", "Filter applications by a search term")
	applicationsCmd.Flags().StringVar(&appsSearchField, "field", "all", "Field to search (job_title, company, status, confirmation_id, or all)")
	applicationsCmd.Flags().StringVar(&appsDeleteID, "delete", "", "Delete the application with this ID")
	applicationsCmd.Flags().StringVar(&appsConfigFile, "config", "", "Path to JSON config file")
	applicationsCmd.Flags().StringVar(&appsDataDir, "data-dir", "", "Data directory for the file store")
	applicationsCmd.Flags().StringVar(&appsDBURL, "db-url", "", "PostgreSQL URL (overrides DATABASE_URL env var)")

	rootCmd.AddCommand(applicationsCmd)
}

func runApplications(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(appsConfigFile, appsDataDir, appsDBURL)
	if err != nil {
		return err
	}

	ctx := context.Background()

	st, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if appsDeleteID != "" {
		if err := st.DeleteApplication(ctx, appsDeleteID); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Deleted application %s\n", appsDeleteID)
		return nil
	}

	applications, err := st.Applications(ctx)
	if err != nil {
		return err
	}
	if appsSearchTerm != "" {
		applications, err = st.SearchApplications(ctx, appsSearchTerm, appsSearchField)
		if err != nil {
			return err
		}
	}

	if len(applications) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "No applications found")
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	for _, app := range applications {
		printer.PrintApplicationResult(app)
		_, _ = fmt.Fprintf(os.Stdout, "ID: %s   Applied: %s\n\n", app.ID, app.AppliedDate)
	}
	return nil
}
