package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GillzV/jobassist/internal/jobsearch"
	"github.com/GillzV/jobassist/internal/observability"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the built-in job listings",
	Long:  "Filter the demonstration job listings by keyword, location, type, salary, and experience level. Listings can also be imported from a saved HTML page.",
	RunE:  runSearch,
}

var (
	searchKeywords   string
	searchLocation   string
	searchJobType    string
	searchMinSalary  int
	searchMaxSalary  int
	searchExperience string
	searchHTMLFile   string
	searchOutputFile string
	searchConfigFile string
)

func init() {
	searchCmd.Flags().StringVarP(&searchKeywords, "keywords", "k", "", "Search keywords (required)")
	searchCmd.Flags().StringVarP(&searchLocation, "location", "l", "", "Location filter")
	searchCmd.Flags().StringVarP(&searchJobType, "type", "t", "", "Job type filter (e.g. Full-time)")
	searchCmd.Flags().IntVar(&searchMinSalary, "min-salary", 0, "Minimum salary")
	searchCmd.Flags().IntVar(&searchMaxSalary, "max-salary", 0, "Maximum salary (0 = unbounded)")
	searchCmd.Flags().StringVar(&searchExperience, "experience", "", "Experience level filter (entry, mid, senior)")
	searchCmd.Flags().StringVar(&searchHTMLFile, "html", "", "Import listings from a saved HTML page instead of the samples")
	searchCmd.Flags().StringVarP(&searchOutputFile, "out", "o", "", "Save results to a JSON file")
	searchCmd.Flags().StringVar(&searchConfigFile, "config", "", "Path to JSON config file")
	_ = searchCmd.MarkFlagRequired("keywords")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(searchConfigFile, "", "")
	if err != nil {
		return err
	}
	if searchLocation == "" {
		searchLocation = cfg.DefaultLocation
	}
	if searchJobType == "" {
		searchJobType = cfg.DefaultJobType
	}

	searcher := jobsearch.NewSearcher()
	if searchHTMLFile != "" {
		listings, err := jobsearch.ImportHTMLFile(searchHTMLFile)
		if err != nil {
			return fmt.Errorf("failed to import listings: %w", err)
		}
		searcher = jobsearch.NewSearcherWithListings(listings, nil)
	}

	results := searcher.Search(searchKeywords, searchLocation, searchJobType)
	if searchMinSalary > 0 || searchMaxSalary > 0 {
		results = jobsearch.FilterBySalary(results, searchMinSalary, searchMaxSalary)
	}
	if searchExperience != "" {
		results = jobsearch.FilterByExperience(results, searchExperience)
	}

	if searchOutputFile != "" {
		if err := jobsearch.SaveResults(results, searchOutputFile); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Results saved to %s\n", searchOutputFile)
	}

	observability.NewPrinter(os.Stdout).PrintJobListings(results)
	return nil
}
