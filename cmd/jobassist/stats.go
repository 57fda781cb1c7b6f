package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/GillzV/jobassist/internal/observability"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show application history statistics",
	RunE:  runStats,
}

var (
	statsConfigFile string
	statsDataDir    string
	statsDBURL      string
)

func init() {
	statsCmd.Flags().StringVar(&statsConfigFile, "config", "", "Path to JSON config file")
	statsCmd.Flags().StringVar(&statsDataDir, "data-dir", "", "Data directory for the file store")
	statsCmd.Flags().StringVar(&statsDBURL, "db-url", "", "PostgreSQL URL (overrides DATABASE_URL env var)")

	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(statsConfigFile, statsDataDir, statsDBURL)
	if err != nil {
		return err
	}

	ctx := context.Background()

	st, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	stats, err := st.Stats(ctx)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintStats(stats)
	return nil
}
