package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data files to a single JSON snapshot",
	Long:  "Write applications, the saved resume record, and settings into one timestamped JSON file under the data directory. Only the file store supports export.",
	RunE:  runExport,
}

var (
	exportConfigFile string
	exportDataDir    string
	exportBackup     bool
)

func init() {
	exportCmd.Flags().StringVar(&exportConfigFile, "config", "", "Path to JSON config file")
	exportCmd.Flags().StringVar(&exportDataDir, "data-dir", "", "Data directory for the file store")
	exportCmd.Flags().BoolVar(&exportBackup, "backup", false, "Also create a timestamped backup of the data files")

	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(exportConfigFile, exportDataDir, "")
	if err != nil {
		return err
	}

	fs, err := openFileStore(cfg)
	if err != nil {
		return err
	}

	if exportBackup {
		if err := fs.Backup(); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(os.Stdout, "Backup created")
	}

	path, err := fs.Export()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "Exported to %s\n", path)
	return nil
}
