package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GillzV/jobassist/internal/observability"
	"github.com/GillzV/jobassist/internal/parser"
	"github.com/GillzV/jobassist/internal/schemas"
	"github.com/GillzV/jobassist/internal/store"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a resume document into a structured JSON record",
	Long:  "Parse a .pdf, .docx, or .txt resume into a structured record with a confidence score, validate it against the record schema, and optionally persist it.",
	RunE:  runParse,
}

var (
	parseInputFile  string
	parseOutputFile string
	parseConfigFile string
	parseDataDir    string
	parseDBURL      string
	parseSave       bool
	parseVerbose    bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to the resume document (required)")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseCmd.Flags().StringVar(&parseConfigFile, "config", "", "Path to JSON config file")
	parseCmd.Flags().StringVar(&parseDataDir, "data-dir", "", "Data directory for the file store")
	parseCmd.Flags().StringVar(&parseDBURL, "db-url", "", "PostgreSQL URL (overrides DATABASE_URL env var)")
	parseCmd.Flags().BoolVar(&parseSave, "save", false, "Persist the parsed record to the store")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a summary and parse report")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(parseConfigFile, parseDataDir, parseDBURL)
	if err != nil {
		return err
	}
	if parseInputFile == "" {
		parseInputFile = cfg.Resume
	}
	if parseInputFile == "" {
		return fmt.Errorf("resume path is required (use --in or set 'resume' in the config file)")
	}

	ctx := context.Background()

	record, err := parser.ParseFile(ctx, parseInputFile)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	jsonBytes, err := encodeRecord(record)
	if err != nil {
		return err
	}

	if err := schemas.ValidateResumeRecord(jsonBytes); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("parsed record does not validate against schema: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stderr, "Warning: could not validate record against schema: %v\n", err)
	}

	if parseOutputFile != "" {
		if err := os.WriteFile(parseOutputFile, jsonBytes, 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", parseOutputFile)
	} else if !parseVerbose {
		_, _ = os.Stdout.Write(jsonBytes)
	}

	if parseSave {
		st, closeStore, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		if err := st.SaveResume(ctx, record); err != nil {
			return fmt.Errorf("failed to save record: %w", err)
		}
		if fs, ok := st.(*store.FileStore); ok {
			if err := fs.Backup(); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Warning: backup failed: %v\n", err)
			}
		}
		_, _ = fmt.Fprintf(os.Stdout, "Saved parsed record\n")
	}

	if parseVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintResumeRecord(record)
		printer.PrintReport(parser.BuildReport(record))
	}

	return nil
}

// encodeRecord marshals a record with indentation and non-ASCII left
// unescaped, matching the store's on-disk format.
func encodeRecord(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return buf.Bytes(), nil
}
