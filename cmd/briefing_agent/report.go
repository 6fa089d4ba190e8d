package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/company-briefing/internal/config"
	"github.com/jonathan/company-briefing/internal/schemas"
)

var (
	reportStrict bool
	reportOut    string
)

var reportCmd = &cobra.Command{
	Use:   "report <company name or URL>",
	Short: "Generate a single company report and print it as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&reportStrict, "strict", false, "Also validate the report against the full JSON schema")
	reportCmd.Flags().StringVar(&reportOut, "out", "", "Write the report to a file instead of stdout")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	svc, closeClient, err := buildService(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeClient()

	result, err := svc.Generate(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("report generation failed: %w", err)
	}

	output, err := json.MarshalIndent(map[string]any{
		"report":  result.Report,
		"sources": result.Sources,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if reportStrict {
		reportJSON, err := json.Marshal(result.Report)
		if err != nil {
			return fmt.Errorf("failed to encode report for validation: %w", err)
		}
		if err := schemas.ValidateCompanyReport(string(reportJSON)); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Schema validation passed")
	}

	if reportOut != "" {
		if err := os.WriteFile(reportOut, append(output, '\n'), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", reportOut, err)
		}
		fmt.Fprintf(os.Stderr, "Report written to %s\n", reportOut)
		return nil
	}

	fmt.Println(string(output))
	return nil
}
