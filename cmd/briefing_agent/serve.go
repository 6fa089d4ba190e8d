package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/company-briefing/internal/config"
	"github.com/jonathan/company-briefing/internal/ingestion"
	"github.com/jonathan/company-briefing/internal/llm"
	"github.com/jonathan/company-briefing/internal/report"
	"github.com/jonathan/company-briefing/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the report generation and login endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	svc, closeClient, err := buildService(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeClient()

	srv, err := server.New(cfg, svc)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// buildService wires the generation client, query resolver and report
// service. The API key may be empty; the report handler rejects requests
// until it is configured, so the server still starts for health checks.
func buildService(ctx context.Context, cfg *config.Config) (*report.Service, func(), error) {
	var client llm.Client
	if cfg.APIKey != "" {
		gemini, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		client = gemini
	}

	svc := report.NewService(client, report.Options{
		CacheSize: cfg.CacheSize,
		CacheTTL:  cfg.CacheTTL,
		DevMode:   cfg.DevMode,
		Resolver:  &ingestion.Resolver{},
	})

	closeClient := func() {
		if client != nil {
			_ = client.Close()
		}
	}
	return svc, closeClient, nil
}
