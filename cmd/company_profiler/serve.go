package main

import (
	"fmt"

	"github.com/jonathan/company-profiler/internal/config"
	"github.com/jonathan/company-profiler/internal/crawling"
	"github.com/jonathan/company-profiler/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort       int
	serveConfigPath string
	serveValidate   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes GET /profile?url=... and POST /profile for on-demand company profiling.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default: 8080)")
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Path to JSON config file")
	serveCmd.Flags().BoolVar(&serveValidate, "validate", false, "Check every profile against the JSON Schema before responding")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	resolved, err := config.Resolve(serveConfigPath)
	if err != nil {
		return err
	}

	flagCfg := config.Config{Port: servePort, ValidateOutput: serveValidate}
	cfg := flagCfg.MergeWithDefaults(*resolved)

	srv, err := server.New(server.Config{
		Port: cfg.Port,
		Crawl: &crawling.Options{
			Timeout:       cfg.Timeout(),
			UserAgent:     cfg.UserAgent,
			SummaryLength: cfg.SummaryLength,
		},
		ValidateOutput: cfg.ValidateOutput,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
