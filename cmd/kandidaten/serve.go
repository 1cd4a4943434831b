package main

import (
	"fmt"

	"github.com/jonathan/kandidaten-platform/internal/config"
	"github.com/jonathan/kandidaten-platform/internal/logger"
	"github.com/jonathan/kandidaten-platform/internal/server"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the candidate, upload and share-link endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	logger.Init(cfg.LogLevel, cfg.LogFormat)

	srv, err := server.New(server.Config{
		Port:         cfg.Port,
		DatabaseURL:  cfg.DatabaseURL,
		BaseURL:      cfg.BaseURL,
		ParserAPIKey: cfg.ParserAPIKey,
		ParserAPIURL: cfg.ParserAPIURL,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
