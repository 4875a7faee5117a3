package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/hiring-console/internal/config"
	"github.com/jonathan/hiring-console/internal/server"
)

var (
	servePort     int
	serveTimezone string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for jobs, availability, screening questions, applicants, and automation settings.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	serveCmd.Flags().StringVar(&serveTimezone, "timezone", "", "Default IANA timezone for availability (overrides TZ)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	serverConfig, err := config.LoadServerConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		serverConfig.Port = servePort
	}
	if serveTimezone != "" {
		serverConfig.Timezone = serveTimezone
	}

	srv, err := server.New(server.Config{
		Port:        serverConfig.Port,
		DatabaseURL: serverConfig.DatabaseURL,
		Timezone:    serverConfig.Timezone,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
