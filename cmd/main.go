package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"hospital-management-api/cmd/commands"
)

// @title Hospital Management API
// @version 1.0
// @description REST API for hospital administration: patients, doctors, appointments, billing and dashboard stats

// @host localhost:3000
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	rootCmd := &cobra.Command{
		Use:   "hospital-api",
		Short: "Hospital Management API server",
	}

	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
