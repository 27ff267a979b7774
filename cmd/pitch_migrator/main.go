// Package main provides the entry point for the pitch video migration CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pitch_migrator",
	Short: "Batch migration of job records into enriched pitch video documents",
	Long: "pitch_migrator reads eligible rows from the local jobs store, attaches the matching\n" +
		"pitch video, a derived thumbnail, a time-aligned transcript, and a structured job\n" +
		"description, then writes one enriched document per record to the target store.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
