// Package main provides the propgen CLI entry point.
//
// Overview:
//   - Responsibility: CLI command parsing and execution
//   - Key Types: Cobra command structure, Settings
//   - Concurrency Model: Single-threaded CLI execution
//   - Error Semantics: Exit code 1 with a user-facing message on any failure
//   - Performance Notes: Units are generated sequentially
//
// Usage:
//
//	propgen generate -r app.properties --class Config --package conf
//	propgen generate --manifest propgen.yaml
//
// From go generate:
//
//	//go:generate propgen generate -r app.properties -r db.xml --class Config
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"go.eggybyte.com/egg/propgen/internal/ui"
)

var (
	verbose    bool
	jsonOutput bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "propgen",
	Short: "Typed accessor generator for property files",
	Long: `propgen reads property resources (.properties, .xml, .json, .yaml, .toml),
infers a type for every value and generates a Go source unit exposing one typed
accessor per key.

The generated unit loads the same resources at runtime, overlaid by the
environment-specific variant selected with an environment variable
(app.properties -> app_prod.properties when APP_ENV=prod).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.SetVerbose(verbose)
		ui.SetJSONOutput(jsonOutput)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Enable debug output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output messages as JSON")
}

// Execute runs the root command and exits with status 1 on failure.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		ui.Error("Command failed: %v", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
