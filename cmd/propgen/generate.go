package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.eggybyte.com/egg/propgen/internal/generator"
	"go.eggybyte.com/egg/propgen/internal/projectfs"
	"go.eggybyte.com/egg/propgen/internal/ui"
)

func init() {
	rootCmd.AddCommand(newGenerateCmd())
}

// newGenerateCmd creates the generate command.
func newGenerateCmd() *cobra.Command {
	opts := &targetOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate typed accessors for property resources",
		Long: `Generate one Go source unit with a typed accessor per property key.

Every value must parse as its inferred type, otherwise nothing is written.

Examples:
  propgen generate -r app.properties -r db.xml --class Config --package conf
  propgen generate -r app.yaml --class Settings --key-style getter
  propgen generate --manifest propgen.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}
	opts.register(cmd)
	return cmd
}

// unitSummary is the JSON data reported for a generated unit.
type unitSummary struct {
	Unit      string   `json:"unit"`
	Path      string   `json:"path"`
	Accessors int      `json:"accessors"`
	Resources []string `json:"resources"`
}

// runGenerate generates every requested unit, continuing past failures.
//
// Parameters:
//   - cmd: Cobra command
//   - opts: Parsed target flags
//
// Returns:
//   - error: Non-nil when any unit failed
func runGenerate(cmd *cobra.Command, opts *targetOptions) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	logger, err := settings.Logger(os.Stderr, verbose)
	if err != nil {
		return err
	}
	requests, err := opts.requests(cmd, settings)
	if err != nil {
		return err
	}

	sink := projectfs.NewProjectFS("")
	sink.SetLogger(logger)
	gen := generator.New(generator.Options{
		Logger:      logger,
		Sink:        sink,
		Diagnostics: ui.Diagnostics{},
	})

	ctx := commandContext(cmd)
	failed := 0
	for i, req := range requests {
		ui.Step(i+1, len(requests), "Generating %s", req.UnitName())
		if exists, err := sink.FileExists(req.OutputPath()); err == nil && exists {
			ui.Info("Overwriting %s", req.OutputPath())
		}
		unit, err := gen.Generate(ctx, req)
		if err != nil {
			failed++
			continue
		}
		ui.SuccessData(unitSummary{
			Unit:      unit.Name,
			Path:      unit.Path,
			Accessors: len(unit.Accessors),
			Resources: unit.Resources,
		}, "Generated %s with %d accessors: %s", unit.Name, len(unit.Accessors), unit.Path)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d units failed", failed, len(requests))
	}
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
