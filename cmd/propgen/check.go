package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.eggybyte.com/egg/propgen/internal/generator"
	"go.eggybyte.com/egg/propgen/internal/ui"
)

func init() {
	rootCmd.AddCommand(newCheckCmd())
}

// newCheckCmd creates the check command.
func newCheckCmd() *cobra.Command {
	opts := &targetOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Load and validate property resources without generating",
		Long: `Load the resources of every target, check each value against its inferred
type and check accessor names. Nothing is written.

Example:
  propgen check -r app.properties --class Config`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts)
		},
	}
	opts.register(cmd)
	return cmd
}

func runCheck(cmd *cobra.Command, opts *targetOptions) error {
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

	gen := generator.New(generator.Options{Logger: logger, Diagnostics: ui.Diagnostics{}})
	ctx := commandContext(cmd)
	failed := 0
	for _, req := range requests {
		props, err := gen.Check(ctx, req)
		if err != nil {
			failed++
			continue
		}
		ui.Success("%s: %d properties valid", req.UnitName(), props.Len())
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d units failed validation", failed, len(requests))
	}
	return nil
}
