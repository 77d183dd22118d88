package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.eggybyte.com/egg/propgen/internal/version"
)

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show propgen version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.GetFullVersionInfo())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	rootCmd.Version = version.GetVersionString()
	rootCmd.SetVersionTemplate(`{{.Version}}
`)
}
