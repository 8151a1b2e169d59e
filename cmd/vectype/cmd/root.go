// Package cmd implements the vectype command-line interface.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vectype/vectype/logger"
)

var rootCmd = &cobra.Command{
	Use:   "vectype",
	Short: "Generate TypeScript declarations for gl-matrix-style libraries",
	Long: `vectype reads the JavaScript sources of a gl-matrix-style vector math
library, recovers each exported function's type signature from its JSDoc
block, resolves cross-module aliases, and emits a TypeScript declaration
file describing the same API with static types.

Available commands:
  generate - Generate the declaration file
  check    - Verify the declaration file is up to date
  init     - Write a default vectype.toml
  version  - Show version information

Examples:
  vectype generate --src src/gl-matrix -o gl-matrix.d.ts
  vectype generate --strict --watch
  vectype check`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		return logger.Initialize(verbosity)
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	defer logger.Cleanup()
	return rootCmd.Execute()
}
