package cmd

import (
	"github.com/spf13/cobra"
)

// assessCmd is an explicit alias for the default action, for operators
// who expect a named subcommand.
var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Start an assessment session (same as running arogyam with no arguments)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func init() {
	rootCmd.AddCommand(assessCmd)
}
