package cmd

import (
	"github.com/spf13/cobra"

	"github.com/barhechalo/arogyam/internal/model"
)

var rootCmd = &cobra.Command{
	Use:   "arogyam",
	Short: "Field cardiac triage decision support",
	Long:  "Arogyam — terminal decision engine for cardiac field triage at high altitude.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("bundle", "", "Path to model bundle file (overrides AROGYAM_BUNDLE env var)")

	rootCmd.AddCommand(bundleCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveBundlePath returns the artifact path using --bundle flag (highest
// priority), then AROGYAM_BUNDLE env var, then the default XDG path.
func resolveBundlePath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("bundle"); p != "" {
		return p, nil
	}
	return model.DefaultBundlePath()
}
