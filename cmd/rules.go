package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/barhechalo/arogyam/internal/triage"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the clinical rule table",
	Long:  "Prints every clinical check the evaluator applies, in evaluation order, with its severity and recommended field action.",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSEVERITY\tACTION")
		for _, r := range triage.ClinicalRules() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", r.ID, r.Severity, r.Action)
		}
		return w.Flush()
	},
}
