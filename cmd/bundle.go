package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barhechalo/arogyam/internal/model"
)

var bundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "Inspect the model artifact bundle",
}

var bundleVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Validate the bundle against the schema and engine feature width",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, path, err := loadBundle(cmd)
		if err != nil {
			return err
		}
		fmt.Printf("%s: OK (schema %s, %d features)\n", path, b.SchemaVersion, b.Features())
		return nil
	},
}

var bundleInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print bundle metadata",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, path, err := loadBundle(cmd)
		if err != nil {
			return err
		}
		fmt.Println("Path:          ", path)
		fmt.Println("Schema version:", b.SchemaVersion)
		fmt.Println("Feature width: ", b.Features())
		fmt.Println("Intercept:     ", b.Model.Intercept)
		fmt.Printf("Classes:        %d=high risk, %d=low risk\n", model.ClassHighRisk, model.ClassLowRisk)
		return nil
	},
}

func init() {
	bundleCmd.AddCommand(bundleVerifyCmd)
	bundleCmd.AddCommand(bundleInfoCmd)
}
