package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barhechalo/arogyam/internal/app"
	"github.com/barhechalo/arogyam/internal/model"
	"github.com/barhechalo/arogyam/internal/triage"
)

// loadBundle resolves the artifact path, loads the bundle, and checks the
// artifacts were fitted on the feature width this engine emits.
func loadBundle(cmd *cobra.Command) (*model.Bundle, string, error) {
	path, err := resolveBundlePath(cmd)
	if err != nil {
		return nil, "", fmt.Errorf("resolve bundle path: %w", err)
	}
	b, err := model.Load(path)
	if err != nil {
		return nil, "", err
	}
	if b.Features() != triage.FeatureCount {
		return nil, "", fmt.Errorf("bundle %s fitted on %d features, engine emits %d",
			path, b.Features(), triage.FeatureCount)
	}
	return b, path, nil
}

// runApp loads the model artifacts and launches the TUI.
func runApp(cmd *cobra.Command) error {
	b, _, err := loadBundle(cmd)
	if err != nil {
		return err
	}

	return app.Run(app.Options{
		Scaler:     b.NewScaler(),
		Predictor:  b.NewPredictor(),
		EngineInfo: "ENGINE " + b.SchemaVersion + "  ",
	})
}
