// Package model is the boundary to the pretrained scaler/classifier pair.
// The artifacts are trained offline, loaded once at process start from a
// local bundle file, and treated as immutable shared-read-only resources.
package model

import "fmt"

// Class labels per the training convention. Note the inversion: 0 is the
// alarm state. Any replacement artifact must preserve this encoding.
const (
	ClassHighRisk = 0
	ClassLowRisk  = 1
)

// Scaler standardizes a raw feature vector into the model's input space.
type Scaler interface {
	Transform(features []float64) ([]float64, error)
}

// Predictor classifies a scaled feature vector into ClassHighRisk or
// ClassLowRisk.
type Predictor interface {
	Predict(features []float64) (int, error)
}

// ShapeError reports a feature vector whose width does not match the
// fitted artifact.
type ShapeError struct {
	Want int
	Got  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("feature vector has %d columns, artifact expects %d", e.Got, e.Want)
}

// ConfigError reports a missing or corrupt artifact bundle at startup.
// Fatal: there is no runtime recovery.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("model bundle %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
