package triage

import "github.com/barhechalo/arogyam/internal/model"

// Controller orchestrates the intake, normalizer, external scaler/model
// pair, rule evaluator and zone classifier for one assessment session.
// It is the sole owner of the assessment; the intake screen drives it in
// lock-step with operator input.
type Controller struct {
	intake    *Intake
	scaler    model.Scaler
	predictor model.Predictor
}

// NewController creates a controller over a fresh intake. The scaler and
// predictor are the pretrained artifacts loaded at process start; they are
// treated as immutable for the life of the process.
func NewController(scaler model.Scaler, predictor model.Predictor) *Controller {
	return &Controller{
		intake:    NewIntake(),
		scaler:    scaler,
		predictor: predictor,
	}
}

// Stage returns the current intake stage.
func (c *Controller) Stage() Stage { return c.intake.Stage() }

// Assessment returns the record under collection for form binding.
func (c *Controller) Assessment() *Assessment { return c.intake.Assessment() }

// Verdict returns the stage-4 verdict, or nil before diagnosis has run.
func (c *Controller) Verdict() *Verdict { return c.intake.Assessment().Verdict }

// Advance validates and steps the intake forward. Entering the verdict
// stage runs the full diagnosis synchronously; if inference fails the
// intake drops back to the history stage with no partial verdict and the
// *InferenceError is returned. Validation failures return a
// *ValidationError with the stage unchanged.
func (c *Controller) Advance() error {
	if err := c.intake.Advance(); err != nil {
		return err
	}
	if c.intake.Stage() != StageVerdict {
		return nil
	}
	if err := c.runDiagnosis(); err != nil {
		c.intake.Retreat()
		return err
	}
	return nil
}

// Retreat steps back one stage without validating; entered data is kept.
// A stale verdict is discarded so re-entering stage 4 always re-runs the
// diagnosis against current answers.
func (c *Controller) Retreat() bool {
	if !c.intake.Retreat() {
		return false
	}
	c.intake.Assessment().Verdict = nil
	return true
}

// Reset discards the assessment and returns to stage 1.
func (c *Controller) Reset() {
	c.intake.Reset()
}

// runDiagnosis executes normalize -> scale -> predict -> evaluate ->
// classify and stores the verdict on the assessment.
func (c *Controller) runDiagnosis() error {
	a := c.intake.Assessment()

	features := Features(a)
	scaled, err := c.scaler.Transform(features[:])
	if err != nil {
		return &InferenceError{Err: err}
	}
	prediction, err := c.predictor.Predict(scaled)
	if err != nil {
		return &InferenceError{Err: err}
	}

	critical, abnormal := Evaluate(a)
	verdict := Classify(prediction, critical, abnormal)
	a.Verdict = &verdict
	return nil
}
