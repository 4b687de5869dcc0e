package triage

import (
	"errors"
	"testing"

	"github.com/barhechalo/arogyam/internal/model"
)

type stubScaler struct {
	err error
}

func (s stubScaler) Transform(features []float64) ([]float64, error) {
	if s.err != nil {
		return nil, s.err
	}
	return features, nil
}

type stubPredictor struct {
	class int
	err   error
}

func (p stubPredictor) Predict(features []float64) (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	return p.class, nil
}

// fillBenign walks the controller's assessment to the end of stage 3 with
// every answer clinically normal.
func fillBenign(t *testing.T, c *Controller) {
	t.Helper()
	a := c.Assessment()
	a.Sex = SexFemale
	if err := c.Advance(); err != nil {
		t.Fatal(err)
	}

	a.SetChestPain(AnswerNo)
	a.Radiation = AnswerNo
	a.Sweating = AnswerNo
	a.Nausea = AnswerNo
	a.Dyspnea = AnswerNo
	a.Syncope = AnswerNo
	if err := c.Advance(); err != nil {
		t.Fatal(err)
	}

	a.Comorbidity = ComorbidityNone
	a.FamilyHistory = AnswerNo
	a.PersonalHistory = AnswerNo
	a.SetECGAvailable(false)
	a.SetHbAvailable(false)
	a.Troponin = TroponinNegative
}

func TestControllerFullWalkGreen(t *testing.T) {
	c := NewController(stubScaler{}, stubPredictor{class: model.ClassLowRisk})
	fillBenign(t, c)

	if err := c.Advance(); err != nil {
		t.Fatalf("Advance() into verdict: %v", err)
	}
	if c.Stage() != StageVerdict {
		t.Fatalf("Stage() = %v, want %v", c.Stage(), StageVerdict)
	}

	v := c.Verdict()
	if v == nil {
		t.Fatal("Verdict() = nil after diagnosis")
	}
	if v.Zone != ZoneGreen || v.ModelAlert || v.TotalFindings() != 0 {
		t.Errorf("verdict = %+v, want green with no findings", v)
	}
}

func TestControllerModelDrivenRed(t *testing.T) {
	c := NewController(stubScaler{}, stubPredictor{class: model.ClassHighRisk})
	fillBenign(t, c)

	if err := c.Advance(); err != nil {
		t.Fatal(err)
	}

	v := c.Verdict()
	if v == nil {
		t.Fatal("Verdict() = nil")
	}
	if v.Zone != ZoneRed || !v.ModelAlert || !v.ModelOnly {
		t.Errorf("verdict = %+v, want model-only red", v)
	}
}

func TestControllerInferenceFailureRetreats(t *testing.T) {
	c := NewController(stubScaler{}, stubPredictor{err: errors.New("artifact corrupt")})
	fillBenign(t, c)

	err := c.Advance()
	var ierr *InferenceError
	if !errors.As(err, &ierr) {
		t.Fatalf("Advance() = %v, want *InferenceError", err)
	}
	if c.Stage() != StageHistory {
		t.Errorf("Stage() = %v after inference failure, want %v", c.Stage(), StageHistory)
	}
	if c.Verdict() != nil {
		t.Error("partial verdict stored after inference failure")
	}
}

func TestControllerScalerFailureRetreats(t *testing.T) {
	c := NewController(stubScaler{err: errors.New("width mismatch")}, stubPredictor{class: model.ClassLowRisk})
	fillBenign(t, c)

	err := c.Advance()
	var ierr *InferenceError
	if !errors.As(err, &ierr) {
		t.Fatalf("Advance() = %v, want *InferenceError", err)
	}
	if c.Stage() != StageHistory {
		t.Errorf("Stage() = %v, want %v", c.Stage(), StageHistory)
	}
}

// Stepping back from the verdict discards it; re-advancing re-runs the
// diagnosis against the edited answers.
func TestControllerRetreatClearsVerdictAndRerun(t *testing.T) {
	c := NewController(stubScaler{}, stubPredictor{class: model.ClassLowRisk})
	fillBenign(t, c)
	if err := c.Advance(); err != nil {
		t.Fatal(err)
	}

	if !c.Retreat() {
		t.Fatal("Retreat() = false at verdict")
	}
	if c.Verdict() != nil {
		t.Error("stale verdict survived retreat")
	}

	c.Assessment().Troponin = TroponinPositive
	if err := c.Advance(); err != nil {
		t.Fatal(err)
	}
	v := c.Verdict()
	if v == nil || v.Zone != ZoneRed {
		t.Errorf("verdict after edit = %+v, want red", v)
	}
}

func TestControllerAmberOnTwoAbnormalVitals(t *testing.T) {
	c := NewController(stubScaler{}, stubPredictor{class: model.ClassLowRisk})
	fillBenign(t, c)
	c.Assessment().SpO2 = 90
	c.Assessment().Pulse = 130

	if err := c.Advance(); err != nil {
		t.Fatal(err)
	}

	v := c.Verdict()
	if v == nil {
		t.Fatal("Verdict() = nil")
	}
	if v.Zone != ZoneAmber || len(v.Critical) != 0 || len(v.Abnormal) != 2 {
		t.Errorf("verdict = %+v, want amber with two abnormal findings", v)
	}
}

func TestControllerRedOnCriticalHemoglobin(t *testing.T) {
	c := NewController(stubScaler{}, stubPredictor{class: model.ClassLowRisk})
	fillBenign(t, c)
	c.Assessment().SetHbAvailable(true)
	c.Assessment().Hemoglobin = 20.0

	if err := c.Advance(); err != nil {
		t.Fatal(err)
	}

	v := c.Verdict()
	if v == nil {
		t.Fatal("Verdict() = nil")
	}
	if v.Zone != ZoneRed || len(v.Critical) != 1 || len(v.Abnormal) != 0 {
		t.Errorf("verdict = %+v, want red on exactly one critical finding", v)
	}
	if v.Critical[0].RuleID != "hb-critical" {
		t.Errorf("finding = %s, want hb-critical", v.Critical[0].RuleID)
	}
}

func TestControllerReset(t *testing.T) {
	c := NewController(stubScaler{}, stubPredictor{class: model.ClassLowRisk})
	fillBenign(t, c)
	if err := c.Advance(); err != nil {
		t.Fatal(err)
	}

	c.Reset()
	if c.Stage() != StageVitals {
		t.Errorf("Stage() = %v after reset, want %v", c.Stage(), StageVitals)
	}
	if c.Verdict() != nil {
		t.Error("verdict survived reset")
	}
	if c.Assessment().Sex != SexUnset {
		t.Error("assessment survived reset")
	}
}
