package triage

import "github.com/barhechalo/arogyam/internal/model"

// Verdict is the final triage output: the zone, the findings that drove
// it, and the raw model prediction.
type Verdict struct {
	Zone       Zone
	Prediction int

	// ModelAlert is true when the statistical model flagged high risk
	// (prediction == 0); the verdict panel shows the model alert line.
	ModelAlert bool

	// ModelOnly is true when Red was reached purely on the model's
	// prediction with no rule findings at all.
	ModelOnly bool

	Critical []Finding
	Abnormal []Finding
}

// TotalFindings is the combined critical + abnormal count.
func (v *Verdict) TotalFindings() int {
	return len(v.Critical) + len(v.Abnormal)
}

// Classify combines the model prediction with rule findings into a zone.
// Pure function of its inputs. Precedence, in strict order:
//
//  1. Red  — any critical finding, OR 3+ total findings, OR the model
//     predicted class 0. The training convention encodes 0 as the
//     disease/high-risk class and 1 as benign; the inversion is
//     deliberate and must be preserved when swapping model artifacts.
//  2. Amber — 1+ total findings.
//  3. Green — otherwise.
//
// The returned finding lists are the inputs, unchanged, for display.
func Classify(prediction int, critical, abnormal []Finding) Verdict {
	v := Verdict{
		Prediction: prediction,
		ModelAlert: prediction == model.ClassHighRisk,
		Critical:   critical,
		Abnormal:   abnormal,
	}

	total := len(critical) + len(abnormal)
	switch {
	case len(critical) > 0 || total >= 3 || prediction == model.ClassHighRisk:
		v.Zone = ZoneRed
		v.ModelOnly = total == 0
	case total >= 1:
		v.Zone = ZoneAmber
	default:
		v.Zone = ZoneGreen
	}
	return v
}
