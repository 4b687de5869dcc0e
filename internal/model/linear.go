package model

// LinearClassifier is a binary linear decision function over scaled
// features, exported from an offline-trained logistic regression.
type LinearClassifier struct {
	Weights   []float64
	Intercept float64
}

var _ Predictor = (*LinearClassifier)(nil)

// Predict returns ClassLowRisk when the decision function is positive and
// ClassHighRisk otherwise, matching the exporter's predict() semantics
// (class 1 = benign side of the boundary).
func (m *LinearClassifier) Predict(features []float64) (int, error) {
	if len(features) != len(m.Weights) {
		return 0, &ShapeError{Want: len(m.Weights), Got: len(features)}
	}
	score := m.Intercept
	for i, x := range features {
		score += m.Weights[i] * x
	}
	if score > 0 {
		return ClassLowRisk, nil
	}
	return ClassHighRisk, nil
}
