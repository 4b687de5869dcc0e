package model

// StandardScaler applies the offline-fitted standardization
// (x - mean) / scale, column by column.
type StandardScaler struct {
	Mean  []float64
	Scale []float64
}

var _ Scaler = (*StandardScaler)(nil)

// Transform standardizes the vector. The input is not modified.
func (s *StandardScaler) Transform(features []float64) ([]float64, error) {
	if len(features) != len(s.Mean) {
		return nil, &ShapeError{Want: len(s.Mean), Got: len(features)}
	}
	out := make([]float64, len(features))
	for i, x := range features {
		out[i] = (x - s.Mean[i]) / s.Scale[i]
	}
	return out, nil
}
