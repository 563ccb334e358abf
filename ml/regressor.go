package ml

import (
	"fmt"
)

// Regressor is the fitted linear model: intercept plus one coefficient per
// preprocessed feature.
type Regressor struct {
	Version      string    `json:"version"`
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
}

// Predict returns the raw predicted score for a preprocessed vector. The raw
// value is unbounded; clamping to the valid score range is the caller's job.
func (r *Regressor) Predict(vec []float64) (float64, error) {
	if len(vec) != len(r.Coefficients) {
		return 0, fmt.Errorf("%w: expected %d features, got %d", ErrModelInvocation, len(r.Coefficients), len(vec))
	}
	sum := r.Intercept
	for i, v := range vec {
		sum += r.Coefficients[i] * v
	}
	return sum, nil
}
