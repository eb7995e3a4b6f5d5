package errors

import (
	"math"
)

// IsFinite reports whether v is neither NaN nor ±Inf. Bound construction and
// hyperparameter validation use this as their only numeric precondition.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// CheckFinite returns an InvalidBoundError when v is non-finite.
func CheckFinite(v float64, side string) error {
	if !IsFinite(v) {
		return NewInvalidBoundError(v, side)
	}
	return nil
}

// CheckMatrixFinite checks all entries of a matrix for NaN or Inf and
// returns a ValueError naming the first offending entry.
func CheckMatrixFinite(op string, m interface{ At(int, int) float64 }, rows, cols int) error {
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := m.At(i, j); !IsFinite(v) {
				return NewValueError(op, "matrix contains a non-finite entry")
			}
		}
	}
	return nil
}

// StabilizeExp computes exp with protection against overflow, clipping the
// argument so the result never becomes Inf.
func StabilizeExp(value float64) float64 {
	const maxExp = 700.0 // exp(700) is close to the float64 maximum
	if value > maxExp {
		return math.Exp(maxExp)
	}
	if value < -maxExp {
		return 0
	}
	return math.Exp(value)
}

// StabilizeLog computes log with protection against log(0), evaluating
// log(max(value, epsilon)).
func StabilizeLog(value float64) float64 {
	const epsilon = 1e-10
	if value < epsilon {
		return math.Log(epsilon)
	}
	return math.Log(value)
}
