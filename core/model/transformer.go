package model

import "gonum.org/v1/gonum/mat"

// Transformer is the interface for estimators that learn parameters from
// training data and then map matrices to matrices.
type Transformer interface {
	// Fit learns the parameters needed by the transformation.
	Fit(X mat.Matrix) error

	// Transform applies the learned transformation.
	Transform(X mat.Matrix) (mat.Matrix, error)

	// FitTransform runs Fit followed by Transform on the same data.
	FitTransform(X mat.Matrix) (mat.Matrix, error)
}
