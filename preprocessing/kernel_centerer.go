// Package preprocessing provides fitted transformers built on the Gramian
// engine: centering a kernel matrix around the training sample mean and the
// Nyström low-rank feature map.
package preprocessing

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/kermat/core/model"
	"github.com/YuminosukeSato/kermat/pkg/errors"
)

// KernelCenterer centers a kernel matrix as if the feature-space images of
// the training observations had their mean subtracted.
//
// Fit consumes the training kernel matrix and stores its column means and
// grand mean. Transform then centers any kernel matrix whose columns
// correspond to the same training observations, including rectangular
// test-versus-train matrices.
type KernelCenterer struct {
	model.BaseEstimator

	// FitMeans holds the per-column means of the training kernel matrix.
	FitMeans []float64

	// FitAllMean is the grand mean of the training kernel matrix.
	FitAllMean float64
}

// NewKernelCenterer creates an unfitted KernelCenterer.
func NewKernelCenterer() *KernelCenterer {
	return &KernelCenterer{}
}

// Fit computes the centering statistics from a square training kernel matrix.
func (c *KernelCenterer) Fit(K mat.Matrix) error {
	r, cols := K.Dims()
	if r != cols {
		return errors.NewNotSquareError("KernelCenterer.Fit", r, cols)
	}
	if r == 0 {
		return errors.NewValueError("KernelCenterer.Fit", "empty kernel matrix")
	}

	c.FitMeans = make([]float64, cols)
	grand := 0.0
	for j := 0; j < cols; j++ {
		sum := 0.0
		for i := 0; i < r; i++ {
			sum += K.At(i, j)
		}
		c.FitMeans[j] = sum / float64(r)
		grand += sum
	}
	c.FitAllMean = grand / float64(r*cols)

	c.SetFitted()
	return nil
}

// Transform centers a kernel matrix against the fitted training statistics.
// K may be rectangular: rows are new observations, columns must match the
// training observations seen during Fit.
func (c *KernelCenterer) Transform(K mat.Matrix) (mat.Matrix, error) {
	if !c.IsFitted() {
		return nil, errors.NewNotFittedError("KernelCenterer", "Transform")
	}

	r, cols := K.Dims()
	if cols != len(c.FitMeans) {
		return nil, errors.NewDimensionError("KernelCenterer.Transform", len(c.FitMeans), cols, 1)
	}

	out := mat.NewDense(r, cols, nil)
	for i := 0; i < r; i++ {
		rowSum := 0.0
		for j := 0; j < cols; j++ {
			rowSum += K.At(i, j)
		}
		rowMean := rowSum / float64(cols)
		for j := 0; j < cols; j++ {
			out.Set(i, j, K.At(i, j)-rowMean-c.FitMeans[j]+c.FitAllMean)
		}
	}
	return out, nil
}

// FitTransform fits the centerer on K and returns the centered K.
func (c *KernelCenterer) FitTransform(K mat.Matrix) (mat.Matrix, error) {
	if err := c.Fit(K); err != nil {
		return nil, err
	}
	return c.Transform(K)
}
