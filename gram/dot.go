package gram

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/kermat/pkg/errors"
)

// DotVectors returns the squared L2 norm of every observation in X. The
// result has one entry per observation; it is the xᵀx cache consumed by
// SquaredDistances and must be recomputed whenever X changes.
func DotVectors(X *mat.Dense, orient Orientation) []float64 {
	out := make([]float64, observationCount(X, orient))
	// Only the length of a freshly allocated buffer can match, so the
	// in-place variant cannot fail here.
	_ = DotVectorsTo(out, X, orient)
	return out
}

// DotVectorsTo is the in-place variant of DotVectors, writing into dst. It
// returns a DimensionError when dst has the wrong length.
func DotVectorsTo(dst []float64, X *mat.Dense, orient Orientation) error {
	n := observationCount(X, orient)
	if len(dst) != n {
		return errors.NewDimensionError("DotVectorsTo", n, len(dst), 0)
	}

	raw := X.RawMatrix()
	if orient == ObsInRows {
		for i := 0; i < raw.Rows; i++ {
			row := raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols]
			s := 0.0
			for _, v := range row {
				s += v * v
			}
			dst[i] = s
		}
		return nil
	}

	for j := 0; j < raw.Cols; j++ {
		s := 0.0
		for i := 0; i < raw.Rows; i++ {
			v := raw.Data[i*raw.Stride+j]
			s += v * v
		}
		dst[j] = s
	}
	return nil
}

// observationCount returns the number of observations X holds under the
// given orientation.
func observationCount(X *mat.Dense, orient Orientation) int {
	r, c := X.Dims()
	if orient == ObsInCols {
		return c
	}
	return r
}

// featureCount returns the number of features per observation.
func featureCount(X *mat.Dense, orient Orientation) int {
	r, c := X.Dims()
	if orient == ObsInCols {
		return r
	}
	return c
}

// observations returns the observation vectors of X as slices. Row
// observations alias the matrix storage; column observations are copied
// once so the per-pair kernel loop never strides.
func observations(X *mat.Dense, orient Orientation) [][]float64 {
	raw := X.RawMatrix()
	if orient == ObsInRows {
		obs := make([][]float64, raw.Rows)
		for i := range obs {
			obs[i] = raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols]
		}
		return obs
	}

	obs := make([][]float64, raw.Cols)
	for j := range obs {
		col := make([]float64, raw.Rows)
		for i := 0; i < raw.Rows; i++ {
			col[i] = raw.Data[i*raw.Stride+j]
		}
		obs[j] = col
	}
	return obs
}
