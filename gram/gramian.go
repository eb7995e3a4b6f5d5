package gram

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/kermat/pkg/errors"
)

// Gramian computes the inner-product Gramian of X with itself: X Xᵀ when
// observations are rows, Xᵀ X when they are columns.
//
// With symmetrize set, the multiply runs as a symmetric rank update filling
// the upper triangle, which is then mirrored so the result is bit-for-bit
// symmetric across the diagonal. Downstream consumers (centering, distance
// expansion) assume exact symmetry, which a full general multiply does not
// guarantee in the last bit due to summation order. Without symmetrize the
// full general multiply is used as computed.
func Gramian(X *mat.Dense, orient Orientation, symmetrize bool) *mat.Dense {
	n := observationCount(X, orient)
	if n == 0 {
		return &mat.Dense{}
	}

	if !symmetrize {
		var g mat.Dense
		if orient == ObsInRows {
			g.Mul(X, X.T())
		} else {
			g.Mul(X.T(), X)
		}
		return &g
	}

	trans := blas.NoTrans
	if orient == ObsInCols {
		trans = blas.Trans
	}

	data := make([]float64, n*n)
	c := blas64.Symmetric{
		N:      n,
		Stride: n,
		Data:   data,
		Uplo:   blas.Upper,
	}
	blas64.Syrk(trans, 1, X.RawMatrix(), 0, c)

	// Mirror the computed upper triangle into the lower one
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			data[j*n+i] = data[i*n+j]
		}
	}
	return mat.NewDense(n, n, data)
}

// CrossGramian computes the rectangular cross term between the observations
// of X and Z: X Zᵀ for row observations, Xᵀ Z for column observations. No
// symmetrization applies; the result is generally not square. It returns a
// DimensionError when the feature counts disagree.
func CrossGramian(X, Z *mat.Dense, orient Orientation) (*mat.Dense, error) {
	dx := featureCount(X, orient)
	dz := featureCount(Z, orient)
	if dx != dz {
		return nil, errors.NewDimensionError("CrossGramian", dx, dz, 1)
	}

	var g mat.Dense
	if orient == ObsInRows {
		g.Mul(X, Z.T())
	} else {
		g.Mul(X.T(), Z)
	}
	return &g, nil
}
