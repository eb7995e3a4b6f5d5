package gram

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/kermat/core/parallel"
	"github.com/YuminosukeSato/kermat/pkg/errors"
)

// parallelThreshold is the observation count below which the naive kernel
// loops run sequentially.
const parallelThreshold = 64

// KernelMatrix evaluates k over every pair of observations of X, the
// fallback path for kernels with no closed-form Gramian shortcut. With
// symmetrize set, only pairs with i <= j are evaluated and the upper
// triangle is mirrored, giving an exactly symmetric result at half the
// evaluations; otherwise all n² pairs are evaluated independently.
func KernelMatrix(X *mat.Dense, orient Orientation, k Kernel, symmetrize bool) *mat.Dense {
	obs := observations(X, orient)
	n := len(obs)
	if n == 0 {
		return &mat.Dense{}
	}

	data := make([]float64, n*n)
	if symmetrize {
		parallel.ParallelizeTriangular(n, func(startRow, endRow int) {
			for i := startRow; i < endRow; i++ {
				for j := i; j < n; j++ {
					data[i*n+j] = k.Eval(obs[i], obs[j])
				}
			}
		})
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				data[j*n+i] = data[i*n+j]
			}
		}
	} else {
		parallel.ParallelizeWithThreshold(n, parallelThreshold, func(start, end int) {
			for i := start; i < end; i++ {
				for j := 0; j < n; j++ {
					data[i*n+j] = k.Eval(obs[i], obs[j])
				}
			}
		})
	}
	return mat.NewDense(n, n, data)
}

// CrossKernelMatrix evaluates k over all pairs between the observations of
// X and Z, with no symmetry assumption. It returns a DimensionError when
// the feature counts disagree.
func CrossKernelMatrix(X, Z *mat.Dense, orient Orientation, k Kernel) (*mat.Dense, error) {
	dx := featureCount(X, orient)
	dz := featureCount(Z, orient)
	if dx != dz {
		return nil, errors.NewDimensionError("CrossKernelMatrix", dx, dz, 1)
	}

	xObs := observations(X, orient)
	zObs := observations(Z, orient)
	n, m := len(xObs), len(zObs)
	if n == 0 || m == 0 {
		return &mat.Dense{}, nil
	}

	data := make([]float64, n*m)
	parallel.ParallelizeWithThreshold(n, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			for j := 0; j < m; j++ {
				data[i*m+j] = k.Eval(xObs[i], zObs[j])
			}
		}
	})
	return mat.NewDense(n, m, data), nil
}
