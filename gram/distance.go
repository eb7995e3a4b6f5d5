package gram

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/kermat/pkg/errors"
)

// SquaredDistances converts, in place, a raw inner-product Gramian into the
// matrix of squared Euclidean distances via
//
//	D[i,j] = xtx[i] + xtx[j] - 2*G[i,j]
//
// where xtx is the per-observation squared-norm cache from DotVectors. The
// diagonal is set to exactly zero: a self-distance is zero by definition and
// the algebraic form would otherwise carry rounding from xtx and G having
// been accumulated in different orders. With symmetrize set, only the upper
// triangle is computed and mirrored. It returns a DimensionError when the
// cache length disagrees with G's dimensions.
func SquaredDistances(G *mat.Dense, xtx []float64, symmetrize bool) error {
	r, c := G.Dims()
	if len(xtx) != r {
		return errors.NewDimensionError("SquaredDistances", r, len(xtx), 0)
	}
	if len(xtx) != c {
		return errors.NewDimensionError("SquaredDistances", c, len(xtx), 1)
	}

	raw := G.RawMatrix()
	if symmetrize {
		for i := 0; i < r; i++ {
			row := raw.Data[i*raw.Stride:]
			row[i] = 0
			for j := i + 1; j < c; j++ {
				row[j] = xtx[i] + xtx[j] - 2*row[j]
			}
		}
		for i := 0; i < r; i++ {
			for j := i + 1; j < c; j++ {
				raw.Data[j*raw.Stride+i] = raw.Data[i*raw.Stride+j]
			}
		}
		return nil
	}

	for i := 0; i < r; i++ {
		row := raw.Data[i*raw.Stride:]
		for j := 0; j < c; j++ {
			if i == j {
				row[j] = 0
				continue
			}
			row[j] = xtx[i] + xtx[j] - 2*row[j]
		}
	}
	return nil
}

// CrossSquaredDistances is the rectangular variant for a cross-Gramian
// between two data sets, using each set's own squared-norm cache:
//
//	D[i,j] = xtx[i] + ztz[j] - 2*G[i,j]
//
// No symmetrization applies and the diagonal is not special: row i and
// column j refer to different observations, so an exact zero is not
// expected. It returns a DimensionError when either cache length disagrees
// with G.
func CrossSquaredDistances(G *mat.Dense, xtx, ztz []float64) error {
	r, c := G.Dims()
	if len(xtx) != r {
		return errors.NewDimensionError("CrossSquaredDistances", r, len(xtx), 0)
	}
	if len(ztz) != c {
		return errors.NewDimensionError("CrossSquaredDistances", c, len(ztz), 1)
	}

	raw := G.RawMatrix()
	for i := 0; i < r; i++ {
		row := raw.Data[i*raw.Stride:]
		for j := 0; j < c; j++ {
			row[j] = xtx[i] + ztz[j] - 2*row[j]
		}
	}
	return nil
}
