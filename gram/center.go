package gram

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/kermat/pkg/errors"
)

// CenterKernelMatrix applies classic double centering,
//
//	K'[i,j] = K[i,j] - rowMean[i] - colMean[j] + grandMean,
//
// producing the kernel matrix of implicitly mean-subtracted feature vectors,
// the precondition for kernel PCA. The input is not modified. It returns a
// NotSquareError for a non-square K.
func CenterKernelMatrix(K *mat.Dense) (*mat.Dense, error) {
	r, c := K.Dims()
	if r != c {
		return nil, errors.NewNotSquareError("CenterKernelMatrix", r, c)
	}
	if r == 0 {
		return &mat.Dense{}, nil
	}

	rowMeans := make([]float64, r)
	colMeans := make([]float64, c)
	grand := 0.0

	raw := K.RawMatrix()
	for i := 0; i < r; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+c]
		s := 0.0
		for j, v := range row {
			s += v
			colMeans[j] += v
		}
		rowMeans[i] = s / float64(c)
		grand += s
	}
	for j := range colMeans {
		colMeans[j] /= float64(r)
	}
	grand /= float64(r * c)

	out := mat.NewDense(r, c, nil)
	outRaw := out.RawMatrix()
	for i := 0; i < r; i++ {
		src := raw.Data[i*raw.Stride : i*raw.Stride+c]
		dst := outRaw.Data[i*outRaw.Stride : i*outRaw.Stride+c]
		for j, v := range src {
			dst[j] = v - rowMeans[i] - colMeans[j] + grand
		}
	}
	return out, nil
}
