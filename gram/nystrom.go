package gram

import (
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/kermat/core/parallel"
	"github.com/YuminosukeSato/kermat/pkg/errors"
	"github.com/YuminosukeSato/kermat/pkg/log"
)

// NystromApprox builds the Nyström low-rank reconstruction of the kernel
// matrix of X from a subset of landmark observations:
//
//	G ≈ C W⁺ Cᵀ
//
// where C is the n×m cross-kernel matrix between all observations and the
// landmarks, and W⁺ is the Moore–Penrose pseudo-inverse of the m×m kernel
// sub-matrix restricted to the landmarks. The pseudo-inverse (never a plain
// inverse) is required because the landmark sub-matrix may be near-singular;
// when singular values are dropped a NumericalStabilityWarning is emitted
// and the reconstruction is low-rank rather than exact. With the sample
// covering every observation the reconstruction reproduces the full kernel
// matrix up to floating-point error.
//
// The sample indices must be non-empty and within range; they are validated
// up front so the O(n·m) kernel loops never index-check.
func NystromApprox(X *mat.Dense, orient Orientation, sample []int, k Kernel) (G *mat.Dense, err error) {
	defer errors.Recover(&err, "NystromApprox")

	start := time.Now()
	obs := observations(X, orient)
	n := len(obs)
	m := len(sample)

	if m == 0 {
		return nil, errors.NewValueError("NystromApprox", "landmark sample is empty")
	}
	for _, idx := range sample {
		if idx < 0 || idx >= n {
			return nil, errors.NewIndexOutOfRangeError("NystromApprox", idx, n)
		}
	}

	// C: all observations against the landmarks
	cData := make([]float64, n*m)
	parallel.ParallelizeWithThreshold(n, parallelThreshold, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			for j, idx := range sample {
				cData[i*m+j] = k.Eval(obs[i], obs[idx])
			}
		}
	})
	C := mat.NewDense(n, m, cData)

	// W: the landmark sub-matrix, exactly symmetric by mirrored evaluation
	wData := make([]float64, m*m)
	for i := 0; i < m; i++ {
		for j := i; j < m; j++ {
			v := k.Eval(obs[sample[i]], obs[sample[j]])
			wData[i*m+j] = v
			wData[j*m+i] = v
		}
	}
	W := mat.NewDense(m, m, wData)

	Winv, rank, err := pseudoInverse(W)
	if err != nil {
		return nil, err
	}
	if rank < m {
		errors.Warn(errors.NewNumericalStabilityWarning(
			"NystromApprox", "landmark kernel sub-matrix is rank deficient", m-rank))
	}

	var cw, g mat.Dense
	cw.Mul(C, Winv)
	g.Mul(&cw, C.T())

	log.GetLoggerWithName("gram").Debug("nystrom reconstruction built",
		log.OperationKey, "nystrom",
		log.SamplesKey, n,
		log.LandmarksKey, m,
		log.RankKey, rank,
		log.OrientationKey, orient.String(),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return &g, nil
}

// pseudoInverse computes the Moore–Penrose pseudo-inverse of a via thin SVD,
// zeroing singular values below eps·max(r,c)·σmax, and reports the retained
// rank.
func pseudoInverse(a *mat.Dense) (*mat.Dense, int, error) {
	r, c := a.Dims()

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, 0, errors.NewValueError("pseudoInverse", "SVD factorization failed to converge")
	}

	s := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	const eps = 2.220446049250313e-16
	maxDim := r
	if c > maxDim {
		maxDim = c
	}
	tol := 0.0
	if len(s) > 0 {
		tol = eps * float64(maxDim) * s[0]
	}

	rank := 0
	inv := make([]float64, len(s))
	for i, sv := range s {
		if sv > tol {
			inv[i] = 1 / sv
			rank++
		}
	}

	// V * diag(inv) * Uᵀ
	var scaled mat.Dense
	scaled.Mul(&v, mat.NewDiagDense(len(s), inv))
	var pinv mat.Dense
	pinv.Mul(&scaled, u.T())
	return &pinv, rank, nil
}
