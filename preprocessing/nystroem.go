package preprocessing

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/kermat/core/model"
	"github.com/YuminosukeSato/kermat/gram"
	"github.com/YuminosukeSato/kermat/pkg/errors"
)

// Nystroem maps observations to an explicit low-rank feature space whose
// inner products approximate a kernel. With landmark observations L and
// W = K(L, L), the feature map is x -> W^{-1/2} K(L, x), so that the Gramian
// of the mapped data reproduces the Nyström approximation of the kernel
// matrix.
type Nystroem struct {
	model.BaseEstimator

	kernel gram.Kernel
	sample []int
	orient gram.Orientation

	// Components holds the landmark observations as rows.
	Components *mat.Dense

	// Normalization is the m×m matrix W^{-1/2} applied after kernel
	// evaluation against the landmarks.
	Normalization *mat.Dense
}

// NewNystroem creates an unfitted Nystroem feature map. The sample slice
// selects the landmark observations by index in the data passed to Fit.
func NewNystroem(k gram.Kernel, sample []int, orient gram.Orientation) *Nystroem {
	return &Nystroem{kernel: k, sample: sample, orient: orient}
}

// Fit extracts the landmark observations from X and computes the
// normalization W^{-1/2} from their kernel sub-matrix.
func (n *Nystroem) Fit(X mat.Matrix) error {
	if len(n.sample) == 0 {
		return errors.NewValueError("Nystroem.Fit", "empty landmark sample")
	}

	count, features := observationDims(X, n.orient)
	for _, idx := range n.sample {
		if idx < 0 || idx >= count {
			return errors.NewIndexOutOfRangeError("Nystroem.Fit", idx, count)
		}
	}

	m := len(n.sample)
	n.Components = mat.NewDense(m, features, nil)
	for i, idx := range n.sample {
		n.Components.SetRow(i, observation(X, n.orient, idx))
	}

	// W is assembled from one triangle so it is exactly symmetric.
	w := mat.NewDense(m, m, nil)
	for i := 0; i < m; i++ {
		xi := n.Components.RawRowView(i)
		for j := i; j < m; j++ {
			v := n.kernel.Eval(xi, n.Components.RawRowView(j))
			w.Set(i, j, v)
			w.Set(j, i, v)
		}
	}

	norm, dropped, err := invSqrt(w)
	if err != nil {
		return err
	}
	if dropped > 0 {
		errors.Warn(errors.NewNumericalStabilityWarning(
			"Nystroem.Fit", "landmark kernel sub-matrix is rank deficient", dropped))
	}
	n.Normalization = norm

	n.SetFitted()
	return nil
}

// Transform maps each observation in X to its Nyström feature vector. The
// result has one row per observation and one column per landmark.
func (n *Nystroem) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !n.IsFitted() {
		return nil, errors.NewNotFittedError("Nystroem", "Transform")
	}

	count, features := observationDims(X, n.orient)
	_, wantFeatures := n.Components.Dims()
	if features != wantFeatures {
		return nil, errors.NewDimensionError("Nystroem.Transform", wantFeatures, features, 1)
	}

	m, _ := n.Normalization.Dims()
	c := mat.NewDense(count, m, nil)
	for i := 0; i < count; i++ {
		xi := observation(X, n.orient, i)
		for j := 0; j < m; j++ {
			c.Set(i, j, n.kernel.Eval(xi, n.Components.RawRowView(j)))
		}
	}

	var out mat.Dense
	out.Mul(c, n.Normalization)
	return &out, nil
}

// FitTransform fits the feature map on X and returns the mapped X.
func (n *Nystroem) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := n.Fit(X); err != nil {
		return nil, err
	}
	return n.Transform(X)
}

// invSqrt computes the inverse square root of a symmetric positive
// semi-definite matrix through its thin SVD, zeroing components whose
// singular value falls below the numeric rank tolerance. It returns the
// number of zeroed components.
func invSqrt(w *mat.Dense) (*mat.Dense, int, error) {
	m, _ := w.Dims()

	var svd mat.SVD
	if ok := svd.Factorize(w, mat.SVDThin); !ok {
		return nil, 0, errors.NewValueError("Nystroem.Fit", "SVD of landmark sub-matrix failed to converge")
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	s := svd.Values(nil)

	tol := math.SmallestNonzeroFloat64
	if len(s) > 0 {
		tol = 2.220446049250313e-16 * float64(m) * s[0]
	}

	dropped := 0
	scaled := mat.NewDense(m, m, nil)
	for j := 0; j < m; j++ {
		f := 0.0
		if s[j] > tol {
			f = 1 / math.Sqrt(s[j])
		} else {
			dropped++
		}
		for i := 0; i < m; i++ {
			scaled.Set(i, j, u.At(i, j)*f)
		}
	}

	var out mat.Dense
	out.Mul(scaled, v.T())
	return &out, dropped, nil
}

func observationDims(X mat.Matrix, orient gram.Orientation) (count, features int) {
	r, c := X.Dims()
	if orient == gram.ObsInRows {
		return r, c
	}
	return c, r
}

func observation(X mat.Matrix, orient gram.Orientation, idx int) []float64 {
	if orient == gram.ObsInRows {
		return mat.Row(nil, idx, X)
	}
	return mat.Col(nil, idx, X)
}
