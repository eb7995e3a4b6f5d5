package preprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/kermat/compose"
	"github.com/YuminosukeSato/kermat/gram"
	"github.com/YuminosukeSato/kermat/pkg/errors"
)

func trainingData() *mat.Dense {
	return mat.NewDense(5, 2, []float64{
		0, 0,
		1, 0,
		0, 1,
		2, 1,
		-1, 3,
	})
}

func gaussianKernel(t *testing.T) gram.Kernel {
	t.Helper()
	c, err := compose.NewExponential(0.5)
	require.NoError(t, err)
	k, err := gram.DistanceKernel(c)
	require.NoError(t, err)
	return k
}

func TestKernelCentererMatchesDirectCentering(t *testing.T) {
	X := trainingData()
	K := gram.Gramian(X, gram.ObsInRows, true)

	direct, err := gram.CenterKernelMatrix(K)
	require.NoError(t, err)

	centerer := NewKernelCenterer()
	fitted, err := centerer.FitTransform(K)
	require.NoError(t, err)

	assert.True(t, mat.EqualApprox(direct, fitted, 1e-12))
}

func TestKernelCentererTestMatrix(t *testing.T) {
	X := trainingData()
	Z := mat.NewDense(2, 2, []float64{3, -1, 0.5, 0.5})

	k := gaussianKernel(t)
	Ktrain := gram.KernelMatrix(X, gram.ObsInRows, k, true)
	Ktest, err := gram.CrossKernelMatrix(Z, X, gram.ObsInRows, k)
	require.NoError(t, err)

	centerer := NewKernelCenterer()
	require.NoError(t, centerer.Fit(Ktrain))

	centered, err := centerer.Transform(Ktest)
	require.NoError(t, err)

	// Centering against the training statistics, written out directly.
	n, _ := Ktrain.Dims()
	rows, _ := Ktest.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < n; j++ {
			rowMean := 0.0
			for l := 0; l < n; l++ {
				rowMean += Ktest.At(i, l)
			}
			rowMean /= float64(n)

			colMean := 0.0
			for l := 0; l < n; l++ {
				colMean += Ktrain.At(l, j)
			}
			colMean /= float64(n)

			grand := 0.0
			for a := 0; a < n; a++ {
				for b := 0; b < n; b++ {
					grand += Ktrain.At(a, b)
				}
			}
			grand /= float64(n * n)

			want := Ktest.At(i, j) - rowMean - colMean + grand
			assert.InDelta(t, want, centered.At(i, j), 1e-12)
		}
	}
}

func TestKernelCentererErrors(t *testing.T) {
	centerer := NewKernelCenterer()

	err := centerer.Fit(mat.NewDense(2, 3, nil))
	require.Error(t, err)
	var nsq *errors.NotSquareError
	assert.True(t, errors.As(err, &nsq))

	_, err = centerer.Transform(mat.NewDense(2, 2, nil))
	require.Error(t, err)
	var nf *errors.NotFittedError
	assert.True(t, errors.As(err, &nf))

	require.NoError(t, centerer.Fit(mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})))
	_, err = centerer.Transform(mat.NewDense(2, 4, nil))
	require.Error(t, err)
	var dims *errors.DimensionError
	assert.True(t, errors.As(err, &dims))
}

func TestNystroemGramianMatchesApproximation(t *testing.T) {
	X := trainingData()
	k := gaussianKernel(t)
	sample := []int{0, 2, 4}

	nys := NewNystroem(k, sample, gram.ObsInRows)
	feats, err := nys.FitTransform(X)
	require.NoError(t, err)

	var phi mat.Dense
	phi.CloneFrom(feats)
	approx := gram.Gramian(&phi, gram.ObsInRows, false)

	want, err := gram.NystromApprox(X, gram.ObsInRows, sample, k)
	require.NoError(t, err)

	assert.True(t, mat.EqualApprox(want, approx, 1e-8),
		"feature-map Gramian should equal the low-rank approximation\nwant:\n%v\ngot:\n%v",
		mat.Formatted(want), mat.Formatted(approx))
}

func TestNystroemFullSampleRecoversKernelMatrix(t *testing.T) {
	X := trainingData()
	k := gaussianKernel(t)

	nys := NewNystroem(k, []int{0, 1, 2, 3, 4}, gram.ObsInRows)
	feats, err := nys.FitTransform(X)
	require.NoError(t, err)

	var phi mat.Dense
	phi.CloneFrom(feats)
	approx := gram.Gramian(&phi, gram.ObsInRows, false)
	full := gram.KernelMatrix(X, gram.ObsInRows, k, true)

	assert.True(t, mat.EqualApprox(full, approx, 1e-8))
}

func TestNystroemColumnOrientation(t *testing.T) {
	X := trainingData()
	var xt mat.Dense
	xt.CloneFrom(X.T())
	k := gaussianKernel(t)
	sample := []int{1, 3}

	rowFeats, err := NewNystroem(k, sample, gram.ObsInRows).FitTransform(X)
	require.NoError(t, err)
	colFeats, err := NewNystroem(k, sample, gram.ObsInCols).FitTransform(&xt)
	require.NoError(t, err)

	assert.True(t, mat.EqualApprox(rowFeats, colFeats, 1e-12))
}

func TestNystroemValidation(t *testing.T) {
	X := trainingData()
	k := gaussianKernel(t)

	err := NewNystroem(k, nil, gram.ObsInRows).Fit(X)
	require.Error(t, err)
	var ve *errors.ValueError
	assert.True(t, errors.As(err, &ve))

	err = NewNystroem(k, []int{0, 9}, gram.ObsInRows).Fit(X)
	require.Error(t, err)
	var ioor *errors.IndexOutOfRangeError
	require.True(t, errors.As(err, &ioor))
	assert.Equal(t, 9, ioor.Index)

	nys := NewNystroem(k, []int{0, 1}, gram.ObsInRows)
	_, err = nys.Transform(X)
	require.Error(t, err)
	var nf *errors.NotFittedError
	assert.True(t, errors.As(err, &nf))

	require.NoError(t, nys.Fit(X))
	_, err = nys.Transform(mat.NewDense(2, 3, nil))
	require.Error(t, err)
	var dims *errors.DimensionError
	assert.True(t, errors.As(err, &dims))
}
