package gram

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/kermat/compose"
	"github.com/YuminosukeSato/kermat/pkg/errors"
)

func TestDotVectors(t *testing.T) {
	X := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	assert.Equal(t, []float64{1, 1}, DotVectors(X, ObsInRows))

	Y := mat.NewDense(2, 3, []float64{
		1, 2, 0,
		2, 0, 3,
	})
	assert.Equal(t, []float64{5, 4, 9}, DotVectors(Y, ObsInCols))
	assert.Equal(t, []float64{5, 13}, DotVectors(Y, ObsInRows))
}

func TestDotVectorsToWrongLength(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
	err := DotVectorsTo(make([]float64, 2), X, ObsInRows)
	require.Error(t, err)

	var dims *errors.DimensionError
	require.True(t, errors.As(err, &dims))
	assert.Equal(t, 3, dims.Expected)
	assert.Equal(t, 2, dims.Got)
}

func TestGramianIdentityScenario(t *testing.T) {
	X := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	G := Gramian(X, ObsInRows, true)

	want := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	assert.True(t, mat.Equal(G, want), "Gramian of the identity should be the identity")

	xtx := DotVectors(X, ObsInRows)
	require.NoError(t, SquaredDistances(G, xtx, true))
	wantD := mat.NewDense(2, 2, []float64{0, 2, 2, 0})
	assert.True(t, mat.Equal(G, wantD), "squared distances = %v", mat.Formatted(G))
}

func TestGramianBitwiseSymmetry(t *testing.T) {
	// Awkward magnitudes so a general multiply could disagree in the last
	// bit between triangles; the symmetrized path must not.
	X := mat.NewDense(5, 3, []float64{
		1e-8, 3.14159, -2.71828,
		1e8, -1e-4, 7.77,
		0.1, 0.2, 0.3,
		-5.5, 1e3, -1e-7,
		123.456, -0.001, 42,
	})
	G := Gramian(X, ObsInRows, true)

	n, _ := G.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			gij := G.At(i, j)
			gji := G.At(j, i)
			if math.Float64bits(gij) != math.Float64bits(gji) {
				t.Fatalf("G[%d,%d]=%x differs bitwise from G[%d,%d]=%x",
					i, j, math.Float64bits(gij), j, i, math.Float64bits(gji))
			}
		}
	}
}

func TestGramianOrientations(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{1, 2, 3, 4, 5, 6, 7, 8})
	var xt mat.Dense
	xt.CloneFrom(X.T())

	G1 := Gramian(X, ObsInRows, true)
	G2 := Gramian(&xt, ObsInCols, true)
	assert.True(t, mat.EqualApprox(G1, G2, 1e-12))
}

func TestCrossGramian(t *testing.T) {
	X := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	Z := mat.NewDense(3, 2, []float64{1, 1, 2, 0, 0, 3})

	C, err := CrossGramian(X, Z, ObsInRows)
	require.NoError(t, err)
	want := mat.NewDense(2, 3, []float64{1, 2, 0, 1, 0, 3})
	assert.True(t, mat.Equal(C, want))

	_, err = CrossGramian(X, mat.NewDense(3, 4, nil), ObsInRows)
	require.Error(t, err)
	var dims *errors.DimensionError
	assert.True(t, errors.As(err, &dims))
}

func TestSquaredDistancesSelfConsistency(t *testing.T) {
	X := mat.NewDense(4, 3, []float64{
		0.5, -1.2, 3.3,
		2.0, 0.0, -0.7,
		-1.1, 4.2, 0.9,
		0.0, 0.0, 0.0,
	})
	G := Gramian(X, ObsInRows, true)
	xtx := DotVectors(X, ObsInRows)
	require.NoError(t, SquaredDistances(G, xtx, true))

	n, _ := G.Dims()
	for i := 0; i < n; i++ {
		assert.Zero(t, G.At(i, i), "self-distance must be exactly zero")
		for j := 0; j < n; j++ {
			assert.Equal(t, G.At(i, j), G.At(j, i))

			// Cross-check against the direct definition
			want := 0.0
			for f := 0; f < 3; f++ {
				d := X.At(i, f) - X.At(j, f)
				want += d * d
			}
			assert.InDelta(t, want, G.At(i, j), 1e-10)
		}
	}
}

func TestSquaredDistancesLengthMismatch(t *testing.T) {
	G := mat.NewDense(3, 3, nil)
	err := SquaredDistances(G, []float64{1, 2}, true)
	require.Error(t, err)
	var dims *errors.DimensionError
	assert.True(t, errors.As(err, &dims))
}

func TestCrossSquaredDistances(t *testing.T) {
	X := mat.NewDense(2, 2, []float64{0, 0, 1, 1})
	Z := mat.NewDense(1, 2, []float64{3, 4})

	C, err := CrossGramian(X, Z, ObsInRows)
	require.NoError(t, err)
	require.NoError(t, CrossSquaredDistances(C, DotVectors(X, ObsInRows), DotVectors(Z, ObsInRows)))

	// ‖(0,0)-(3,4)‖² = 25, ‖(1,1)-(3,4)‖² = 13
	assert.InDelta(t, 25, C.At(0, 0), 1e-12)
	assert.InDelta(t, 13, C.At(1, 0), 1e-12)

	err = CrossSquaredDistances(C, []float64{1}, []float64{1})
	require.Error(t, err)
}

func TestKernelMatrixMatchesGramianForDotKernel(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{1, 2, -0.5, 3, 0, 1})
	linear := KernelFunc(func(x, y []float64) float64 {
		s := 0.0
		for i := range x {
			s += x[i] * y[i]
		}
		return s
	})

	K := KernelMatrix(X, ObsInRows, linear, true)
	G := Gramian(X, ObsInRows, true)
	assert.True(t, mat.EqualApprox(K, G, 1e-12))

	// Symmetrized path is exactly symmetric
	n, _ := K.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.Equal(t, K.At(i, j), K.At(j, i))
		}
	}
}

func TestKernelMatrixColumnObservations(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{1, 2, -0.5, 3, 0, 1})
	var xt mat.Dense
	xt.CloneFrom(X.T())

	c, err := compose.NewExponential(0.5)
	require.NoError(t, err)
	k, err := DistanceKernel(c)
	require.NoError(t, err)

	K1 := KernelMatrix(X, ObsInRows, k, true)
	K2 := KernelMatrix(&xt, ObsInCols, k, true)
	assert.True(t, mat.EqualApprox(K1, K2, 1e-14))
}

func TestCrossKernelMatrix(t *testing.T) {
	X := mat.NewDense(2, 1, []float64{0, 1})
	Z := mat.NewDense(3, 1, []float64{0, 2, -1})

	c, err := compose.NewExponentialDefault()
	require.NoError(t, err)
	k, err := DistanceKernel(c)
	require.NoError(t, err)

	K, err := CrossKernelMatrix(X, Z, ObsInRows, k)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, K.At(0, 0), 1e-15)
	assert.InDelta(t, math.Exp(-4), K.At(0, 1), 1e-15)
	assert.InDelta(t, math.Exp(-1), K.At(0, 2), 1e-15)
	assert.InDelta(t, math.Exp(-1), K.At(1, 0), 1e-15)

	_, err = CrossKernelMatrix(X, mat.NewDense(2, 3, nil), ObsInRows, k)
	require.Error(t, err)
}

func TestDistanceKernelComposability(t *testing.T) {
	poly, err := compose.NewPolynomialDefault()
	require.NoError(t, err)

	_, err = DistanceKernel(poly)
	require.Error(t, err, "polynomial must not wrap a squared distance")
	var nce *errors.NonComposableError
	assert.True(t, errors.As(err, &nce))

	_, err = DotKernel(poly)
	assert.NoError(t, err)

	exp, err := compose.NewExponentialDefault()
	require.NoError(t, err)
	_, err = DotKernel(exp)
	require.Error(t, err, "exponential must not wrap a raw inner product")
}

func TestCenterKernelMatrix(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{1, 2, 3, 4, -1, 0, 2, 2})
	K := Gramian(X, ObsInRows, true)

	centered, err := CenterKernelMatrix(K)
	require.NoError(t, err)

	n, _ := centered.Dims()
	for i := 0; i < n; i++ {
		rowSum, colSum := 0.0, 0.0
		for j := 0; j < n; j++ {
			rowSum += centered.At(i, j)
			colSum += centered.At(j, i)
		}
		assert.InDelta(t, 0, rowSum, 1e-10, "row %d sum", i)
		assert.InDelta(t, 0, colSum, 1e-10, "col %d sum", i)
	}
}

func TestCenterKernelMatrixNotSquare(t *testing.T) {
	_, err := CenterKernelMatrix(mat.NewDense(2, 3, nil))
	require.Error(t, err)
	var nsq *errors.NotSquareError
	require.True(t, errors.As(err, &nsq))
	assert.Equal(t, 2, nsq.Rows)
	assert.Equal(t, 3, nsq.Cols)
}

func TestNystromApproxFullSampleIsExact(t *testing.T) {
	X := mat.NewDense(5, 2, []float64{
		0, 0,
		1, 0,
		0, 1,
		2, 1,
		-1, 3,
	})
	c, err := compose.NewExponential(0.7)
	require.NoError(t, err)
	k, err := DistanceKernel(c)
	require.NoError(t, err)

	full := KernelMatrix(X, ObsInRows, k, true)
	approx, err := NystromApprox(X, ObsInRows, []int{0, 1, 2, 3, 4}, k)
	require.NoError(t, err)

	assert.True(t, mat.EqualApprox(full, approx, 1e-8),
		"full-sample Nyström should reproduce the kernel matrix\nfull:\n%v\napprox:\n%v",
		mat.Formatted(full), mat.Formatted(approx))
}

func TestNystromApproxValidation(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{0, 1, 2})
	k := KernelFunc(func(x, y []float64) float64 { return 1 })

	_, err := NystromApprox(X, ObsInRows, nil, k)
	require.Error(t, err)
	var ve *errors.ValueError
	assert.True(t, errors.As(err, &ve))

	_, err = NystromApprox(X, ObsInRows, []int{0, 3}, k)
	require.Error(t, err)
	var ioor *errors.IndexOutOfRangeError
	require.True(t, errors.As(err, &ioor))
	assert.Equal(t, 3, ioor.Index)
}

func TestNystromApproxRankDeficiencyWarns(t *testing.T) {
	var captured []error
	errors.SetWarningHandler(func(w error) { captured = append(captured, w) })
	defer errors.SetWarningHandler(nil)

	X := mat.NewDense(3, 1, []float64{0, 1, 2})
	c, err := compose.NewExponentialDefault()
	require.NoError(t, err)
	k, err := DistanceKernel(c)
	require.NoError(t, err)

	// A repeated landmark makes the sub-matrix singular
	_, err = NystromApprox(X, ObsInRows, []int{0, 0, 1}, k)
	require.NoError(t, err)

	require.NotEmpty(t, captured, "rank-deficient landmarks should warn")
	var w *errors.NumericalStabilityWarning
	require.True(t, errors.As(captured[0], &w))
	assert.Equal(t, "NystromApprox", w.Operation)
	assert.Greater(t, w.Dropped, 0)
}
