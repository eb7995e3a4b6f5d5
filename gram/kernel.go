package gram

import (
	"github.com/YuminosukeSato/kermat/compose"
)

// Kernel evaluates a scalar kernel between two observation vectors. The
// engine only depends on this contract, never on a kernel's internals.
type Kernel interface {
	Eval(x, y []float64) float64
}

// KernelFunc adapts a plain function to the Kernel interface.
type KernelFunc func(x, y []float64) float64

// Eval implements Kernel.
func (f KernelFunc) Eval(x, y []float64) float64 {
	return f(x, y)
}

// Canonical inner-kernel property sets for the two base pairwise functions
// the engine supplies.
var (
	// SquaredDistanceProperties describes the squared Euclidean distance:
	// conditionally negative-definite and non-negative, attaining zero on
	// the diagonal and positive values elsewhere.
	SquaredDistanceProperties = compose.Properties{
		NegativeDefinite: true,
		AttainsZero:      true,
		AttainsPositive:  true,
	}

	// DotProductProperties describes the Euclidean inner product: a Mercer
	// kernel attaining values of any sign.
	DotProductProperties = compose.Properties{
		Mercer:          true,
		AttainsNegative: true,
		AttainsZero:     true,
		AttainsPositive: true,
	}
)

// DistanceKernel lifts a composition class over the squared Euclidean
// distance: k(x, y) = phi(‖x−y‖²). The distance is non-negative, so the
// class's domain requirement on z holds by construction. It returns a
// NonComposableError when the class cannot wrap a squared distance.
func DistanceKernel(c *compose.Class) (Kernel, error) {
	if err := c.CheckComposable(SquaredDistanceProperties); err != nil {
		return nil, err
	}
	return KernelFunc(func(x, y []float64) float64 {
		s := 0.0
		for i := range x {
			d := x[i] - y[i]
			s += d * d
		}
		return c.Phi(s)
	}), nil
}

// DotKernel lifts a composition class over the Euclidean inner product:
// k(x, y) = phi(⟨x, y⟩). It returns a NonComposableError when the class
// cannot wrap a Mercer inner kernel.
func DotKernel(c *compose.Class) (Kernel, error) {
	if err := c.CheckComposable(DotProductProperties); err != nil {
		return nil, err
	}
	return KernelFunc(func(x, y []float64) float64 {
		s := 0.0
		for i := range x {
			s += x[i] * y[i]
		}
		return c.Phi(s)
	}), nil
}
