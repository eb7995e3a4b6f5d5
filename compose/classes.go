package compose

import (
	"math"

	"github.com/YuminosukeSato/kermat/core/interval"
	"github.com/YuminosukeSato/kermat/core/param"
)

// Shared constraint intervals for the catalogue. All are non-empty by
// construction, so the Must helpers cannot panic.
var (
	positive    = interval.MustLowerBounded(0, true)  // (0, +Inf)
	nonNegative = interval.MustLowerBounded(0, false) // [0, +Inf)
	unitRight   = interval.MustBounded(0, true, 1, false) // (0, 1]
	degreeRange = interval.MustLowerBounded(1, false) // [1, +Inf), integer
)

// machEps is the double-precision machine epsilon, used to guard the
// removable singularity of the Matérn class at z = 0.
const machEps = 2.220446049250313e-16

// intPow raises base to a non-negative integer power by repeated squaring,
// keeping polynomial kernel values exact for small inputs.
func intPow(base float64, exp int) float64 {
	result := 1.0
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

// powGamma computes z^gamma with the gamma == 1 boundary collapsed to the
// identity, avoiding a Pow call in the common un-tempered case.
func powGamma(z, gamma float64) float64 {
	if gamma == 1 {
		return z
	}
	return math.Pow(z, gamma)
}

// ---------------------------------------------------------------------------
// Exponential family
// ---------------------------------------------------------------------------

// NewGammaExponential creates the gamma-exponential class
//
//	phi(z) = exp(-alpha * z^gamma),  alpha > 0, 0 < gamma <= 1.
//
// It wraps a non-negative negative-definite inner kernel (e.g. a squared
// distance) and produces a Mercer kernel. With gamma = 1 it coincides with
// the plain exponential class.
func NewGammaExponential(alpha, gamma float64) (*Class, error) {
	pa, err := param.New("alpha", alpha, positive)
	if err != nil {
		return nil, err
	}
	pg, err := param.New("gamma", gamma, unitRight)
	if err != nil {
		return nil, err
	}
	c := &Class{
		name:     "GammaExponential",
		category: PositiveMercer,
		requires: requiresNegDefNonNeg,
		params:   []*param.HyperParameter{pa, pg},
	}
	c.phi = func(z float64) float64 {
		return math.Exp(-pa.Value() * powGamma(z, pg.Value()))
	}
	return c, nil
}

// NewGammaExponentialDefault creates the gamma-exponential class with
// alpha = 1, gamma = 1.
func NewGammaExponentialDefault() (*Class, error) {
	return NewGammaExponential(1, 1)
}

// NewExponential creates the exponential class
//
//	phi(z) = exp(-alpha * z),  alpha > 0.
func NewExponential(alpha float64) (*Class, error) {
	pa, err := param.New("alpha", alpha, positive)
	if err != nil {
		return nil, err
	}
	c := &Class{
		name:     "Exponential",
		category: PositiveMercer,
		requires: requiresNegDefNonNeg,
		params:   []*param.HyperParameter{pa},
	}
	c.phi = func(z float64) float64 {
		return math.Exp(-pa.Value() * z)
	}
	return c, nil
}

// NewExponentialDefault creates the exponential class with alpha = 1.
func NewExponentialDefault() (*Class, error) {
	return NewExponential(1)
}

// ---------------------------------------------------------------------------
// Rational family
// ---------------------------------------------------------------------------

// NewGammaRational creates the gamma-rational class
//
//	phi(z) = (1 + alpha * z^gamma)^(-beta),  alpha > 0, beta > 0, 0 < gamma <= 1.
func NewGammaRational(alpha, beta, gamma float64) (*Class, error) {
	pa, err := param.New("alpha", alpha, positive)
	if err != nil {
		return nil, err
	}
	pb, err := param.New("beta", beta, positive)
	if err != nil {
		return nil, err
	}
	pg, err := param.New("gamma", gamma, unitRight)
	if err != nil {
		return nil, err
	}
	c := &Class{
		name:     "GammaRational",
		category: PositiveMercer,
		requires: requiresNegDefNonNeg,
		params:   []*param.HyperParameter{pa, pb, pg},
	}
	c.phi = func(z float64) float64 {
		base := 1 + pa.Value()*powGamma(z, pg.Value())
		if b := pb.Value(); b == 1 {
			return 1 / base
		} else {
			return math.Pow(base, -b)
		}
	}
	return c, nil
}

// NewGammaRationalDefault creates the gamma-rational class with
// alpha = 1, beta = 1, gamma = 1.
func NewGammaRationalDefault() (*Class, error) {
	return NewGammaRational(1, 1, 1)
}

// NewRational creates the rational-quadratic style class
//
//	phi(z) = (1 + alpha * z)^(-beta),  alpha > 0, beta > 0.
func NewRational(alpha, beta float64) (*Class, error) {
	pa, err := param.New("alpha", alpha, positive)
	if err != nil {
		return nil, err
	}
	pb, err := param.New("beta", beta, positive)
	if err != nil {
		return nil, err
	}
	c := &Class{
		name:     "Rational",
		category: PositiveMercer,
		requires: requiresNegDefNonNeg,
		params:   []*param.HyperParameter{pa, pb},
	}
	c.phi = func(z float64) float64 {
		base := 1 + pa.Value()*z
		if b := pb.Value(); b == 1 {
			return 1 / base
		} else {
			return math.Pow(base, -b)
		}
	}
	return c, nil
}

// NewRationalDefault creates the rational class with alpha = 1, beta = 1.
func NewRationalDefault() (*Class, error) {
	return NewRational(1, 1)
}

// ---------------------------------------------------------------------------
// Matérn family
// ---------------------------------------------------------------------------

// NewMatern creates the Matérn class
//
//	phi(z) = 2^(1-nu)/Gamma(nu) * (sqrt(2*nu*z)/rho)^nu * K_nu(sqrt(2*nu*z)/rho)
//
// with nu > 0 and rho > 0, where K_nu is the modified Bessel function of the
// second kind. The argument is clamped below at machine epsilon before the
// Bessel ratio, so the removable singularity at z = 0 evaluates to the limit
// value 1 instead of overflowing.
func NewMatern(nu, rho float64) (*Class, error) {
	pn, err := param.New("nu", nu, positive)
	if err != nil {
		return nil, err
	}
	pr, err := param.New("rho", rho, positive)
	if err != nil {
		return nil, err
	}
	c := &Class{
		name:     "Matern",
		category: PositiveMercer,
		requires: requiresNegDefNonNeg,
		params:   []*param.HyperParameter{pn, pr},
	}
	c.phi = func(z float64) float64 {
		if z < machEps {
			z = machEps
		}
		v := pn.Value()
		d := math.Sqrt(2*v*z) / pr.Value()
		return math.Exp2(1-v) / math.Gamma(v) * math.Pow(d, v) * besselK(v, d)
	}
	return c, nil
}

// NewMaternDefault creates the Matérn class with nu = 1, rho = 1.
func NewMaternDefault() (*Class, error) {
	return NewMatern(1, 1)
}

// ---------------------------------------------------------------------------
// Exponentiated and polynomial families (Mercer inner)
// ---------------------------------------------------------------------------

// NewExponentiated creates the exponentiated class
//
//	phi(z) = exp(a*z + c),  a > 0, c >= 0,
//
// wrapping a Mercer inner kernel.
func NewExponentiated(a, c float64) (*Class, error) {
	pa, err := param.New("a", a, positive)
	if err != nil {
		return nil, err
	}
	pc, err := param.New("c", c, nonNegative)
	if err != nil {
		return nil, err
	}
	cl := &Class{
		name:     "Exponentiated",
		category: PositiveMercer,
		requires: requiresMercer,
		params:   []*param.HyperParameter{pa, pc},
	}
	cl.phi = func(z float64) float64 {
		return math.Exp(pa.Value()*z + pc.Value())
	}
	return cl, nil
}

// NewExponentiatedDefault creates the exponentiated class with a = 1, c = 0.
func NewExponentiatedDefault() (*Class, error) {
	return NewExponentiated(1, 0)
}

// NewPolynomial creates the polynomial class
//
//	phi(z) = (a*z + c)^d,  a > 0, c >= 0, d a positive integer,
//
// wrapping a Mercer inner kernel.
func NewPolynomial(a, c float64, d int) (*Class, error) {
	pa, err := param.New("a", a, positive)
	if err != nil {
		return nil, err
	}
	pc, err := param.New("c", c, nonNegative)
	if err != nil {
		return nil, err
	}
	pd, err := param.NewInteger("d", float64(d), degreeRange)
	if err != nil {
		return nil, err
	}
	cl := &Class{
		name:     "Polynomial",
		category: GeneralMercer,
		requires: requiresMercer,
		params:   []*param.HyperParameter{pa, pc, pd},
	}
	cl.phi = func(z float64) float64 {
		return intPow(pa.Value()*z+pc.Value(), int(pd.Value()))
	}
	return cl, nil
}

// NewPolynomialDefault creates the polynomial class with a = 1, c = 1, d = 3.
func NewPolynomialDefault() (*Class, error) {
	return NewPolynomial(1, 1, 3)
}

// ---------------------------------------------------------------------------
// Power and log families (negative-definite output)
// ---------------------------------------------------------------------------

// NewPower creates the power class
//
//	phi(z) = (a*z + c)^gamma,  a > 0, c >= 0, 0 < gamma <= 1,
//
// producing a non-negative negative-definite kernel.
func NewPower(a, c, gamma float64) (*Class, error) {
	pa, err := param.New("a", a, positive)
	if err != nil {
		return nil, err
	}
	pc, err := param.New("c", c, nonNegative)
	if err != nil {
		return nil, err
	}
	pg, err := param.New("gamma", gamma, unitRight)
	if err != nil {
		return nil, err
	}
	cl := &Class{
		name:     "Power",
		category: NonNegativeNegativeDefinite,
		requires: requiresNegDefNonNeg,
		params:   []*param.HyperParameter{pa, pc, pg},
	}
	cl.phi = func(z float64) float64 {
		return powGamma(pa.Value()*z+pc.Value(), pg.Value())
	}
	return cl, nil
}

// NewPowerDefault creates the power class with a = 1, c = 0, gamma = 1.
func NewPowerDefault() (*Class, error) {
	return NewPower(1, 0, 1)
}

// NewGammaLog creates the gamma-log class
//
//	phi(z) = log(1 + alpha * z^gamma),  alpha > 0, 0 < gamma <= 1.
func NewGammaLog(alpha, gamma float64) (*Class, error) {
	pa, err := param.New("alpha", alpha, positive)
	if err != nil {
		return nil, err
	}
	pg, err := param.New("gamma", gamma, unitRight)
	if err != nil {
		return nil, err
	}
	cl := &Class{
		name:     "GammaLog",
		category: NonNegativeNegativeDefinite,
		requires: requiresNegDefNonNeg,
		params:   []*param.HyperParameter{pa, pg},
	}
	cl.phi = func(z float64) float64 {
		return math.Log1p(pa.Value() * powGamma(z, pg.Value()))
	}
	return cl, nil
}

// NewGammaLogDefault creates the gamma-log class with alpha = 1, gamma = 1.
func NewGammaLogDefault() (*Class, error) {
	return NewGammaLog(1, 1)
}

// NewLog creates the log class
//
//	phi(z) = log(1 + alpha * z),  alpha > 0.
func NewLog(alpha float64) (*Class, error) {
	pa, err := param.New("alpha", alpha, positive)
	if err != nil {
		return nil, err
	}
	cl := &Class{
		name:     "Log",
		category: NonNegativeNegativeDefinite,
		requires: requiresNegDefNonNeg,
		params:   []*param.HyperParameter{pa},
	}
	cl.phi = func(z float64) float64 {
		return math.Log1p(pa.Value() * z)
	}
	return cl, nil
}

// NewLogDefault creates the log class with alpha = 1.
func NewLogDefault() (*Class, error) {
	return NewLog(1)
}

// ---------------------------------------------------------------------------
// Sigmoid family
// ---------------------------------------------------------------------------

// NewSigmoid creates the sigmoid class
//
//	phi(z) = tanh(a*z + c),  a > 0, c >= 0.
//
// The sigmoid kernel is neither Mercer nor negative-definite; it is kept for
// its historical use with large-margin classifiers.
func NewSigmoid(a, c float64) (*Class, error) {
	pa, err := param.New("a", a, positive)
	if err != nil {
		return nil, err
	}
	pc, err := param.New("c", c, nonNegative)
	if err != nil {
		return nil, err
	}
	cl := &Class{
		name:     "Sigmoid",
		category: Uncategorized,
		requires: requiresMercer,
		params:   []*param.HyperParameter{pa, pc},
	}
	cl.phi = func(z float64) float64 {
		return math.Tanh(pa.Value()*z + pc.Value())
	}
	return cl, nil
}

// NewSigmoidDefault creates the sigmoid class with a = 1, c = 1.
func NewSigmoidDefault() (*Class, error) {
	return NewSigmoid(1, 1)
}
