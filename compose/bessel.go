package compose

import (
	"math"
)

// Modified Bessel function of the second kind K_nu for real order nu >= 0,
// needed only by the Matérn class. The half-integer orders used by the
// common Matérn kernels (nu = 1/2, 3/2, 5/2, ...) reduce to elementary
// closed forms and take a fast path; fractional orders use Temme's series
// for small arguments and Steed's continued fraction for large ones, with
// the stable upward recurrence K_{v+1} = K_{v-1} + (2v/x) K_v lifting the
// order.

const (
	eulerGamma = 0.57721566490153286

	besselEPS   = 1e-16
	besselMAXIT = 10000
	besselXMIN  = 2.0
)

// besselK returns K_nu(x) for nu >= 0, x > 0. Returns NaN for arguments
// outside that domain and 0 on underflow at large x.
func besselK(nu, x float64) float64 {
	if x <= 0 || nu < 0 || math.IsNaN(nu) || math.IsNaN(x) {
		return math.NaN()
	}

	if h := nu - 0.5; h == math.Trunc(h) && h >= 0 {
		return besselKHalf(int(h), x)
	}

	n := int(nu + 0.5)
	mu := nu - float64(n) // mu in [-1/2, 1/2]

	var rkmu, rk1 float64
	if x < besselXMIN {
		rkmu, rk1 = temmeK(mu, x)
	} else {
		rkmu, rk1 = steedK(mu, x)
	}

	// Upward recurrence from order mu to nu
	xi2 := 2 / x
	for i := 1; i <= n; i++ {
		rkmu, rk1 = rk1, (mu+float64(i))*xi2*rk1+rkmu
	}
	return rkmu
}

// besselKHalf computes K_{h+1/2}(x) from the closed form
// K_{1/2}(x) = sqrt(pi/(2x)) e^{-x} and the upward recurrence.
func besselKHalf(h int, x float64) float64 {
	k0 := math.Sqrt(math.Pi/(2*x)) * math.Exp(-x)
	if h == 0 {
		return k0
	}
	k1 := k0 * (1 + 1/x)
	if h == 1 {
		return k1
	}
	for i := 1; i < h; i++ {
		ord := float64(i) + 0.5
		k0, k1 = k1, k0+(2*ord/x)*k1
	}
	return k1
}

// temmeK evaluates K_mu(x) and K_{mu+1}(x) for |mu| <= 1/2 and small x via
// Temme's series.
func temmeK(mu, x float64) (rkmu, rk1 float64) {
	x2 := 0.5 * x
	pimu := math.Pi * mu
	fact := 1.0
	if math.Abs(pimu) >= besselEPS {
		fact = pimu / math.Sin(pimu)
	}
	d := -math.Log(x2)
	e := mu * d
	fact2 := 1.0
	if math.Abs(e) >= besselEPS {
		fact2 = math.Sinh(e) / e
	}
	gam1, gam2, gampl, gammi := temmeGammas(mu)

	ff := fact * (gam1*math.Cosh(e) + gam2*fact2*d)
	sum := ff
	e = math.Exp(e)
	p := 0.5 * e / gampl
	q := 0.5 / (e * gammi)
	c := 1.0
	d2 := x2 * x2
	sum1 := p
	mu2 := mu * mu
	for i := 1; i <= besselMAXIT; i++ {
		fi := float64(i)
		ff = (fi*ff + p + q) / (fi*fi - mu2)
		c *= d2 / fi
		p /= fi - mu
		q /= fi + mu
		del := c * ff
		sum += del
		del1 := c * (p - fi*ff)
		sum1 += del1
		if math.Abs(del) < math.Abs(sum)*besselEPS {
			break
		}
	}
	return sum, sum1 * (2 / x)
}

// steedK evaluates K_mu(x) and K_{mu+1}(x) for |mu| <= 1/2 and x >= 2 via
// Steed's continued fraction CF2.
func steedK(mu, x float64) (rkmu, rk1 float64) {
	mu2 := mu * mu
	b := 2 * (1 + x)
	d := 1 / b
	h := d
	delh := d
	q1 := 0.0
	q2 := 1.0
	a1 := 0.25 - mu2
	q := a1
	c := a1
	a := -a1
	s := 1 + q*delh
	for i := 2; i <= besselMAXIT; i++ {
		a -= 2 * float64(i-1)
		c = -a * c / float64(i)
		qnew := (q1 - b*q2) / a
		q1 = q2
		q2 = qnew
		q += c * qnew
		b += 2
		d = 1 / (b + a*d)
		delh = (b*d - 1) * delh
		h += delh
		dels := q * delh
		s += dels
		if math.Abs(dels/s) < besselEPS {
			break
		}
	}
	h = a1 * h
	rkmu = math.Sqrt(math.Pi/(2*x)) * math.Exp(-x) / s
	rk1 = rkmu * (mu + x + 0.5 - h) / x
	return rkmu, rk1
}

// temmeGammas returns the auxiliary Gamma-function combinations of Temme's
// series: gampl = 1/Gamma(1+mu), gammi = 1/Gamma(1-mu),
// gam1 = (gammi - gampl)/(2*mu) with its mu -> 0 limit -eulerGamma, and
// gam2 = (gammi + gampl)/2.
func temmeGammas(mu float64) (gam1, gam2, gampl, gammi float64) {
	gampl = 1 / math.Gamma(1+mu)
	gammi = 1 / math.Gamma(1-mu)
	if math.Abs(mu) < 1e-8 {
		gam1 = -eulerGamma
	} else {
		gam1 = (gammi - gampl) / (2 * mu)
	}
	gam2 = (gammi + gampl) / 2
	return gam1, gam2, gampl, gammi
}
