package compose

import (
	"math"
	"testing"
)

func relDiff(a, b float64) float64 {
	if b == 0 {
		return math.Abs(a)
	}
	return math.Abs(a-b) / math.Abs(b)
}

func TestBesselKKnownValues(t *testing.T) {
	tests := []struct {
		name string
		nu   float64
		x    float64
		want float64
	}{
		// Integer orders, small argument (series path)
		{name: "K0(1)", nu: 0, x: 1, want: 0.42102443824070834},
		{name: "K1(1)", nu: 1, x: 1, want: 0.6019072301972346},
		{name: "K0(0.5)", nu: 0, x: 0.5, want: 0.9244190712276659},
		// Integer orders, large argument (continued-fraction path)
		{name: "K0(3)", nu: 0, x: 3, want: 0.03473950438627925},
		{name: "K1(3)", nu: 1, x: 3, want: 0.04015643112819418},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := besselK(tt.nu, tt.x)
			if relDiff(got, tt.want) > 1e-8 {
				t.Errorf("besselK(%v, %v) = %v, want %v", tt.nu, tt.x, got, tt.want)
			}
		})
	}
}

func TestBesselKHalfIntegerClosedForm(t *testing.T) {
	for _, x := range []float64{0.25, 1, 2.5, 7} {
		want := math.Sqrt(math.Pi/(2*x)) * math.Exp(-x)
		if got := besselK(0.5, x); relDiff(got, want) > 1e-14 {
			t.Errorf("besselK(0.5, %v) = %v, want %v", x, got, want)
		}
		want32 := want * (1 + 1/x)
		if got := besselK(1.5, x); relDiff(got, want32) > 1e-14 {
			t.Errorf("besselK(1.5, %v) = %v, want %v", x, got, want32)
		}
		// K_{5/2}(x) = K_{1/2}(x) * (1 + 3/x + 3/x^2)
		want52 := want * (1 + 3/x + 3/(x*x))
		if got := besselK(2.5, x); relDiff(got, want52) > 1e-13 {
			t.Errorf("besselK(2.5, %v) = %v, want %v", x, got, want52)
		}
	}
}

func TestBesselKRecurrenceConsistency(t *testing.T) {
	// K_{v+1}(x) = K_{v-1}(x) + (2v/x) K_v(x) must hold across both the
	// series and continued-fraction branches, including fractional orders.
	// For v < 1 the reflected order is used on the right: K_{-u} == K_u.
	for _, nu := range []float64{0.25, 0.8, 1.3} {
		for _, x := range []float64{0.4, 1.1, 3.7, 9} {
			lhs := besselK(nu+1, x)
			rhs := besselK(math.Abs(nu-1), x) + (2*nu/x)*besselK(nu, x)
			if relDiff(lhs, rhs) > 1e-10 {
				t.Errorf("recurrence broken at nu=%v x=%v: K_{v+1}=%v, rhs=%v", nu, x, lhs, rhs)
			}
		}
	}
}

func TestBesselKDomain(t *testing.T) {
	if !math.IsNaN(besselK(1, -1)) {
		t.Error("negative argument should yield NaN")
	}
	if !math.IsNaN(besselK(1, 0)) {
		t.Error("zero argument should yield NaN")
	}
	if !math.IsNaN(besselK(-0.3, 1)) {
		t.Error("negative order should yield NaN")
	}
	if got := besselK(0.5, 800); got != 0 {
		t.Errorf("K_{1/2}(800) should underflow to 0, got %v", got)
	}
}
