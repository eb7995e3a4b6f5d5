package interval

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/kermat/pkg/errors"
)

func TestNewBoundRejectsNonFinite(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{name: "NaN", value: math.NaN()},
		{name: "+Inf", value: math.Inf(1)},
		{name: "-Inf", value: math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBound(tt.value, true)
			if err == nil {
				t.Fatalf("NewBound(%v) expected error, got nil", tt.value)
			}
			var boundErr *errors.InvalidBoundError
			if !errors.As(err, &boundErr) {
				t.Errorf("error should be castable to *InvalidBoundError, got %T", err)
			}
		})
	}
}

func TestNewEmptyIntervals(t *testing.T) {
	tests := []struct {
		name     string
		lo, hi   float64
		loStrict bool
		hiStrict bool
		wantErr  bool
	}{
		{name: "lower above upper", lo: 2, hi: 1, wantErr: true},
		{name: "equal both strict", lo: 1, hi: 1, loStrict: true, hiStrict: true, wantErr: true},
		{name: "equal lower strict", lo: 1, hi: 1, loStrict: true, wantErr: true},
		{name: "equal upper strict", lo: 1, hi: 1, hiStrict: true, wantErr: true},
		{name: "equal both nonstrict", lo: 1, hi: 1, wantErr: false},
		{name: "ordinary open", lo: 0, hi: 1, loStrict: true, hiStrict: true, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv, err := Bounded(tt.lo, tt.loStrict, tt.hi, tt.hiStrict)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Bounded(%v,%v,%v,%v) expected error", tt.lo, tt.loStrict, tt.hi, tt.hiStrict)
				}
				var emptyErr *errors.EmptyIntervalError
				if !errors.As(err, &emptyErr) {
					t.Errorf("error should be castable to *EmptyIntervalError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			// The degenerate closed interval [1, 1] contains exactly its point
			if tt.lo == tt.hi && !iv.Contains(tt.lo) {
				t.Errorf("Contains(%v) = false, want true", tt.lo)
			}
		})
	}
}

func TestIntervalContains(t *testing.T) {
	openUnit := MustBounded(0, true, 1, true)
	closedUnit := MustBounded(0, false, 1, false)
	positive := MustLowerBounded(0, true)
	nonNegative := MustLowerBounded(0, false)

	tests := []struct {
		name string
		iv   Interval
		x    float64
		want bool
	}{
		{name: "open unit excludes 0", iv: openUnit, x: 0, want: false},
		{name: "open unit excludes 1", iv: openUnit, x: 1, want: false},
		{name: "open unit admits interior", iv: openUnit, x: 0.5, want: true},
		{name: "closed unit admits 0", iv: closedUnit, x: 0, want: true},
		{name: "closed unit admits 1", iv: closedUnit, x: 1, want: true},
		{name: "closed unit excludes outside", iv: closedUnit, x: 1.0000001, want: false},
		{name: "positive excludes 0", iv: positive, x: 0, want: false},
		{name: "positive admits large", iv: positive, x: 1e300, want: true},
		{name: "non-negative admits 0", iv: nonNegative, x: 0, want: true},
		{name: "non-negative excludes -eps", iv: nonNegative, x: -1e-300, want: false},
		{name: "unbounded admits everything finite", iv: All(), x: -1e308, want: true},
		{name: "NaN never contained", iv: All(), x: math.NaN(), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.iv.Contains(tt.x); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestUpperBounded(t *testing.T) {
	iv, err := UpperBounded(3, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !iv.Lower().IsNull() {
		t.Error("lower side should be null")
	}
	if !iv.Contains(3) || !iv.Contains(-1e12) || iv.Contains(3.5) {
		t.Error("membership of (-Inf, 3] misbehaves")
	}
}

func TestIntervalString(t *testing.T) {
	tests := []struct {
		name string
		iv   Interval
		want string
	}{
		{name: "open unit", iv: MustBounded(0, true, 1, true), want: "(0, 1)"},
		{name: "half open", iv: MustBounded(0, true, 1, false), want: "(0, 1]"},
		{name: "positive", iv: MustLowerBounded(0, true), want: "(0, +Inf)"},
		{name: "unbounded", iv: All(), want: "(-Inf, +Inf)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.iv.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
