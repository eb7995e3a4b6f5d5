package interval

import (
	"fmt"

	"github.com/YuminosukeSato/kermat/pkg/errors"
)

// Interval is a pair of bounds. Each side is independently a real or null
// bound. Construction rejects intervals that admit no value, so every
// Interval in circulation is non-empty. The zero value is the unbounded
// interval.
type Interval struct {
	lower Bound
	upper Bound
}

// New creates an interval from a lower and an upper bound. It returns an
// EmptyIntervalError when the two sides admit no value: lower > upper, or
// lower == upper with at least one strict side.
func New(lower, upper Bound) (Interval, error) {
	if !lower.IsNull() && !upper.IsNull() {
		lo, hi := lower.Value(), upper.Value()
		if lo > hi || (lo == hi && (lower.Strict() || upper.Strict())) {
			return Interval{}, errors.NewEmptyIntervalError(lo, hi, lower.Strict(), upper.Strict())
		}
	}
	return Interval{lower: lower, upper: upper}, nil
}

// All returns the unbounded interval.
func All() Interval {
	return Interval{}
}

// LowerBounded returns the interval bounded below at v with the upper side
// null: (v, +Inf) when strict, [v, +Inf) otherwise.
func LowerBounded(v float64, strict bool) (Interval, error) {
	b, err := NewBound(v, strict)
	if err != nil {
		return Interval{}, err
	}
	return Interval{lower: b}, nil
}

// UpperBounded returns the interval bounded above at v with the lower side
// null: (-Inf, v) when strict, (-Inf, v] otherwise.
func UpperBounded(v float64, strict bool) (Interval, error) {
	b, err := NewBound(v, strict)
	if err != nil {
		return Interval{}, err
	}
	return Interval{upper: b}, nil
}

// Bounded returns the two-sided interval between lo and hi, strictness given
// per side.
func Bounded(lo float64, loStrict bool, hi float64, hiStrict bool) (Interval, error) {
	lower, err := NewBound(lo, loStrict)
	if err != nil {
		return Interval{}, err
	}
	upper, err := NewBound(hi, hiStrict)
	if err != nil {
		return Interval{}, err
	}
	return New(lower, upper)
}

// MustLowerBounded is LowerBounded for literal arguments known to be finite.
// It panics on error and exists for package-level interval tables.
func MustLowerBounded(v float64, strict bool) Interval {
	iv, err := LowerBounded(v, strict)
	if err != nil {
		panic(err)
	}
	return iv
}

// MustBounded is Bounded for literal arguments known to form a non-empty
// interval. It panics on error.
func MustBounded(lo float64, loStrict bool, hi float64, hiStrict bool) Interval {
	iv, err := Bounded(lo, loStrict, hi, hiStrict)
	if err != nil {
		panic(err)
	}
	return iv
}

// Contains reports whether x lies inside the interval, respecting strictness
// on both sides. A null side always passes. NaN is never contained.
func (iv Interval) Contains(x float64) bool {
	if x != x { // NaN
		return false
	}
	return iv.lower.admitsAbove(x) && iv.upper.admitsBelow(x)
}

// Lower returns the lower bound.
func (iv Interval) Lower() Bound {
	return iv.lower
}

// Upper returns the upper bound.
func (iv Interval) Upper() Bound {
	return iv.upper
}

// String renders the interval in mathematical notation, e.g. "(0, 1]" or
// "[3, +Inf)".
func (iv Interval) String() string {
	return fmt.Sprintf("%s, %s", iv.lower.lowerString(), iv.upper.upperString())
}
