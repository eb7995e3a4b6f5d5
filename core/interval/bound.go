// Package interval implements one- and two-sided numeric constraints used to
// validate kernel hyperparameters. A Bound is a single-sided constraint, an
// Interval a pair of them; membership tests respect strictness on each side.
package interval

import (
	"fmt"

	"github.com/YuminosukeSato/kermat/pkg/errors"
)

// Bound is a single-sided numeric constraint. The zero value is the null
// bound, which constrains nothing.
type Bound struct {
	value  float64
	strict bool
	// present distinguishes a real bound from the null bound, so the zero
	// value stays safe to use.
	present bool
}

// NewBound creates a bound at value. A strict bound excludes the value
// itself. The value must be finite; NaN and ±Inf yield an InvalidBoundError
// (an unbounded side is expressed with NullBound, not an infinite value).
func NewBound(value float64, strict bool) (Bound, error) {
	if !errors.IsFinite(value) {
		return Bound{}, errors.NewInvalidBoundError(value, "finite")
	}
	return Bound{value: value, strict: strict, present: true}, nil
}

// NullBound returns the bound that admits every value.
func NullBound() Bound {
	return Bound{}
}

// IsNull reports whether the bound constrains nothing.
func (b Bound) IsNull() bool {
	return !b.present
}

// Value returns the bound's literal value. Meaningless for a null bound.
func (b Bound) Value() float64 {
	return b.value
}

// Strict reports whether the bound excludes its own value.
func (b Bound) Strict() bool {
	return b.strict
}

// admitsAbove reports whether x passes this bound acting as a lower bound.
func (b Bound) admitsAbove(x float64) bool {
	if !b.present {
		return true
	}
	if b.strict {
		return x > b.value
	}
	return x >= b.value
}

// admitsBelow reports whether x passes this bound acting as an upper bound.
func (b Bound) admitsBelow(x float64) bool {
	if !b.present {
		return true
	}
	if b.strict {
		return x < b.value
	}
	return x <= b.value
}

func (b Bound) lowerString() string {
	if !b.present {
		return "(-Inf"
	}
	if b.strict {
		return fmt.Sprintf("(%g", b.value)
	}
	return fmt.Sprintf("[%g", b.value)
}

func (b Bound) upperString() string {
	if !b.present {
		return "+Inf)"
	}
	if b.strict {
		return fmt.Sprintf("%g)", b.value)
	}
	return fmt.Sprintf("%g]", b.value)
}
