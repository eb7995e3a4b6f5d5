// Package param provides named, interval-constrained hyperparameters for
// kernel composition classes. Every mutation revalidates against the
// parameter's interval, so an out-of-range value can never be observed.
package param

import (
	"fmt"
	"math"

	"github.com/YuminosukeSato/kermat/core/interval"
	"github.com/YuminosukeSato/kermat/pkg/errors"
)

// HyperParameter is a named scalar tied to an interval. It is owned by
// exactly one composition class; the class hands out *HyperParameter so
// callers can tune it in place through the validated setter.
type HyperParameter struct {
	name     string
	value    float64
	interval interval.Interval
	// integral marks discrete parameters such as a polynomial degree;
	// fractional values are rejected on every mutation.
	integral bool
}

// New creates a hyperparameter with an initial value. The initial value is
// validated against the interval like any other mutation; an out-of-range
// initial value yields an OutOfBoundsError and no parameter.
func New(name string, initial float64, iv interval.Interval) (*HyperParameter, error) {
	if !iv.Contains(initial) {
		return nil, errors.NewOutOfBoundsError(name, initial, iv.String())
	}
	return &HyperParameter{name: name, value: initial, interval: iv}, nil
}

// NewInteger creates a discrete hyperparameter. In addition to the interval,
// every value must be a mathematical integer (stored as float64 so the
// parameter surface stays uniform).
func NewInteger(name string, initial float64, iv interval.Interval) (*HyperParameter, error) {
	p := &HyperParameter{name: name, interval: iv, integral: true}
	if !p.CheckValue(initial) {
		return nil, errors.NewOutOfBoundsError(name, initial, p.constraintString())
	}
	p.value = initial
	return p, nil
}

// Name returns the parameter's name.
func (p *HyperParameter) Name() string {
	return p.name
}

// Value returns the current value.
func (p *HyperParameter) Value() float64 {
	return p.value
}

// Interval returns the constraint interval.
func (p *HyperParameter) Interval() interval.Interval {
	return p.interval
}

// SetValue replaces the stored value after validating it against the
// interval. On an OutOfBoundsError the stored value is untouched; there are
// no partial-write states.
func (p *HyperParameter) SetValue(v float64) error {
	if !p.CheckValue(v) {
		return errors.NewOutOfBoundsError(p.name, v, p.constraintString())
	}
	p.value = v
	return nil
}

// CheckValue reports whether v would be accepted by SetValue, letting
// callers validate before committing.
func (p *HyperParameter) CheckValue(v float64) bool {
	if p.integral && v != math.Trunc(v) {
		return false
	}
	return p.interval.Contains(v)
}

func (p *HyperParameter) constraintString() string {
	if p.integral {
		return p.interval.String() + " (integer)"
	}
	return p.interval.String()
}

// String renders the parameter for diagnostics, e.g. "alpha=2 in (0, +Inf)".
func (p *HyperParameter) String() string {
	return fmt.Sprintf("%s=%g in %s", p.name, p.value, p.interval)
}
