// Package compose implements kernel composition classes: closed-form scalar
// transforms phi(z) that wrap an inner kernel value (a Mercer inner product
// or a negative-definite quantity such as a squared distance) to build new
// Mercer or negative-definite kernels.
//
// Each class owns 1–3 validated hyperparameters, a composability predicate
// over the inner kernel's declared properties, and fixed algebraic
// properties determined by its category, not by its parameter values.
package compose

import (
	"github.com/YuminosukeSato/kermat/core/param"
	"github.com/YuminosukeSato/kermat/pkg/errors"
)

// Properties declares the algebraic facts about a kernel that composition
// legality depends on: whether its Gramians are positive semi-definite
// (Mercer), whether it is conditionally negative-definite, and the sign
// range its values attain.
type Properties struct {
	Mercer           bool
	NegativeDefinite bool
	AttainsNegative  bool
	AttainsZero      bool
	AttainsPositive  bool
}

// NonNegative reports whether the kernel's values never go below zero.
func (p Properties) NonNegative() bool {
	return !p.AttainsNegative
}

// Category groups composition classes that share algebraic properties.
// Properties are looked up by category tag; individual classes never
// override them.
type Category int

const (
	// PositiveMercer classes produce strictly positive Mercer kernels
	// (exponential, rational, Matérn and exponentiated families).
	PositiveMercer Category = iota

	// GeneralMercer classes produce Mercer kernels whose values may take
	// any sign (polynomial family).
	GeneralMercer

	// NonNegativeNegativeDefinite classes produce non-negative,
	// conditionally negative-definite kernels (power and log families).
	NonNegativeNegativeDefinite

	// Uncategorized classes guarantee neither property (sigmoid family);
	// they are useful heuristics, not valid Mercer kernels.
	Uncategorized
)

var categoryProperties = map[Category]Properties{
	PositiveMercer: {
		Mercer:          true,
		AttainsPositive: true,
	},
	GeneralMercer: {
		Mercer:          true,
		AttainsNegative: true,
		AttainsZero:     true,
		AttainsPositive: true,
	},
	NonNegativeNegativeDefinite: {
		NegativeDefinite: true,
		AttainsZero:      true,
		AttainsPositive:  true,
	},
	Uncategorized: {
		AttainsNegative: true,
		AttainsZero:     true,
		AttainsPositive: true,
	},
}

// innerRequirement states what a class demands of the inner kernel it wraps.
type innerRequirement int

const (
	// requiresNegDefNonNeg: the inner kernel must be negative-definite and
	// non-negative valued (a squared distance fits). The families evaluated
	// over z >= 0 use this.
	requiresNegDefNonNeg innerRequirement = iota

	// requiresMercer: the inner kernel must be Mercer.
	requiresMercer
)

// Class is one composition class instance: a named scalar transform phi
// parameterized by interval-validated hyperparameters. A Class is immutable
// once constructed except for in-place hyperparameter updates through the
// validated setters; the specialized evaluation path (e.g. gamma == 1
// collapsing a power to the identity) is re-selected on every call so
// updates take effect immediately.
type Class struct {
	name     string
	category Category
	requires innerRequirement
	params   []*param.HyperParameter
	phi      func(z float64) float64
}

// Name returns the class name, e.g. "GammaExponential".
func (c *Class) Name() string {
	return c.name
}

// Category returns the class's category tag.
func (c *Class) Category() Category {
	return c.category
}

// Properties returns the fixed algebraic properties of kernels produced by
// this class, looked up by category.
func (c *Class) Properties() Properties {
	return categoryProperties[c.category]
}

// Phi evaluates the scalar transform at z using the current hyperparameter
// values. For classes that wrap a negative-definite inner kernel, phi is
// only defined for z >= 0 (fractional powers of negative bases are
// undefined); the Gramian engine guarantees this for squared distances.
func (c *Class) Phi(z float64) float64 {
	return c.phi(z)
}

// Params returns the class's hyperparameters in declaration order. The
// pointers are live: setting a value through them re-parameterizes phi.
func (c *Class) Params() []*param.HyperParameter {
	return c.params
}

// Param returns the hyperparameter with the given name, or nil when the
// class does not declare it.
func (c *Class) Param(name string) *param.HyperParameter {
	for _, p := range c.params {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// IsComposable reports whether this class may legally wrap an inner kernel
// with the given properties while preserving the class's target
// positive/negative-definiteness.
func (c *Class) IsComposable(inner Properties) bool {
	switch c.requires {
	case requiresNegDefNonNeg:
		return inner.NegativeDefinite && inner.NonNegative()
	case requiresMercer:
		return inner.Mercer
	default:
		return false
	}
}

// CheckComposable returns a NonComposableError when IsComposable is false.
// Composition must be checked before wrapping; it is never silently ignored.
func (c *Class) CheckComposable(inner Properties) error {
	if c.IsComposable(inner) {
		return nil
	}
	return errors.NewNonComposableError(c.name, inner.Mercer, inner.NegativeDefinite, inner.NonNegative())
}
