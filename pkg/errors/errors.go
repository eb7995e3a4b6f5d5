// Package errors provides the error and warning system for the kermat
// library. It is inspired by scikit-learn's exception and warning taxonomy
// and provides structured error information for every violated precondition:
// invalid bounds, empty intervals, out-of-bounds hyperparameters,
// non-composable kernels, and shape mismatches in the Gramian engine.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// Default handler logs to standard error
		log.Printf("kermat-Warning: %v\n", w)
	}
	// zerolog warn hook (set lazily to avoid an import cycle with pkg/log)
	zerologWarnFunc func(warning error)
)

// SetWarningHandler sets the library-wide warning handler, controlling how
// non-fatal conditions such as NumericalStabilityWarning are processed.
//
// Example:
//
//	errors.SetWarningHandler(func(w error) {
//	    // ignore warnings
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc installs a zerolog-backed warning sink (set from pkg/log
// to avoid a circular import).
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn raises a warning. When a zerolog sink is installed it is preferred;
// otherwise the plain handler runs.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Bound / Interval / HyperParameter errors
//
// ===========================================================================

// InvalidBoundError reports a bound constructed from a non-finite literal
// value (NaN or ±Inf).
type InvalidBoundError struct {
	Value float64
	Side  string // "lower", "upper" or "none"
}

func (e *InvalidBoundError) Error() string {
	return fmt.Sprintf("kermat: invalid %s bound: value %v is not finite", e.Side, e.Value)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *InvalidBoundError) MarshalZerologObject(event *zerolog.Event) {
	event.Float64("value", e.Value).
		Str("side", e.Side).
		Str("type", "InvalidBoundError")
}

// NewInvalidBoundError creates a new InvalidBoundError with a stack trace.
func NewInvalidBoundError(value float64, side string) error {
	err := &InvalidBoundError{Value: value, Side: side}
	return errors.WithStack(err)
}

// EmptyIntervalError reports an interval whose two bounds admit no value,
// e.g. lower > upper, or lower == upper with at least one strict side.
type EmptyIntervalError struct {
	Lower       float64
	Upper       float64
	LowerStrict bool
	UpperStrict bool
}

func (e *EmptyIntervalError) Error() string {
	lb, ub := "[", "]"
	if e.LowerStrict {
		lb = "("
	}
	if e.UpperStrict {
		ub = ")"
	}
	return fmt.Sprintf("kermat: empty interval %s%v, %v%s admits no value", lb, e.Lower, e.Upper, ub)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *EmptyIntervalError) MarshalZerologObject(event *zerolog.Event) {
	event.Float64("lower", e.Lower).
		Float64("upper", e.Upper).
		Bool("lower_strict", e.LowerStrict).
		Bool("upper_strict", e.UpperStrict).
		Str("type", "EmptyIntervalError")
}

// NewEmptyIntervalError creates a new EmptyIntervalError with a stack trace.
func NewEmptyIntervalError(lower, upper float64, lowerStrict, upperStrict bool) error {
	err := &EmptyIntervalError{Lower: lower, Upper: upper, LowerStrict: lowerStrict, UpperStrict: upperStrict}
	return errors.WithStack(err)
}

// OutOfBoundsError reports a hyperparameter constructed or mutated with a
// value outside its interval. Validation is never skipped, including at
// construction, so a partially-built kernel class never escapes.
type OutOfBoundsError struct {
	Param    string
	Value    float64
	Interval string // human-readable interval, e.g. "(0, +Inf)"
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("kermat: hyperparameter '%s': value %v is outside %s", e.Param, e.Value, e.Interval)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *OutOfBoundsError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param", e.Param).
		Float64("value", e.Value).
		Str("interval", e.Interval).
		Str("type", "OutOfBoundsError")
}

// NewOutOfBoundsError creates a new OutOfBoundsError with a stack trace.
func NewOutOfBoundsError(param string, value float64, interval string) error {
	err := &OutOfBoundsError{Param: param, Value: value, Interval: interval}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Composition errors
//
// ===========================================================================

// NonComposableError reports an attempt to wrap an inner kernel whose
// declared properties fail the composition class's composability predicate.
type NonComposableError struct {
	Class            string
	InnerMercer      bool
	InnerNegDefinite bool
	InnerNonNegative bool
}

func (e *NonComposableError) Error() string {
	return fmt.Sprintf(
		"kermat: %s cannot compose inner kernel (mercer=%t, negative_definite=%t, non_negative=%t)",
		e.Class, e.InnerMercer, e.InnerNegDefinite, e.InnerNonNegative)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *NonComposableError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("class", e.Class).
		Bool("inner_mercer", e.InnerMercer).
		Bool("inner_negative_definite", e.InnerNegDefinite).
		Bool("inner_non_negative", e.InnerNonNegative).
		Str("type", "NonComposableError")
}

// NewNonComposableError creates a new NonComposableError with a stack trace.
func NewNonComposableError(class string, mercer, negDefinite, nonNegative bool) error {
	err := &NonComposableError{
		Class:            class,
		InnerMercer:      mercer,
		InnerNegDefinite: negDefinite,
		InnerNonNegative: nonNegative,
	}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Shape errors (Gramian engine)
//
// ===========================================================================

// DimensionError reports array or matrix arguments with incompatible shapes,
// e.g. a squared-norm vector whose length disagrees with the Gramian size.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("kermat: %s: dimension mismatch on axis %d (%s). Expected %d, got %d",
		e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "rows"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError creates a new DimensionError with a stack trace.
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// NotSquareError reports a non-square matrix passed to an operation that
// requires a square one (e.g. kernel matrix centering).
type NotSquareError struct {
	Op   string
	Rows int
	Cols int
}

func (e *NotSquareError) Error() string {
	return fmt.Sprintf("kermat: %s: matrix must be square, got %dx%d", e.Op, e.Rows, e.Cols)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *NotSquareError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("rows", e.Rows).
		Int("cols", e.Cols).
		Str("type", "NotSquareError")
}

// NewNotSquareError creates a new NotSquareError with a stack trace.
func NewNotSquareError(op string, rows, cols int) error {
	err := &NotSquareError{Op: op, Rows: rows, Cols: cols}
	return errors.WithStack(err)
}

// IndexOutOfRangeError reports a landmark or row index outside the data
// matrix it indexes into.
type IndexOutOfRangeError struct {
	Op    string
	Index int
	Size  int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("kermat: %s: index %d out of range [0, %d)", e.Op, e.Index, e.Size)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *IndexOutOfRangeError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("index", e.Index).
		Int("size", e.Size).
		Str("type", "IndexOutOfRangeError")
}

// NewIndexOutOfRangeError creates a new IndexOutOfRangeError with a stack trace.
func NewIndexOutOfRangeError(op string, index, size int) error {
	err := &IndexOutOfRangeError{Op: op, Index: index, Size: size}
	return errors.WithStack(err)
}

// ValueError reports an argument whose value is inappropriate for the
// operation, e.g. an empty landmark sample for a Nyström approximation.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("kermat: %s: %s", e.Op, e.Message)
}

// NewValueError creates a new ValueError with a stack trace.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// NotFittedError is returned when Transform or a related method is called on
// an estimator before Fit.
type NotFittedError struct {
	Estimator string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("kermat: %s.%s called before Fit", e.Estimator, e.Method)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("estimator", e.Estimator).
		Str("method", e.Method).
		Str("error_type", "NotFittedError")
}

// NewNotFittedError creates a new NotFittedError with a stack trace.
func NewNotFittedError(estimator, method string) error {
	err := &NotFittedError{Estimator: estimator, Method: method}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Warnings
//
// ===========================================================================

// NumericalStabilityWarning is raised when a numeric routine detects a
// near-degenerate input and compensates, e.g. the Nyström pseudo-inverse
// dropping singular values of a near-singular landmark sub-matrix.
type NumericalStabilityWarning struct {
	Operation string
	Detail    string
	Dropped   int // number of singular values discarded, if applicable
}

func (w *NumericalStabilityWarning) Error() string {
	if w.Dropped > 0 {
		return fmt.Sprintf("%s: %s (%d singular values dropped)", w.Operation, w.Detail, w.Dropped)
	}
	return fmt.Sprintf("%s: %s", w.Operation, w.Detail)
}

// MarshalZerologObject adds structured warning information to a zerolog event.
func (w *NumericalStabilityWarning) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", w.Operation).
		Str("detail", w.Detail).
		Int("dropped", w.Dropped).
		Str("type", "NumericalStabilityWarning")
}

// NewNumericalStabilityWarning creates a new NumericalStabilityWarning.
func NewNumericalStabilityWarning(operation, detail string, dropped int) *NumericalStabilityWarning {
	return &NumericalStabilityWarning{Operation: operation, Detail: detail, Dropped: dropped}
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches the target error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As reports whether err can be cast to the target type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an existing error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an existing error with a format string.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack attaches a stack trace to an error.
func WithStack(err error) error {
	return errors.WithStack(err)
}
