// Package log defines standard attribute keys for kernel-method operations.
//
// Using these keys consistently enables filtering and analysis of logs across
// the library. Keys follow a hierarchical naming convention (e.g.
// "kernel.name", "data.samples").

package log

// Kernel and operation context.
const (
	// KernelNameKey identifies the composition class or kernel in use.
	// Examples: "Exponential", "GammaRational", "Matern"
	KernelNameKey = "kernel.name"

	// OperationKey specifies the engine operation being performed.
	// Standard values: "gramian", "cross_gramian", "kernel_matrix",
	// "squared_distance", "center", "nystrom"
	OperationKey = "kernel.operation"

	// ComponentKey identifies the package performing the operation.
	// Examples: "gram", "compose", "preprocessing"
	ComponentKey = "kernel.component"
)

// Data shape and layout.
const (
	// SamplesKey is the number of observations in the data matrix.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of features per observation.
	FeaturesKey = "data.features"

	// OrientationKey records whether observations are stored in rows or
	// columns of the data matrix. Values: "rows", "cols".
	OrientationKey = "data.orientation"

	// LandmarksKey is the number of landmark rows in a Nyström approximation.
	LandmarksKey = "nystrom.landmarks"

	// RankKey is the effective rank retained by a pseudo-inverse.
	RankKey = "nystrom.rank"
)

// Performance.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error and warning context.
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	// Examples: "OUT_OF_BOUNDS", "EMPTY_INTERVAL", "NOT_SQUARE"
	ErrorCodeKey = "error.code"

	// WarningTypeKey identifies the warning type emitted through the
	// pkg/errors warning system.
	WarningTypeKey = "warning.type"
)
