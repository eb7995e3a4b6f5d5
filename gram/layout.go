// Package gram implements the pairwise kernel-matrix engine: per-observation
// squared norms, self- and cross-Gramians, squared-Euclidean-distance
// expansion, naive kernel matrices, double centering, and Nyström low-rank
// approximation.
//
// All operations are synchronous and side-effect-free except where named
// "in place", which mutate a caller-supplied buffer the operation has
// exclusive write access to for the duration of the call. Concurrent calls
// on distinct buffers are independent; aliasing the same output buffer from
// concurrent calls is the caller's error and is not guarded internally.
package gram

// Orientation declares which axis of a data matrix holds the observations.
// It is an explicit, caller-selected tag, never auto-detected, and every
// engine operation branches on it once per call.
type Orientation int

const (
	// ObsInRows: observations are rows, features are columns (the usual
	// row-major data-set layout).
	ObsInRows Orientation = iota

	// ObsInCols: observations are columns, features are rows.
	ObsInCols
)

// String returns "rows" or "cols" for logging.
func (o Orientation) String() string {
	if o == ObsInCols {
		return "cols"
	}
	return "rows"
}
