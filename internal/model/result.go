// Package model defines the data structures for mutation report evaluation.
package model

// Result is the outcome of a quality-gate evaluation.
type Result int

const (
	// StatusSuccess indicates the build passed the gate.
	StatusSuccess Result = iota
	// StatusUnstable indicates the build passed but with warnings.
	StatusUnstable
	// StatusFailure indicates the build failed the gate.
	StatusFailure
)

func (r Result) String() string {
	switch r {
	case StatusSuccess:
		return "SUCCESS"
	case StatusUnstable:
		return "UNSTABLE"
	case StatusFailure:
		return "FAILURE"
	default:
		return "UNKNOWN"
	}
}

// WorseThan reports whether r is more severe than other.
// Severity is total: SUCCESS < UNSTABLE < FAILURE.
func (r Result) WorseThan(other Result) bool {
	return r > other
}

// Worst returns the most severe of the given results, or StatusSuccess
// when none are given.
func Worst(results ...Result) Result {
	worst := StatusSuccess
	for _, result := range results {
		if result.WorseThan(worst) {
			worst = result
		}
	}

	return worst
}
