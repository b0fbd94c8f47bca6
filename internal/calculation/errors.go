package calculation

import "errors"

// Fatal error kinds. A call that fails with one of these returns no result;
// callers must not assume partial output exists. Non-fatal conditions are
// reported as domain.Warning values alongside a usable result instead.
var (
	// ErrMissingInput indicates a field required by the selected calculation
	// mode was absent.
	ErrMissingInput = errors.New("missing input")

	// ErrDegenerateSolve indicates the solver algebra is undefined for the
	// given inputs: zero total periods, a zero denominator, or a non-positive
	// logarithm argument.
	ErrDegenerateSolve = errors.New("degenerate solve")

	// ErrNumericDivergence indicates bisection failed to converge within the
	// iteration cap and the relaxed final check also failed.
	ErrNumericDivergence = errors.New("numeric divergence")
)
