// SPDX-License-Identifier: MIT

package solvers

import "fmt"

// Status is the solver state. CG moves Init → Iterating → Converged or
// Exceeded; Direct reports Converged or Failure.
type Status int

const (
	StatusInit Status = iota
	StatusIterating
	StatusConverged
	StatusExceeded // max iterations spent without meeting the tolerance
	StatusFailure  // breakdown or backend error; see Result.Err
)

var statusNames = [...]string{
	StatusInit:      "init",
	StatusIterating: "iterating",
	StatusConverged: "converged",
	StatusExceeded:  "exceeded",
	StatusFailure:   "failure",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}

	return statusNames[s]
}

// Result reports how a solve ended. Non-convergence is a Status, not an error.
type Result struct {
	Status     Status
	Iterations int     // CG steps taken (0 for Direct)
	Residual   float64 // last squared residual norm rᵀr (CG only)
	Err        error   // set only with StatusFailure
}

// OK reports whether the solve produced a solution.
func (r Result) OK() bool { return r.Status == StatusConverged }
