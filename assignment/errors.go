package assignment

import "errors"

// ErrEmptyMatrix names the zero-dimension matrix case. Solve does not return
// it: for a 0x0 matrix Solve returns a nil matching, and Assign never calls
// the solver when there is nothing to assign.
var ErrEmptyMatrix = errors.New("assignment: matrix has zero dimension")
