package mapprovider

import "errors"

var (
	// ErrMapOpenFailure indicates a file-based map path could not be read.
	// Fatal.
	ErrMapOpenFailure = errors.New("mapprovider: could not open map file")
	// ErrMapInvalid indicates a loaded map failed reachability validation.
	// Fatal, no automatic retry.
	ErrMapInvalid = errors.New("mapprovider: map failed validation")
	// ErrMapGenExhausted indicates procedural generation could not produce
	// a valid map within maxAttempts tries. Fatal.
	ErrMapGenExhausted = errors.New("mapprovider: exhausted generation attempts")
)
