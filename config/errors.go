package config

import "errors"

// ErrOpenFailure indicates the config path could not be opened for reading.
// Fatal: the caller must abort before any simulation state exists.
var ErrOpenFailure = errors.New("config: could not open file")
