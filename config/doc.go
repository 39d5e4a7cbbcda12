// Package config loads the simulation's plain-text parameter file:
// newline-separated records, each a key token (with a trailing colon)
// followed by whitespace-separated values. Unknown keys are ignored.
package config
