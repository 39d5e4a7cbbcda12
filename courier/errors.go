package courier

import "errors"

// ErrUnknownKind is the value New panics with when a Kind outside {Drone,
// Robot, Scooter} is requested from the parameter table; this indicates a programmer error,
// never bad input data, since Kind is a closed three-way enum.
var ErrUnknownKind = errors.New("courier: unknown kind")
