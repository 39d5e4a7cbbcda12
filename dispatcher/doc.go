// Package dispatcher owns the simulation's live state and drives its tick
// loop: spawn packages, adaptively spawn couriers, run the per-tick
// assignment solver, move and act every live courier, then advance the
// clock. World state lives entirely on the Engine value, not in package
// globals; callers hold it by unique reference.
package dispatcher
