// Package courier models the fleet's mobile agents: their per-kind
// capability table and the invariant-preserving mutators the dispatcher
// uses to move, charge, load, and retire them.
//
// What:
//
//   - Kind is a three-way sum type {Drone, Robot, Scooter}; each kind
//     carries a fixed (speed, maxBattery, consumption, cost, capacity,
//     canFly) tuple.
//   - Courier holds per-agent mutable state: position, battery, carried
//     parcels, and a dead flag.
//   - No Courier plans its own route; the dispatcher supplies every
//     destination cell and calls ApplyMove.
//
// Why:
//
//   - A sum type with a parameter table is simpler and exhaustive-switch
//     safe for exactly three fixed kinds; there is no extensibility
//     requirement that would justify open interfaces.
package courier
