// Package assignment selects, once per tick, which waiting parcels go to
// which courier free-capacity slots.
//
// What:
//
//   - A square cost matrix is built over (waiting parcels x free capacity
//     slots), feasibility-screened up front.
//   - A minimum-cost perfect matching (Hungarian / Kuhn-Munkres, O(n^3)) is
//     solved against that matrix to maximise total expected profit.
//   - If the Hungarian step commits nothing and parcels remain, a bounded
//     greedy fallback takes the most profitable feasible pairs.
//   - If that also commits nothing, a forced last-resort step assigns
//     whatever it can, ignoring battery and kind heuristics, once every
//     parcel has been spawned and no courier is doing anything; it
//     concedes (terminates the simulation) when some parcel cannot be
//     reached by any courier that still has free capacity.
//
// Why:
//
//   - The Hungarian step gives a globally profit-maximising assignment for
//     the tick; the greedy fallback breaks "everything is slightly
//     unprofitable" deadlocks; the forced step breaks end-of-workload
//     livelock. None of the three ever blocks the tick loop.
//
// Complexity:
//
//	BuildCostMatrix: O(n^2) where n = max(|waiting|, free capacity).
//	Hungarian:        O(n^3).
//	Greedy fallback:  O(n^2 log n) (sort feasible pairs).
//	Forced resort:    O(n^2) (nearest-reachable scan per remaining parcel).
package assignment
