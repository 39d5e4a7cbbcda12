package assignment

import (
	"go.uber.org/zap"

	"github.com/hivemind-sim/hivemind/courier"
	"github.com/hivemind-sim/hivemind/grid"
	"github.com/hivemind-sim/hivemind/parcel"
)

// Params bundles the inputs Assign needs for one tick's assignment pass.
type Params struct {
	Grid            *grid.Grid
	BasePos         grid.Point
	Waiting         []*parcel.Parcel
	Couriers        []*courier.Courier
	CurrentTick     int
	SpawnedPackages int
	TotalPackages   int
	Logger          *zap.Logger
}

// Outcome reports the result of one Assign call.
type Outcome struct {
	// Waiting is the updated waiting pool: parcels not committed this tick.
	Waiting []*parcel.Parcel
	// Committed counts parcels newly handed to a courier this tick.
	Committed int
	// Terminated is true once the forced last-resort step concedes: some
	// waiting parcel cannot be reached by any free-capacity courier even
	// ignoring battery and kind, and the workload has fully spawned with no
	// courier in flight.
	Terminated bool
}

// Assign runs the tick's assignment pipeline: Hungarian matching first,
// falling back to a bounded greedy pass if Hungarian commits nothing, and
// finally a forced last-resort pass only once the whole fleet is idle and
// every parcel has spawned.
func Assign(p Params) Outcome {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(p.Waiting) == 0 {
		return Outcome{Waiting: p.Waiting}
	}

	slots := freeSlots(p.Couriers)
	if len(slots) == 0 {
		return Outcome{Waiting: p.Waiting}
	}

	matrix := BuildCostMatrix(p.Grid, p.BasePos, p.Waiting, slots, p.CurrentTick)
	rowToCol := Solve(matrix)

	taken := make(map[int]bool, len(p.Waiting))
	committed := 0
	for i, j := range rowToCol {
		if !matrix.IsRealPair(i, j) || matrix.At(i, j) >= halfSentinel {
			continue
		}
		pkg := p.Waiting[i]
		slot := slots[j]
		if slot.Courier.AssignPackage(pkg) {
			taken[i] = true
			committed++
			logger.Info("assignment: hungarian committed",
				zap.Int("parcel", int(pkg.ID())), zap.Int("courier", int(slot.Courier.ID())))
		}
	}
	remaining := removeTaken(p.Waiting, taken)

	if committed == 0 && len(remaining) > 0 {
		var fallbackCommitted int
		remaining, fallbackCommitted = greedyFallback(p.Grid, p.BasePos, remaining, freeSlots(p.Couriers), p.CurrentTick, logger)
		committed += fallbackCommitted
	}

	terminated := false
	if committed == 0 && len(remaining) > 0 && p.SpawnedPackages == p.TotalPackages && !fleetActive(p.Couriers, p.BasePos) {
		remaining, terminated = forcedAssign(p.Grid, remaining, freeSlots(p.Couriers), logger)
	}

	return Outcome{Waiting: remaining, Committed: committed, Terminated: terminated}
}

// freeSlots expands each live courier's free capacity into one Slot per
// unit, so the matching treats capacity units as independent columns.
func freeSlots(couriers []*courier.Courier) []Slot {
	var slots []Slot
	for _, c := range couriers {
		if c.Dead() {
			continue
		}
		for k := 0; k < c.FreeCapacity(); k++ {
			slots = append(slots, Slot{Courier: c})
		}
	}
	return slots
}

// removeTaken returns waiting with the indices marked in taken dropped,
// preserving order.
func removeTaken(waiting []*parcel.Parcel, taken map[int]bool) []*parcel.Parcel {
	out := make([]*parcel.Parcel, 0, len(waiting)-len(taken))
	for i, p := range waiting {
		if !taken[i] {
			out = append(out, p)
		}
	}
	return out
}

// fleetActive reports whether any live courier is carrying a parcel or away
// from base; the forced last-resort step only fires once the fleet is
// otherwise fully idle.
func fleetActive(couriers []*courier.Courier, basePos grid.Point) bool {
	for _, c := range couriers {
		if c.Dead() {
			continue
		}
		if len(c.Packages()) > 0 || c.Position() != basePos {
			return true
		}
	}
	return false
}
