package assignment

import (
	"sort"

	"go.uber.org/zap"

	"github.com/hivemind-sim/hivemind/grid"
	"github.com/hivemind-sim/hivemind/parcel"
)

// minGreedyProfit is the minimum acceptable profit (inclusive) for a
// greedy-fallback pairing.
const minGreedyProfit = -1000

type candidate struct {
	waitingIdx int
	slotIdx    int
	cost       float64
}

// greedyFallback enumerates feasible (parcel, slot) pairs, sorts them by
// descending profit (ascending cost, since cost == -profit), and greedily
// commits compatible pairs whose profit clears minGreedyProfit, up to
// min(len(waiting), len(slots)) commitments.
//
// Grounded on prim_kruskal.Kruskal's sort-then-greedily-take pattern and
// the best-fit-decreasing shape of a bin-packing greedy: sort candidates by
// the quantity that matters, then walk the list taking anything still
// compatible with what has already been taken.
func greedyFallback(g *grid.Grid, basePos grid.Point, waiting []*parcel.Parcel, slots []Slot, currentTick int, logger *zap.Logger) ([]*parcel.Parcel, int) {
	if len(waiting) == 0 || len(slots) == 0 {
		return waiting, 0
	}

	candidates := make([]candidate, 0, len(waiting)*len(slots))
	for i, pkg := range waiting {
		for j, slot := range slots {
			cost, feasible := pairCost(g, basePos, slot.Courier, pkg, currentTick)
			if !feasible || -cost < minGreedyProfit {
				continue
			}
			candidates = append(candidates, candidate{waitingIdx: i, slotIdx: j, cost: cost})
		}
	}
	sort.Slice(candidates, func(a, b int) bool { return candidates[a].cost < candidates[b].cost })

	usedPkg := make(map[int]bool, len(waiting))
	usedSlot := make(map[int]bool, len(slots))
	limit := minInt(len(waiting), len(slots))
	committed := 0

	for _, cand := range candidates {
		if committed >= limit {
			break
		}
		if usedPkg[cand.waitingIdx] || usedSlot[cand.slotIdx] {
			continue
		}
		pkg := waiting[cand.waitingIdx]
		slot := slots[cand.slotIdx]
		if !slot.Courier.AssignPackage(pkg) {
			continue
		}
		usedPkg[cand.waitingIdx] = true
		usedSlot[cand.slotIdx] = true
		committed++
		logger.Info("assignment: greedy fallback committed",
			zap.Int("parcel", int(pkg.ID())), zap.Int("courier", int(slot.Courier.ID())))
	}

	remaining := make([]*parcel.Parcel, 0, len(waiting)-committed)
	for i, pkg := range waiting {
		if !usedPkg[i] {
			remaining = append(remaining, pkg)
		}
	}
	return remaining, committed
}

// forcedAssign greedily hands each remaining parcel to the nearest
// free-capacity live courier that can reach it, ignoring battery and kind
// feasibility. Returns the parcels still unassigned and whether the
// simulation must concede: true once some parcel cannot be reached by any
// free-capacity courier at all.
func forcedAssign(g *grid.Grid, waiting []*parcel.Parcel, slots []Slot, logger *zap.Logger) ([]*parcel.Parcel, bool) {
	remaining := make([]*parcel.Parcel, 0, len(waiting))
	terminated := false

	for _, pkg := range waiting {
		bestSlot := -1
		bestDist := -1
		for j, slot := range slots {
			if !slot.Courier.HasFreeCapacity() {
				continue
			}
			d := g.Distance(slot.Courier.Position(), pkg.Destination(), slot.Courier.CanFly())
			if d == grid.Unreachable {
				continue
			}
			if bestSlot == -1 || d < bestDist {
				bestSlot, bestDist = j, d
			}
		}
		if bestSlot == -1 {
			terminated = true
			remaining = append(remaining, pkg)
			logger.Warn("assignment: forced step found no reachable courier, conceding",
				zap.Int("parcel", int(pkg.ID())))
			continue
		}
		courier := slots[bestSlot].Courier
		if !courier.AssignPackage(pkg) {
			remaining = append(remaining, pkg)
			continue
		}
		logger.Info("assignment: forced last resort committed",
			zap.Int("parcel", int(pkg.ID())), zap.Int("courier", int(courier.ID())))
	}
	return remaining, terminated
}
