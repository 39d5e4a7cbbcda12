package assignment

import (
	"github.com/hivemind-sim/hivemind/courier"
	"github.com/hivemind-sim/hivemind/grid"
	"github.com/hivemind-sim/hivemind/parcel"
)

// BuildCostMatrix constructs the square cost matrix over waiting parcels and
// free courier capacity slots.
//
// Steps:
//  1. n = max(len(waiting), len(slots)); allocate an n x n matrix.
//  2. For each real (i, j) pair, compute feasibility and, if feasible, the
//     negated profit score; infeasible pairs get Sentinel.
//  3. Dummy rows/columns (padding to n) are left at their zero-initialised
//     cost, representing "leave unassigned" / "leave idle".
//
// Complexity: O(n^2) matrix cells, each O(rows*cols) worst case for a
// ground-mover distance query, so O(n^2 * rows * cols) in the fully general
// case. Distances are not cached, here or by Assign.
func BuildCostMatrix(g *grid.Grid, basePos grid.Point, waiting []*parcel.Parcel, slots []Slot, currentTick int) *CostMatrix {
	n := maxInt(len(waiting), len(slots))
	m := newCostMatrix(n, len(waiting), len(slots))
	if n == 0 {
		return m
	}

	for i := 0; i < len(waiting); i++ {
		p := waiting[i]
		for j := 0; j < len(slots); j++ {
			c := slots[j].Courier
			cost, feasible := pairCost(g, basePos, c, p, currentTick)
			if !feasible {
				m.set(i, j, Sentinel)
				continue
			}
			m.set(i, j, cost)
		}
	}
	return m
}

// pairCost evaluates one (courier, parcel) pairing, returning the negated
// profit score and whether the pairing is feasible at all.
func pairCost(g *grid.Grid, basePos grid.Point, c *courier.Courier, p *parcel.Parcel, currentTick int) (cost float64, feasible bool) {
	canFly := c.CanFly()
	d := g.Distance(c.Position(), p.Destination(), canFly)
	if d == grid.Unreachable {
		return 0, false
	}
	if c.Kind() == courier.Drone && p.Reward() < 300 {
		return 0, false
	}
	if c.Kind() == courier.Robot && d > g.Rows()/robotRangeDivisor {
		return 0, false
	}
	dReturn := g.Distance(p.Destination(), basePos, canFly)
	if dReturn == grid.Unreachable {
		return 0, false
	}
	ticksThere := ceilDiv(d, c.Speed())
	ticksBack := ceilDiv(dReturn, c.Speed())
	if c.Battery() < (ticksThere+ticksBack)*c.Consumption() {
		return 0, false
	}

	lateness := maxInt(0, currentTick+ticksThere-p.Deadline())
	score := p.Reward() - ticksThere*c.Cost() - lateFactor*lateness
	return float64(-score), true
}
