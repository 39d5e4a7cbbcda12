package assignment

import (
	"github.com/hivemind-sim/hivemind/courier"
)

// Sentinel is the cost value (or above) used to mark an infeasible
// (package, slot) pairing in the cost matrix.
const Sentinel = 1e12

// halfSentinel is the threshold below which a committed Hungarian match is
// treated as real rather than an infeasible pairing the solver was merely
// forced to use to complete a perfect matching.
const halfSentinel = Sentinel / 2

// lateFactor is the per-tick-of-lateness profit penalty used in scoring.
const lateFactor = 50

// robotRangeDivisor bounds a Robot's feasible reach to rows/3.
const robotRangeDivisor = 3

// Slot is one unit of free carrying capacity on a live courier. The
// assignment solver treats each free slot as an independent matching
// column, so a courier with k free slots contributes k identical Slots.
type Slot struct {
	Courier *courier.Courier
}

// CostMatrix is the square n x n matrix fed to the Hungarian solver. Row i
// corresponds to waiting parcel i for i < NumPackages, and is a dummy
// "leave unassigned" row otherwise. Column j corresponds to Slots[j] for
// j < NumSlots, and is a dummy "leave idle" column otherwise.
type CostMatrix struct {
	n           int
	data        []float64 // row-major, n*n
	NumPackages int
	NumSlots    int
}

// newCostMatrix allocates an n x n matrix initialised to zero (the cost of
// leaving a dummy row/column unmatched).
func newCostMatrix(n, numPackages, numSlots int) *CostMatrix {
	return &CostMatrix{n: n, data: make([]float64, n*n), NumPackages: numPackages, NumSlots: numSlots}
}

// N returns the matrix dimension.
func (m *CostMatrix) N() int { return m.n }

// At returns the cost at (row, col).
func (m *CostMatrix) At(row, col int) float64 { return m.data[row*m.n+col] }

// set writes the cost at (row, col).
func (m *CostMatrix) set(row, col int, v float64) { m.data[row*m.n+col] = v }

// IsRealPair reports whether (row, col) refers to an actual parcel and slot
// rather than padding.
func (m *CostMatrix) IsRealPair(row, col int) bool {
	return row < m.NumPackages && col < m.NumSlots
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
