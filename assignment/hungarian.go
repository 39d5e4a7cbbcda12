package assignment

import "math"

// Solve computes a minimum-cost perfect matching over m (classical
// Kuhn-Munkres / Hungarian algorithm using row/column potentials), and
// returns rowToCol where rowToCol[i] is the column matched to row i.
//
// Steps (per the standard potential-based formulation):
//  1. Maintain row potentials u and column potentials v, and for each
//     column j the row p[j] currently matched to it (0 means unmatched,
//     using 1-indexed bookkeeping internally).
//  2. For each row i in turn, grow an alternating tree from a virtual
//     column 0 until an augmenting path to an unmatched column is found,
//     using Dijkstra-like slack relaxation (minv/way) to pick the next
//     column to add to the tree.
//  3. Once found, flip the matching along the discovered augmenting path.
//  4. After all rows are processed, read off the final row-to-column
//     matching from p.
//
// Complexity: O(n^3) time, O(n^2) memory.
func Solve(m *CostMatrix) []int {
	n := m.N()
	if n == 0 {
		return nil
	}

	const inf = math.MaxFloat64

	u := make([]float64, n+1)
	v := make([]float64, n+1)
	p := make([]int, n+1) // p[j] = row (1-indexed) assigned to column j
	way := make([]int, n+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]float64, n+1)
		used := make([]bool, n+1)
		for j := range minv {
			minv[j] = inf
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := -1
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := m.At(i0-1, j-1) - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	rowToCol := make([]int, n)
	for j := 1; j <= n; j++ {
		if p[j] != 0 {
			rowToCol[p[j]-1] = j - 1
		}
	}
	return rowToCol
}
