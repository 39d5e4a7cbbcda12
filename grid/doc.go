// Package grid models the rectangular walled map couriers move over and
// answers distance and shortest-path queries against it.
//
// What:
//
//   - Grid wraps a rectangular array of Cells, indexed (x, y) with x the row
//     and y the column; cell access is cells[x][y].
//   - Distance and FindPath answer queries for two movement models: flying
//     (Manhattan distance, walls ignored) and ground (4-connected BFS over
//     non-wall cells).
//   - Neighbor exploration order is fixed at {+x, -x, +y, -y} so that BFS
//     parent-tree reconstruction is reproducible across runs.
//
// Why:
//
//   - The assignment solver and the dispatcher's per-tick move step both need
//     a single source of truth for "how far" and "which way", without
//     duplicating wall-avoidance logic at each call site.
//
// Complexity:
//
//	Distance (flying):  O(1).
//	Distance (ground):  O(rows*cols) worst case BFS.
//	FindPath (flying):  O(d) where d is the Manhattan distance.
//	FindPath (ground):  O(rows*cols) worst case BFS + O(d) reconstruction.
package grid
