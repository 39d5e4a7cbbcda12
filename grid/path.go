package grid

// Unreachable is the sentinel distance returned when no path exists.
const Unreachable = -1

// Distance returns the cost of moving from a to b.
//
// Steps:
//  1. a == b: distance is 0 regardless of movement model.
//  2. canFly: Manhattan distance, walls are not considered.
//  3. otherwise: length of the shortest 4-connected path over non-wall
//     cells, computed via BFS; Unreachable if no such path exists.
//
// Complexity: O(1) for flyers, O(rows*cols) worst case for ground movers.
func (g *Grid) Distance(a, b Point, canFly bool) int {
	if a == b {
		return 0
	}
	if canFly {
		return manhattan(a, b)
	}
	_, dist := g.bfs(a, b)
	return dist
}

// FindPath returns the sequence of cells to traverse from a to b, excluding
// a and including b. Returns an empty slice when a == b or when b is
// unreachable.
//
// For flyers the path decreases the X distance before the Y distance: at
// each step, change X toward b.X if unequal, else change Y toward b.Y. For
// ground movers the path is reconstructed by walking BFS parent links from
// b back to a.
//
// Complexity: O(d) for flyers where d = Manhattan(a,b); O(rows*cols) worst
// case BFS plus O(d) reconstruction for ground movers.
func (g *Grid) FindPath(a, b Point, canFly bool) []Point {
	if a == b {
		return nil
	}
	if canFly {
		return manhattanPath(a, b)
	}
	parent, dist := g.bfs(a, b)
	if dist == Unreachable {
		return nil
	}
	return reconstructPath(parent, a, b)
}

func manhattan(a, b Point) int {
	return absInt(a.X-b.X) + absInt(a.Y-b.Y)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// manhattanPath steps the X axis to completion before the Y axis, the fixed
// tie-break for flyer paths.
func manhattanPath(a, b Point) []Point {
	path := make([]Point, 0, manhattan(a, b))
	cur := a
	for cur.X != b.X {
		if cur.X < b.X {
			cur.X++
		} else {
			cur.X--
		}
		path = append(path, cur)
	}
	for cur.Y != b.Y {
		if cur.Y < b.Y {
			cur.Y++
		} else {
			cur.Y--
		}
		path = append(path, cur)
	}
	return path
}

// bfs explores 4-connected non-wall cells from a in the fixed neighbor
// order {+x, -x, +y, -y}, returning a parent map (for reconstruction) and
// the distance to b, or Unreachable if b was never visited.
func (g *Grid) bfs(a, b Point) (parent map[Point]Point, dist int) {
	parent = make(map[Point]Point)
	visited := map[Point]bool{a: true}
	depth := map[Point]int{a: 0}
	queue := []Point{a}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == b {
			return parent, depth[cur]
		}
		for _, off := range neighborOffsets {
			next := Point{X: cur.X + off.X, Y: cur.Y + off.Y}
			if visited[next] || !g.InBounds(next) || g.At(next) == Wall {
				continue
			}
			visited[next] = true
			depth[next] = depth[cur] + 1
			parent[next] = cur
			queue = append(queue, next)
		}
	}
	return parent, Unreachable
}

// reconstructPath walks parent links from b back to a, then reverses the
// result so it runs a -> b, excluding a.
func reconstructPath(parent map[Point]Point, a, b Point) []Point {
	rev := []Point{b}
	cur := b
	for cur != a {
		prev, ok := parent[cur]
		if !ok {
			return nil
		}
		rev = append(rev, prev)
		cur = prev
	}
	// rev currently runs b -> a inclusive of a; drop the trailing a and
	// reverse to get a-exclusive, b-inclusive, a -> b order.
	rev = rev[:len(rev)-1]
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}
