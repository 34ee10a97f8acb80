package game

// Edge membership is decided by row/column alone: a corner cell lies on both
// edges that meet there, and on no other. PlayerA starts on row 0 and must
// reach row N-1; PlayerB starts on column 0 and must reach column N-1.

func onStartEdge(player CellState, row, col int) bool {
	if player == PlayerA {
		return row == 0
	}
	return col == 0
}

func onGoalEdge(player CellState, size, row, col int) bool {
	if player == PlayerA {
		return row == size-1
	}
	return col == size-1
}

// HasConnection is the reference analyzer: a breadth-first flood from every
// stone on player's start edge.
func HasConnection(b *Board, player CellState) bool {
	if b == nil || (player != PlayerA && player != PlayerB) {
		return false
	}
	n := b.size
	visited := make([]bool, n*n)
	queue := make([]int, 0, n)
	for i := 0; i < n; i++ {
		row, col := 0, i
		if player == PlayerB {
			row, col = i, 0
		}
		idx := row*n + col
		if b.cells[idx] == player {
			visited[idx] = true
			queue = append(queue, idx)
		}
	}

	for head := 0; head < len(queue); head++ {
		idx := queue[head]
		row, col := idx/n, idx%n
		if onGoalEdge(player, n, row, col) {
			return true
		}
		for _, d := range Directions {
			r, c := row+d[0], col+d[1]
			if r < 0 || r >= n || c < 0 || c >= n {
				continue
			}
			next := r*n + c
			if !visited[next] && b.cells[next] == player {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}

// UnionFindConnection joins adjacent stones into sets, with one virtual node
// per edge, and checks whether both edges ended up in the same set.
func UnionFindConnection(b *Board, player CellState) bool {
	if b == nil || (player != PlayerA && player != PlayerB) {
		return false
	}
	n := b.size
	start, goal := n*n, n*n+1
	ds := newDisjointSet(n*n + 2)

	for idx, state := range b.cells {
		if state != player {
			continue
		}
		row, col := idx/n, idx%n
		if onStartEdge(player, row, col) {
			ds.union(idx, start)
		}
		if onGoalEdge(player, n, row, col) {
			ds.union(idx, goal)
		}
		// Forward half of the offsets is enough to visit every adjacent pair once.
		for _, d := range Directions[3:] {
			r, c := row+d[0], col+d[1]
			if r >= 0 && r < n && c >= 0 && c < n && b.cells[r*n+c] == player {
				ds.union(idx, r*n+c)
			}
		}
	}
	return ds.find(start) == ds.find(goal)
}

type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}
	return ds
}

func (ds *disjointSet) find(x int) int {
	for ds.parent[x] != x {
		ds.parent[x] = ds.parent[ds.parent[x]]
		x = ds.parent[x]
	}
	return x
}

func (ds *disjointSet) union(x, y int) {
	rx, ry := ds.find(x), ds.find(y)
	if rx == ry {
		return
	}
	switch {
	case ds.rank[rx] < ds.rank[ry]:
		ds.parent[rx] = ry
	case ds.rank[rx] > ds.rank[ry]:
		ds.parent[ry] = rx
	default:
		ds.parent[ry] = rx
		ds.rank[rx]++
	}
}
