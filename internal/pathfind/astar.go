// Package pathfind implements A* search over a geom.BaseMap.
package pathfind

import "dungeoncrawl/internal/geom"

// Path is the result of a search. Steps includes both endpoints.
type Path struct {
	Success bool
	Steps   []int
}

type node struct {
	idx int
	f   float64
}

// minHeap orders open nodes by estimated total cost.
type minHeap []node

func (h *minHeap) push(n node) {
	*h = append(*h, n)
	i := len(*h) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if (*h)[parent].f <= (*h)[i].f {
			break
		}
		(*h)[parent], (*h)[i] = (*h)[i], (*h)[parent]
		i = parent
	}
}

func (h *minHeap) pop() node {
	old := *h
	n := len(old)
	top := old[0]
	old[0] = old[n-1]
	*h = old[:n-1]

	i := 0
	for {
		left := 2*i + 1
		if left >= len(*h) {
			break
		}
		smallest := left
		if right := left + 1; right < len(*h) && (*h)[right].f < (*h)[left].f {
			smallest = right
		}
		if (*h)[i].f <= (*h)[smallest].f {
			break
		}
		(*h)[i], (*h)[smallest] = (*h)[smallest], (*h)[i]
		i = smallest
	}
	return top
}

const diagonalCost = 1.45

// AStar searches from start to end using m's exits. The end tile is treated
// as enterable from any adjacent tile as long as it is not opaque, so a path
// can be found to an occupied tile (the usual case when chasing a target that
// blocks its own tile).
func AStar(start, end int, m geom.BaseMap) Path {
	if start == end {
		return Path{Success: true, Steps: []int{start}}
	}
	w, h := m.Dimensions()
	size := w * h
	if start < 0 || start >= size || end < 0 || end >= size {
		return Path{}
	}
	goal := geom.PointOf(end, w)
	heuristic := func(idx int) float64 {
		return geom.Distance(geom.PointOf(idx, w), goal)
	}

	g := map[int]float64{start: 0}
	parent := map[int]int{}
	closed := map[int]bool{}
	open := &minHeap{}
	open.push(node{idx: start, f: heuristic(start)})

	for len(*open) > 0 {
		cur := open.pop()
		if cur.idx == end {
			return Path{Success: true, Steps: reconstruct(parent, start, end)}
		}
		if closed[cur.idx] {
			continue
		}
		closed[cur.idx] = true

		exits := m.Neighbors(cur.idx)
		curPt := geom.PointOf(cur.idx, w)
		if geom.Chebyshev(curPt, goal) == 1 && !m.IsOpaque(end) {
			cost := 1.0
			if curPt.X != goal.X && curPt.Y != goal.Y {
				cost = diagonalCost
			}
			exits = append(exits, geom.Exit{Idx: end, Cost: cost})
		}

		for _, e := range exits {
			if closed[e.Idx] {
				continue
			}
			tentative := g[cur.idx] + e.Cost
			if old, ok := g[e.Idx]; ok && tentative >= old {
				continue
			}
			g[e.Idx] = tentative
			parent[e.Idx] = cur.idx
			open.push(node{idx: e.Idx, f: tentative + heuristic(e.Idx)})
		}
	}
	return Path{}
}

func reconstruct(parent map[int]int, start, end int) []int {
	steps := []int{end}
	for cur := end; cur != start; {
		cur = parent[cur]
		steps = append(steps, cur)
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}
