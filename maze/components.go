// SPDX-License-Identifier: MIT

package maze

// Components finds all contiguous regions of Passable cells under
// 4-connectivity. Components are ordered by their first cell in row-major
// order; cells within a component are in BFS discovery order.
//
// Time:   O(W·H).
// Memory: O(W·H) for seen flags and output.
func (m *Maze) Components() [][]Cell {
	seen := make([]bool, m.Size())
	var comps [][]Cell
	buf := make([]Cell, 0, 4)

	for i, s := range m.grid {
		if s != Passable || seen[i] {
			continue
		}
		// BFS to collect component
		seen[i] = true
		comp := []Cell{m.coordinate(i)}
		for qi := 0; qi < len(comp); qi++ {
			buf = m.AppendNeighbors(buf[:0], comp[qi])
			for _, n := range buf {
				ni := m.index(n)
				if !seen[ni] {
					seen[ni] = true
					comp = append(comp, n)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// FarthestFrom returns the Passable cell with the greatest BFS distance from
// c, together with that distance. Ties keep the first cell discovered.
// ok is false when c is not Passable.
//
// Time: O(W·H), Memory: O(W·H).
func (m *Maze) FarthestFrom(c Cell) (far Cell, dist int, ok bool) {
	if !m.IsPassable(c) {
		return Cell{}, 0, false
	}

	depth := make([]int, m.Size())
	for i := range depth {
		depth[i] = -1
	}
	depth[m.index(c)] = 0
	queue := []Cell{c}
	far = c
	buf := make([]Cell, 0, 4)

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		du := depth[m.index(u)]
		if du > dist {
			far, dist = u, du
		}
		buf = m.AppendNeighbors(buf[:0], u)
		for _, n := range buf {
			ni := m.index(n)
			if depth[ni] < 0 {
				depth[ni] = du + 1
				queue = append(queue, n)
			}
		}
	}

	return far, dist, true
}
