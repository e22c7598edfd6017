// SPDX-License-Identifier: MIT

package pathfind

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/mazepath/maze"
)

// searchDFS serves both dfs and depthLimited.
//
// Cells are marked visited when popped, not when pushed, so a cell may sit
// on the stack several times; the first pop wins and later copies are
// skipped. Each node carries the parent it was pushed from, and that link is
// recorded only when the node is expanded, so the parent chain always
// follows the branch that actually reached the cell.
//
// With a bound k, a node deeper than k is dropped before the goal test:
// a returned path therefore has at most k+1 cells, and end is reported
// unreachable when every route to it is longer.
//
// Neighbours are pushed in the fixed order, so they are popped in reverse
// (left, right, up, down).
func searchDFS(w *walker) {
	limit := w.depthLimit()
	s := stack.New[node]()
	visited := mapset.New[maze.Cell]()

	root := rootNode(w.start, 0)
	s.Push(root)
	w.enqueued(root)

	for s.Size() > 0 {
		if !w.tick() {
			return
		}
		n := s.Pop()
		if limit >= 0 && n.depth > limit {
			continue
		}
		if visited.Has(n.cell) {
			continue
		}
		visited.Put(n.cell)
		w.expand(n)
		if n.cell == w.end {
			w.found = true
			return
		}

		for _, nb := range w.neighbors(n.cell) {
			if visited.Has(nb) {
				continue
			}
			c := n.child(nb, 0)
			s.Push(c)
			w.enqueued(c)
		}
	}
}
