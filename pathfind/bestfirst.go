// SPDX-License-Identifier: MIT

package pathfind

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/pqueue"
)

// searchBestFirst orders the frontier by Euclidean distance to end.
func searchBestFirst(w *walker) {
	heuristicSearch(w, Euclidean)
}

// searchGreedyBestFirst orders the frontier by Manhattan distance to end.
// Its pops are bounded by the iteration cap folded into w.budget.
func searchGreedyBestFirst(w *walker) {
	heuristicSearch(w, Manhattan)
}

// heuristicSearch is the shared greedy loop: the frontier is ordered by h
// alone, with no accumulated cost, so the result is not necessarily
// shortest. Cells are marked visited when popped, and the parent link comes
// from the popped node.
func heuristicSearch(w *walker, h Heuristic) {
	pq := pqueue.New(lowerCost)
	visited := mapset.New[maze.Cell]()

	root := rootNode(w.start, h(w.start, w.end))
	pq.Enqueue(root)
	w.enqueued(root)

	for !pq.IsEmpty() {
		if !w.tick() {
			return
		}
		n, err := pq.Dequeue()
		if err != nil {
			return
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
			c := n.child(nb, h(nb, w.end))
			pq.Enqueue(c)
			w.enqueued(c)
		}
	}
}
