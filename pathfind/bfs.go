// SPDX-License-Identifier: MIT

package pathfind

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/mazepath/maze"
)

// searchBFS explores cells in non-decreasing distance from start. Cells are
// marked visited when enqueued, so each is enqueued at most once; the search
// stops the first time end is dequeued.
func searchBFS(w *walker) {
	q := queue.New[node]()
	visited := mapset.New[maze.Cell]()

	root := rootNode(w.start, 0)
	visited.Put(w.start)
	q.Enqueue(root)
	w.enqueued(root)

	for !q.Empty() {
		if !w.tick() {
			return
		}
		n := q.Dequeue()
		w.expand(n)
		if n.cell == w.end {
			w.found = true
			return
		}

		for _, nb := range w.neighbors(n.cell) {
			if visited.Has(nb) {
				continue
			}
			visited.Put(nb)
			c := n.child(nb, 0)
			q.Enqueue(c)
			w.enqueued(c)
		}
	}
}
