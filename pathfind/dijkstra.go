// SPDX-License-Identifier: MIT

package pathfind

import (
	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/pqueue"
)

// stepCost is the uniform cost of moving to an adjacent cell.
const stepCost = 1.0

// searchDijkstra orders the frontier by accumulated cost from start.
// A neighbour's distance and parent are updated only on strict improvement,
// after which it is (re)enqueued; entries whose cost exceeds the recorded
// best are stale and skipped when popped. The parent map is maintained at
// relaxation time, so a popped cell's chain is already final.
func searchDijkstra(w *walker) {
	dist := map[maze.Cell]float64{w.start: 0}
	pq := pqueue.New(lowerCost)

	root := rootNode(w.start, 0)
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
		if n.cost > dist[n.cell] {
			continue // stale
		}
		w.expand(n)
		if n.cell == w.end {
			w.found = true
			return
		}

		alt := n.cost + stepCost
		for _, nb := range w.neighbors(n.cell) {
			if d, seen := dist[nb]; seen && alt >= d {
				continue
			}
			dist[nb] = alt
			w.parent[nb] = n.cell
			c := n.child(nb, alt)
			pq.Enqueue(c)
			w.enqueued(c)
		}
	}
}
