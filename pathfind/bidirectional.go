// SPDX-License-Identifier: MIT

package pathfind

import (
	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/mazepath/maze"
)

// frontier is one side of a bidirectional search: a FIFO queue plus the
// depth and parent of every cell this side has discovered, relative to its
// own origin.
type frontier struct {
	origin maze.Cell
	q      *queue.Queue[node]
	depth  map[maze.Cell]int
	parent map[maze.Cell]maze.Cell
	level  int // depth of the nodes currently at the head of q
}

func newFrontier(w *walker, origin maze.Cell) *frontier {
	f := &frontier{
		origin: origin,
		q:      queue.New[node](),
		depth:  map[maze.Cell]int{origin: 0},
		parent: make(map[maze.Cell]maze.Cell),
	}
	root := rootNode(origin, 0)
	f.q.Enqueue(root)
	w.enqueued(root)
	return f
}

// searchBidirectional runs BFS from both endpoints. The sides take turns,
// each turn expanding one complete BFS level of one side. The search stops
// at the first cell discovered by one side that the other side has already
// recorded: with whole levels per turn that meeting cell lies on a shortest
// path, so the result has the same length as bfs.
//
// Adjacent endpoints meet on the first turn, when the forward side
// discovers end.
func searchBidirectional(w *walker) {
	fwd := newFrontier(w, w.start)
	bwd := newFrontier(w, w.end)

	for !fwd.q.Empty() && !bwd.q.Empty() {
		for _, sides := range [2][2]*frontier{{fwd, bwd}, {bwd, fwd}} {
			meet, ok := w.expandLevel(sides[0], sides[1])
			if w.exhausted {
				return
			}
			if ok {
				w.path = stitch(fwd, bwd, meet)
				w.found = true
				return
			}
			if sides[0].q.Empty() {
				return
			}
		}
	}
}

// expandLevel pops every node of f's current level, discovering their
// neighbours. It returns the first discovered cell already recorded by
// other.
func (w *walker) expandLevel(f, other *frontier) (maze.Cell, bool) {
	for !f.q.Empty() && f.q.Peek().depth == f.level {
		if !w.tick() {
			return maze.Cell{}, false
		}
		n := f.q.Dequeue()
		w.expanded++
		w.emit(EventExpand, n)

		for _, nb := range w.neighbors(n.cell) {
			if _, seen := f.depth[nb]; seen {
				continue
			}
			f.depth[nb] = n.depth + 1
			f.parent[nb] = n.cell
			if _, met := other.depth[nb]; met {
				return nb, true
			}
			c := n.child(nb, 0)
			f.q.Enqueue(c)
			w.enqueued(c)
		}
	}
	f.level++
	return maze.Cell{}, false
}

// stitch joins the forward chain start→meet with the backward chain
// meet→end. meet appears exactly once.
func stitch(fwd, bwd *frontier, meet maze.Cell) []maze.Cell {
	var head []maze.Cell
	for c := meet; ; c = fwd.parent[c] {
		head = append(head, c)
		if c == fwd.origin {
			break
		}
	}
	path := make([]maze.Cell, 0, len(head)+bwd.depth[meet])
	for i := len(head) - 1; i >= 0; i-- {
		path = append(path, head[i])
	}
	for c := meet; c != bwd.origin; {
		c = bwd.parent[c]
		path = append(path, c)
	}
	return path
}
