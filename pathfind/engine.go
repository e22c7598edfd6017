// SPDX-License-Identifier: MIT

package pathfind

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/mazepath/maze"
)

// searchFunc runs one algorithm to completion on a prepared walker. It sets
// w.found on success and leaves w.exhausted set by tick on budget overrun.
type searchFunc func(w *walker)

// searches maps each selector to its implementation.
var searches = map[Algorithm]searchFunc{
	BFS:             searchBFS,
	DFS:             searchDFS,
	DepthLimited:    searchDFS,
	Dijkstra:        searchDijkstra,
	BestFirst:       searchBestFirst,
	GreedyBestFirst: searchGreedyBestFirst,
	Bidirectional:   searchBidirectional,
}

// walker encapsulates the mutable state of one search call.
type walker struct {
	m     *maze.Maze
	start maze.Cell
	end   maze.Cell
	algo  Algorithm
	opts  Options
	runID uuid.UUID

	parent map[maze.Cell]maze.Cell
	path   []maze.Cell // set directly by searches that stitch their own path
	buf    []maze.Cell

	steps     int
	budget    int
	expanded  int
	found     bool
	exhausted bool
}

// FindPath searches between the maze's own start and end endpoints.
// Returns ErrNilMaze or ErrEndpointsNotSet before any search, otherwise
// behaves as FindPathBetween.
func FindPath(m *maze.Maze, algo Algorithm, opts ...Option) (Result, error) {
	if m == nil {
		return Result{}, ErrNilMaze
	}
	start, okStart := m.Start()
	end, okEnd := m.End()
	if !okStart || !okEnd {
		return Result{}, ErrEndpointsNotSet
	}
	return FindPathBetween(m, start, end, algo, opts...)
}

// FindPathBetween runs algo from start to end over m, applying any number of
// functional Options.
//
// An unreachable end is not an error: the Result has Found=false, and
// Exhausted=true when a budget rather than an empty frontier ended the
// search. Errors are reserved for invalid input and are all detected before
// the first pop: ErrNilMaze, ErrOptionViolation, ErrUnknownAlgorithm,
// ErrEndpointNotPassable, ErrSameEndpoints.
func FindPathBetween(m *maze.Maze, start, end maze.Cell, algo Algorithm, opts ...Option) (Result, error) {
	if m == nil {
		return Result{}, ErrNilMaze
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	search, ok := searches[algo]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(algo))
	}
	if !m.IsPassable(start) {
		return Result{}, fmt.Errorf("%w: start %v", ErrEndpointNotPassable, start)
	}
	if !m.IsPassable(end) {
		return Result{}, fmt.Errorf("%w: end %v", ErrEndpointNotPassable, end)
	}
	if start == end {
		return Result{}, fmt.Errorf("%w: %v", ErrSameEndpoints, start)
	}

	w := newWalker(m, start, end, algo, o)
	w.emit(EventStart, rootNode(start, 0))
	search(w)

	return w.finish(), nil
}

// newWalker prepares scratch state and resolves budgets for one run.
func newWalker(m *maze.Maze, start, end maze.Cell, algo Algorithm, o Options) *walker {
	runID := o.RunID
	if runID == uuid.Nil {
		runID = uuid.New()
	}

	budget := o.MaxSteps
	if budget == 0 {
		budget = 4*m.Size() + 1
	}
	if algo == GreedyBestFirst {
		limit := o.IterationCap
		if limit == 0 {
			limit = m.Size()
		}
		budget = min(budget, limit)
	}

	return &walker{
		m:      m,
		start:  start,
		end:    end,
		algo:   algo,
		opts:   o,
		runID:  runID,
		parent: make(map[maze.Cell]maze.Cell),
		buf:    make([]maze.Cell, 0, 4),
		budget: budget,
	}
}

// depthLimit returns the effective dfs bound, or -1 for none.
func (w *walker) depthLimit() int {
	if w.opts.DepthLimit < 0 && w.algo == DepthLimited {
		return DefaultDepthLimit
	}
	return w.opts.DepthLimit
}

// tick accounts for one pop. It returns false, marking the run exhausted,
// once the budget is spent.
func (w *walker) tick() bool {
	if w.steps >= w.budget {
		w.exhausted = true
		return false
	}
	w.steps++
	return true
}

// neighbors returns the passable neighbours of c in the fixed order. The
// slice is reused by the next call.
func (w *walker) neighbors(c maze.Cell) []maze.Cell {
	w.buf = w.m.AppendNeighbors(w.buf[:0], c)
	return w.buf
}

// enqueued reports a node entering a frontier.
func (w *walker) enqueued(n node) {
	w.emit(EventEnqueue, n)
}

// expand records n's parent link, counts it and emits EventExpand.
func (w *walker) expand(n node) {
	if n.hasParent {
		w.parent[n.cell] = n.parent
	}
	w.expanded++
	w.emit(EventExpand, n)
}

// emit forwards an event to the configured sink, if any.
func (w *walker) emit(kind EventKind, n node) {
	if w.opts.Sink == nil {
		return
	}
	w.opts.Sink.Emit(Event{
		RunID:     w.runID,
		Algorithm: w.algo,
		Kind:      kind,
		Cell:      n.cell,
		Depth:     n.depth,
		Cost:      n.cost,
		Step:      w.steps,
	})
}

// reconstruct walks parent links from end back to start.
func (w *walker) reconstruct() []maze.Cell {
	var rev []maze.Cell
	for c := w.end; ; {
		rev = append(rev, c)
		if c == w.start {
			break
		}
		p, ok := w.parent[c]
		if !ok {
			// unreachable for a consistent parent map
			return nil
		}
		c = p
	}

	path := make([]maze.Cell, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}
	return path
}

// finish builds the Result and emits the terminal event.
func (w *walker) finish() Result {
	res := Result{
		RunID:     w.runID,
		Algorithm: w.algo,
		Expanded:  w.expanded,
	}

	if w.found {
		path := w.path
		if path == nil {
			path = w.reconstruct()
		}
		if path != nil {
			res.Path, res.Found = path, true
			w.emit(EventFound, node{cell: w.end, depth: len(path) - 1})
			return res
		}
	}

	if w.exhausted {
		res.Exhausted = true
		w.emit(EventExhausted, node{cell: w.end})
		return res
	}
	w.emit(EventNoPath, node{cell: w.end})
	return res
}
