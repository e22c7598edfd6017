// SPDX-License-Identifier: MIT

package pathfind

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/mazepath/maze"
)

// EventKind classifies a search event.
type EventKind uint8

const (
	// EventStart is emitted once before the first pop.
	EventStart EventKind = iota
	// EventEnqueue is emitted whenever a node enters a frontier.
	EventEnqueue
	// EventExpand is emitted when a cell's neighbours are examined.
	EventExpand
	// EventFound is emitted once when end is reached.
	EventFound
	// EventNoPath is emitted once when every frontier empties.
	EventNoPath
	// EventExhausted is emitted once when a budget stops the search.
	EventExhausted
)

var eventKindNames = [...]string{
	EventStart:     "start",
	EventEnqueue:   "enqueue",
	EventExpand:    "expand",
	EventFound:     "found",
	EventNoPath:    "no-path",
	EventExhausted: "exhausted",
}

// String returns the lower-case event name.
func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Terminal reports whether k ends a run.
func (k EventKind) Terminal() bool {
	return k == EventFound || k == EventNoPath || k == EventExhausted
}

// Event is one observation of a running search.
//
// Cell is the node concerned (start for EventStart, end for the terminal
// kinds). Depth is the node's distance in steps from its frontier's origin;
// for EventFound it is the path length. Cost is the value the frontier is
// ordered by (accumulated cost or heuristic), zero for FIFO/LIFO frontiers.
// Step is the number of pops performed so far.
type Event struct {
	RunID     uuid.UUID
	Algorithm Algorithm
	Kind      EventKind
	Cell      maze.Cell
	Depth     int
	Cost      float64
	Step      int
}

// Sink receives search events. Emit is called synchronously from the
// searching goroutine and must not mutate the maze.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(Event)

// Emit calls f(e).
func (f SinkFunc) Emit(e Event) { f(e) }
