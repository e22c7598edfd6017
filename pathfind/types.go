// SPDX-License-Identifier: MIT

package pathfind

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/mazepath/maze"
)

// Sentinel errors for path finding.
var (
	// ErrNilMaze is returned if a nil maze pointer is passed.
	ErrNilMaze = errors.New("pathfind: maze is nil")

	// ErrEndpointsNotSet is returned by FindPath when start or end is unset.
	ErrEndpointsNotSet = errors.New("pathfind: start or end not set")

	// ErrEndpointNotPassable is returned when an endpoint is outside the grid
	// or not Passable.
	ErrEndpointNotPassable = errors.New("pathfind: endpoint is not a passable cell")

	// ErrSameEndpoints is returned when start and end are the same cell.
	ErrSameEndpoints = errors.New("pathfind: start and end must differ")

	// ErrUnknownAlgorithm is returned for an unrecognized selector.
	ErrUnknownAlgorithm = errors.New("pathfind: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")
)

// Algorithm selects a search strategy. The string values are the public
// selectors accepted by ParseAlgorithm.
type Algorithm string

// Supported algorithms.
const (
	BFS             Algorithm = "bfs"
	DFS             Algorithm = "dfs"
	Dijkstra        Algorithm = "dijkstra"
	BestFirst       Algorithm = "bestFirst"
	DepthLimited    Algorithm = "depthLimited"
	Bidirectional   Algorithm = "bidirectional"
	GreedyBestFirst Algorithm = "greedyBestFirst"
)

// algorithmOrder fixes the listing order of Algorithms.
var algorithmOrder = []Algorithm{
	BFS, DFS, Dijkstra, BestFirst, DepthLimited, Bidirectional, GreedyBestFirst,
}

// Algorithms returns every supported selector in a stable order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithmOrder))
	copy(out, algorithmOrder)
	return out
}

// ParseAlgorithm validates a selector string.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(s)
	if _, ok := searches[a]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
	return a, nil
}

// String returns the selector.
func (a Algorithm) String() string { return string(a) }

// DefaultDepthLimit is the bound used by DepthLimited when no
// WithDepthLimit option is given.
const DefaultDepthLimit = 10

// Option configures a search via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds the parameters of one search.
type Options struct {
	// DepthLimit bounds dfs and depthLimited: nodes deeper than it are
	// skipped. Negative means "algorithm default" (none for dfs,
	// DefaultDepthLimit for depthLimited). Other algorithms ignore it.
	DepthLimit int

	// IterationCap bounds greedyBestFirst pops. 0 means the cell count.
	IterationCap int

	// MaxSteps bounds pops for every algorithm. 0 means 4·cells+1.
	MaxSteps int

	// Sink receives search events; nil disables instrumentation.
	Sink Sink

	// RunID tags the Result and every Event. uuid.Nil means generate one.
	RunID uuid.UUID

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with algorithm-default depth, default
// budgets, no sink and a fresh run ID per call.
func DefaultOptions() Options {
	return Options{DepthLimit: -1}
}

// WithDepthLimit bounds the depth of dfs and depthLimited.
//
//	k >= 0: skip nodes deeper than k; paths have at most k+1 cells
//	k < 0:  invalid option → ErrOptionViolation
func WithDepthLimit(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: depth limit cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.DepthLimit = k
	}
}

// WithIterationCap bounds greedyBestFirst pops. 0 restores the default;
// negative values are an ErrOptionViolation.
func WithIterationCap(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: iteration cap cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.IterationCap = n
	}
}

// WithMaxSteps bounds pops for every algorithm. 0 restores the default;
// negative values are an ErrOptionViolation.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max steps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithSink registers an event sink. A nil sink is ignored.
func WithSink(s Sink) Option {
	return func(o *Options) {
		if s != nil {
			o.Sink = s
		}
	}
}

// WithRunID fixes the run identifier instead of generating one.
func WithRunID(id uuid.UUID) Option {
	return func(o *Options) {
		o.RunID = id
	}
}

// Result is the outcome of one search.
type Result struct {
	// RunID identifies the search; every emitted Event carries it.
	RunID uuid.UUID
	// Algorithm that produced the result.
	Algorithm Algorithm
	// Path lists the cells from start to end inclusive; nil unless Found.
	Path []maze.Cell
	// Found reports whether end was reached.
	Found bool
	// Expanded counts the cells whose neighbours were examined.
	Expanded int
	// Exhausted reports that a budget stopped the search early.
	Exhausted bool
}

// Length returns the number of steps (edges) in Path, 0 when not found.
func (r Result) Length() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}
