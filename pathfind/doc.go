// SPDX-License-Identifier: MIT

// Package pathfind finds paths between two cells of a maze.Maze using one of
// seven interchangeable search algorithms.
//
// What
//
//   - FindPath uses the maze's own endpoints, FindPathBetween takes explicit
//     ones. Both return a Result: the ordered cells from start to end with
//     Found=true, or Found=false when no path exists or a budget ran out.
//   - Neighbours are enumerated in the fixed order down, up, right, left.
//     Order-sensitive algorithms (dfs, depthLimited, the best-first pair on
//     ties) produce reproducible paths because of it.
//   - Algorithms, by selector:
//   - "bfs":             FIFO, visited at enqueue. Shortest.
//   - "dfs":             LIFO, visited at pop. Optional depth bound.
//   - "depthLimited":    dfs with a default bound of 10.
//   - "dijkstra":        heap by accumulated cost, strict relaxation. Shortest.
//   - "bestFirst":       heap by Euclidean distance to end, no accumulated cost.
//   - "greedyBestFirst": heap by Manhattan distance, iteration cap.
//   - "bidirectional":   two FIFO frontiers expanding one level per turn. Shortest.
//
// Budgets
//
//	Every search counts frontier pops. WithMaxSteps bounds all algorithms
//	(default 4·cells+1, unreachable by a correct search on a finite grid);
//	greedyBestFirst is additionally bounded by WithIterationCap (default
//	cells). Running out is reported as Found=false with Exhausted=true.
//
// Instrumentation
//
//	WithSink receives Events (start, enqueue, expand, found, no-path,
//	exhausted) tagged with the run's UUID. NewLogrusSink forwards them to a
//	logrus logger. Sinks observe only; results never depend on them.
//
// Concurrency
//
//	Each call owns its scratch state; any number of searches may read the
//	same maze concurrently as long as nobody mutates it.
//
// Complexity (N = cells)
//
//   - bfs, dfs, depthLimited, bidirectional: O(N) time and memory.
//   - dijkstra, bestFirst, greedyBestFirst:  O(N log N) time, O(N) memory.
//
// Errors
//
//   - ErrNilMaze              if the maze pointer is nil.
//   - ErrEndpointsNotSet      if FindPath is called on a maze without both endpoints.
//   - ErrEndpointNotPassable  if an endpoint is out of bounds or Blocked.
//   - ErrSameEndpoints        if start equals end.
//   - ErrUnknownAlgorithm     for an unrecognized selector.
//   - ErrOptionViolation      for an invalid Option (e.g. negative depth limit).
package pathfind
