// SPDX-License-Identifier: MIT

package pathfind

import "github.com/katalvlaran/mazepath/maze"

// node is the single frontier element shared by every algorithm.
// parent is meaningful only when hasParent is set; depth counts steps from
// the frontier's origin; cost is the ordering key of heap frontiers.
type node struct {
	cell      maze.Cell
	parent    maze.Cell
	hasParent bool
	depth     int
	cost      float64
}

// rootNode returns the origin of a frontier.
func rootNode(c maze.Cell, cost float64) node {
	return node{cell: c, cost: cost}
}

// child returns the node reached by stepping from n to c.
func (n node) child(c maze.Cell, cost float64) node {
	return node{cell: c, parent: n.cell, hasParent: true, depth: n.depth + 1, cost: cost}
}

// lowerCost is the heap comparator: a has equal-or-higher priority when its
// cost is not greater.
func lowerCost(a, b node) bool {
	return a.cost <= b.cost
}
