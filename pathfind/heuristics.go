// SPDX-License-Identifier: MIT

package pathfind

import (
	"math"

	"github.com/katalvlaran/mazepath/maze"
)

// Heuristic estimates the remaining distance from a to b.
type Heuristic func(a, b maze.Cell) float64

// Euclidean returns the straight-line distance √(Δx²+Δy²). Used by bestFirst.
func Euclidean(a, b maze.Cell) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// Manhattan returns |Δx|+|Δy|. Used by greedyBestFirst.
func Manhattan(a, b maze.Cell) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
}
