// SPDX-License-Identifier: MIT

package solveapi

import (
	"github.com/katalvlaran/mazepath/maze"
)

// SolveRequest asks for a maze to be generated and solved.
// Either Width and Height or Complexity selects the size; zero values fall
// back to the controller defaults.
type SolveRequest struct {
	Width                int        `json:"width" binding:"omitempty,min=3"`
	Height               int        `json:"height" binding:"omitempty,min=3"`
	Complexity           string     `json:"complexity"`
	Seed                 int64      `json:"seed"`
	Algorithm            string     `json:"algorithm"`
	ExtraPathProbability *float64   `json:"extra_path_probability" binding:"omitempty,min=0,max=1"`
	Start                *maze.Cell `json:"start"`
	End                  *maze.Cell `json:"end"`
	DepthLimit           *int       `json:"depth_limit" binding:"omitempty,min=0"`
	IterationCap         *int       `json:"iteration_cap" binding:"omitempty,min=0"`
}

// SolveResponse reports the generated maze and the search outcome.
type SolveResponse struct {
	RunID     string      `json:"run_id"`
	Algorithm string      `json:"algorithm"`
	Seed      int64       `json:"seed"`
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Start     maze.Cell   `json:"start"`
	End       maze.Cell   `json:"end"`
	Found     bool        `json:"found"`
	Exhausted bool        `json:"exhausted"`
	Length    int         `json:"length"`
	Expanded  int         `json:"expanded"`
	Path      []maze.Cell `json:"path"`
	Maze      []string    `json:"maze"`
}

// AlgorithmsResponse lists the accepted selectors.
type AlgorithmsResponse struct {
	Algorithms []string `json:"algorithms"`
	Default    string   `json:"default"`
}
