// SPDX-License-Identifier: MIT

// Package solveapi serves maze generation and path finding over HTTP.
package solveapi

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/config"
	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/pathfind"
)

// ErrTooLarge is returned when a requested dimension exceeds the limit.
var ErrTooLarge = errors.New("solveapi: maze dimension too large")

// Settings are the defaults and limits applied to every request.
type Settings struct {
	Complexity   config.Complexity
	Algorithm    pathfind.Algorithm
	DepthLimit   int
	IterationCap int
	MaxDimension int
}

// SettingsFromConfig extracts the controller settings from cfg.
func SettingsFromConfig(cfg config.Config) Settings {
	return Settings{
		Complexity:   cfg.Complexity,
		Algorithm:    cfg.Algorithm,
		DepthLimit:   cfg.DepthLimit,
		IterationCap: cfg.IterationCap,
		MaxDimension: cfg.MaxDimension,
	}
}

// Controller handles maze solving requests.
type Controller struct {
	settings Settings
	log      logrus.FieldLogger
	now      func() time.Time
}

// NewController creates a Controller. Panics on a nil logger.
func NewController(s Settings, log logrus.FieldLogger) *Controller {
	if log == nil {
		panic("solveapi: NewController with nil logger")
	}
	return &Controller{settings: s, log: log, now: time.Now}
}

// RegisterPublic registers public routes.
func (c *Controller) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/algorithms", c.algorithms)
	route.POST("/solve", c.solve)
}

// algorithms lists the supported selectors.
func (c *Controller) algorithms(ctx *gin.Context) {
	algos := pathfind.Algorithms()
	names := make([]string, len(algos))
	for k, a := range algos {
		names[k] = a.String()
	}
	ctx.JSON(http.StatusOK, &AlgorithmsResponse{Algorithms: names, Default: c.settings.Algorithm.String()})
}

// solve generates a maze and searches it.
func (c *Controller) solve(ctx *gin.Context) {
	var request SolveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := c.run(request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, response)
}

// run validates request, generates the maze and performs the search.
func (c *Controller) run(request SolveRequest) (*SolveResponse, error) {
	width, height, err := c.dimensions(request)
	if err != nil {
		return nil, err
	}

	algo := c.settings.Algorithm
	if request.Algorithm != "" {
		if algo, err = pathfind.ParseAlgorithm(request.Algorithm); err != nil {
			return nil, err
		}
	}

	seed := request.Seed
	if seed == 0 {
		seed = c.now().UnixNano()
	}
	genOpts := []maze.GenerateOption{maze.WithSeed(seed)}
	if p := request.ExtraPathProbability; p != nil {
		if *p < 0 || *p > 1 {
			return nil, fmt.Errorf("solveapi: extra_path_probability %v outside [0,1]", *p)
		}
		genOpts = append(genOpts, maze.WithExtraPathProbability(*p))
	}

	m, err := maze.Generate(width, height, genOpts...)
	if err != nil {
		return nil, err
	}

	start := maze.Cell{X: 1, Y: 1}
	if request.Start != nil {
		start = *request.Start
	}
	end := start
	if request.End != nil {
		end = *request.End
	} else if far, _, ok := m.FarthestFrom(start); ok {
		end = far
	}
	if err := m.SetEndpoints(start, end); err != nil {
		return nil, err
	}

	searchOpts := []pathfind.Option{
		pathfind.WithIterationCap(c.settings.IterationCap),
		pathfind.WithSink(pathfind.NewLogrusSink(c.log, logrus.TraceLevel)),
	}
	if algo == pathfind.DepthLimited {
		searchOpts = append(searchOpts, pathfind.WithDepthLimit(c.settings.DepthLimit))
	}
	// explicit request values win and bound plain dfs as well
	if request.DepthLimit != nil {
		searchOpts = append(searchOpts, pathfind.WithDepthLimit(*request.DepthLimit))
	}
	if request.IterationCap != nil {
		searchOpts = append(searchOpts, pathfind.WithIterationCap(*request.IterationCap))
	}

	res, err := pathfind.FindPath(m, algo, searchOpts...)
	if err != nil {
		return nil, err
	}

	path := res.Path
	if path == nil {
		path = []maze.Cell{}
	}
	return &SolveResponse{
		RunID:     res.RunID.String(),
		Algorithm: res.Algorithm.String(),
		Seed:      seed,
		Width:     width,
		Height:    height,
		Start:     start,
		End:       end,
		Found:     res.Found,
		Exhausted: res.Exhausted,
		Length:    res.Length(),
		Expanded:  res.Expanded,
		Path:      path,
		Maze:      m.Rows(),
	}, nil
}

// dimensions resolves the maze size from explicit dimensions or a tier.
func (c *Controller) dimensions(request SolveRequest) (int, int, error) {
	width, height := request.Width, request.Height
	switch {
	case width == 0 && height == 0:
		tier := c.settings.Complexity
		if request.Complexity != "" {
			var err error
			if tier, err = config.ParseComplexity(request.Complexity); err != nil {
				return 0, 0, err
			}
		}
		width, height = tier.Size(), tier.Size()
	case width == 0 || height == 0:
		return 0, 0, fmt.Errorf("%w: width and height must be given together", maze.ErrInvalidDimensions)
	}

	if limit := c.settings.MaxDimension; limit > 0 && (width > limit || height > limit) {
		return 0, 0, fmt.Errorf("%w: %dx%d exceeds %d", ErrTooLarge, width, height, limit)
	}
	return width, height, nil
}
