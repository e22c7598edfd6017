// SPDX-License-Identifier: MIT

// Command mazepath generates a maze, solves it and prints the result. With
// -compare it runs every algorithm on the same maze; with -serve it starts
// the HTTP API instead.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/katalvlaran/mazepath/api"
	"github.com/katalvlaran/mazepath/api/i"
	solveapi "github.com/katalvlaran/mazepath/api/solve"
	"github.com/katalvlaran/mazepath/config"
	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/pathfind"
	"github.com/katalvlaran/mazepath/render"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// options are the parsed command-line flags. Flags left unset keep the
// configuration value.
type options struct {
	envFile      string
	complexity   string
	width        int
	height       int
	seed         int64
	algorithm    string
	depthLimit   int
	iterationCap int
	extra        float64
	colorMode    string
	trace        bool
	compare      bool
	serve        bool
	addr         string

	set map[string]bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, for tests.
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	var files []string
	if opts.envFile != "" {
		files = append(files, opts.envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	if err := opts.apply(&cfg); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	log := logrus.New()
	log.SetOutput(stderr)
	log.SetLevel(cfg.LogLevel)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	gotext.Configure(cfg.LocalesDir, cfg.Language, "default")

	if opts.serve {
		return serve(cfg, log)
	}

	r := render.New(useColor(opts.colorMode, stdout))
	if err := solve(cfg, opts, log, r, stdout); err != nil {
		log.WithError(err).Error("solve failed")
		return exitError
	}
	return exitOK
}

// parseFlags parses args into options, recording which flags were given.
func parseFlags(args []string, stderr io.Writer) (*options, error) {
	o := &options{set: make(map[string]bool)}
	fs := flag.NewFlagSet("mazepath", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&o.envFile, "env", "", "path of a .env file (default .env)")
	fs.StringVar(&o.complexity, "complexity", "", "size tier: easy, medium or hard")
	fs.IntVar(&o.width, "width", 0, "maze width, overrides -complexity (needs -height)")
	fs.IntVar(&o.height, "height", 0, "maze height, overrides -complexity (needs -width)")
	fs.Int64Var(&o.seed, "seed", 0, "generator seed, 0 for a time-based seed")
	fs.StringVar(&o.algorithm, "algorithm", "", "search algorithm")
	fs.IntVar(&o.depthLimit, "depth-limit", 0, "depth bound for depthLimited, also applied to dfs when given")
	fs.IntVar(&o.iterationCap, "iteration-cap", 0, "greedyBestFirst iteration cap, 0 for the cell count")
	fs.Float64Var(&o.extra, "extra", maze.DefaultExtraPathProbability, "probability of extra openings while carving")
	fs.StringVar(&o.colorMode, "color", "auto", "colored output: auto, always or never")
	fs.BoolVar(&o.trace, "trace", false, "log every search event at debug level")
	fs.BoolVar(&o.compare, "compare", false, "run every algorithm on the same maze")
	fs.BoolVar(&o.serve, "serve", false, "start the HTTP API instead of solving once")
	fs.StringVar(&o.addr, "addr", "", "HTTP listen address for -serve")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })

	if o.extra < 0 || o.extra > 1 {
		fmt.Fprintf(stderr, "-extra %v outside [0,1]\n", o.extra)
		return nil, fmt.Errorf("invalid -extra %v", o.extra)
	}
	switch o.colorMode {
	case "auto", "always", "never":
	default:
		fmt.Fprintf(stderr, "-color must be auto, always or never, got %q\n", o.colorMode)
		return nil, fmt.Errorf("invalid -color %q", o.colorMode)
	}
	if o.set["width"] != o.set["height"] {
		fmt.Fprintln(stderr, "-width and -height must be given together")
		return nil, errors.New("incomplete dimensions")
	}
	return o, nil
}

// apply overrides cfg with the flags that were given.
func (o *options) apply(cfg *config.Config) error {
	var err error
	if o.set["complexity"] {
		if cfg.Complexity, err = config.ParseComplexity(o.complexity); err != nil {
			return err
		}
	}
	if o.set["algorithm"] {
		if cfg.Algorithm, err = pathfind.ParseAlgorithm(o.algorithm); err != nil {
			return err
		}
	}
	if o.set["seed"] {
		cfg.Seed = o.seed
	}
	if o.set["depth-limit"] {
		cfg.DepthLimit = o.depthLimit
	}
	if o.set["iteration-cap"] {
		cfg.IterationCap = o.iterationCap
	}
	if o.set["addr"] {
		cfg.HTTPAddr = o.addr
	}
	if cfg.DepthLimit < 0 || cfg.IterationCap < 0 {
		return fmt.Errorf("%w: depth limit and iteration cap must not be negative", config.ErrInvalidValue)
	}
	return nil
}

// useColor decides whether to emit escape codes.
func useColor(mode string, out io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// solve generates one maze and prints either a single solution or the
// comparison table.
func solve(cfg config.Config, o *options, log *logrus.Logger, r *render.Renderer, out io.Writer) error {
	width, height := cfg.Complexity.Size(), cfg.Complexity.Size()
	if o.set["width"] {
		width, height = o.width, o.height
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m, err := maze.Generate(width, height, maze.WithSeed(seed), maze.WithExtraPathProbability(o.extra))
	if err != nil {
		return err
	}
	start := maze.Cell{X: 1, Y: 1}
	end, _, _ := m.FarthestFrom(start)
	if err := m.SetEndpoints(start, end); err != nil {
		return err
	}

	fmt.Fprintln(out, gotext.Get("Maze %dx%d, seed %d, from %v to %v", width, height, seed, start, end))

	searchOpts := func(algo pathfind.Algorithm) []pathfind.Option {
		opts := cfg.SearchOptions(algo)
		if o.set["depth-limit"] {
			opts = append(opts, pathfind.WithDepthLimit(cfg.DepthLimit))
		}
		if o.trace {
			opts = append(opts, pathfind.WithSink(pathfind.NewLogrusSink(log, logrus.DebugLevel)))
		}
		return opts
	}

	if o.compare {
		results := make([]pathfind.Result, 0, len(pathfind.Algorithms()))
		for _, algo := range pathfind.Algorithms() {
			res, err := pathfind.FindPath(m, algo, searchOpts(algo)...)
			if err != nil {
				return err
			}
			results = append(results, res)
		}
		fmt.Fprint(out, r.Maze(m, nil))
		fmt.Fprint(out, r.Compare(results))
		return nil
	}

	res, err := pathfind.FindPath(m, cfg.Algorithm, searchOpts(cfg.Algorithm)...)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"run_id":    res.RunID.String(),
		"algorithm": res.Algorithm.String(),
		"found":     res.Found,
		"expanded":  res.Expanded,
	}).Debug("search finished")

	fmt.Fprint(out, r.Maze(m, res.Path))
	fmt.Fprintln(out, r.Summary(res, gotext.Get("No path found")))
	return nil
}

// serve runs the HTTP API until it fails.
func serve(cfg config.Config, log *logrus.Logger) int {
	controller := solveapi.NewController(solveapi.SettingsFromConfig(cfg), log)
	router := api.NewRouter(api.Config{
		Addr:        cfg.HTTPAddr,
		Controllers: []i.Controller{controller},
		Logger:      log,
	})
	log.Info(gotext.Get("Serving HTTP API on %s", cfg.HTTPAddr))
	if err := router.Run(); err != nil {
		log.WithError(err).Error("http api stopped")
		return exitError
	}
	return exitOK
}
