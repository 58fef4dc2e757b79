// Command crucible finds the cheapest top-left to bottom-right route through a
// grid of cost digits for a vehicle with straight-run limits.
//
//	crucible [flags] [file]
//
// The grid is read from file, or from stdin when no file is given. With
// --serve it instead answers JSON solve requests over a websocket at /solve.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/crucible/bfs"
	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/internal/wsapi"
	"github.com/katalvlaran/crucible/movement"
)

type config struct {
	minRun  int
	maxRun  int
	path    bool
	dense   bool
	serve   string
	verbose bool
	file    string
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := pflag.NewFlagSet("crucible", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVarP(&cfg.minRun, "min-run", "m", 1, "straight cells required before turning or stopping")
	fs.IntVarP(&cfg.maxRun, "max-run", "M", 3, "straight cells allowed before a turn is forced")
	fs.BoolVarP(&cfg.path, "path", "p", false, "print the route drawn over the grid")
	fs.BoolVar(&cfg.dense, "dense", false, "use slice-backed search tables")
	fs.StringVarP(&cfg.serve, "serve", "s", "", "serve websocket solve requests on this address instead")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "log search statistics")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	switch fs.NArg() {
	case 0:
	case 1:
		cfg.file = fs.Arg(0)
	default:
		return cfg, fmt.Errorf("expected at most one grid file, got %d", fs.NArg())
	}

	return cfg, nil
}

func main() {
	logger := log.New(os.Stderr, "crucible: ", log.LstdFlags)

	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		logger.Fatal(err)
	}

	if cfg.serve != "" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := wsapi.ListenAndServe(ctx, cfg.serve, logger); err != nil {
			logger.Fatal(err)
		}
		return
	}

	in := io.Reader(os.Stdin)
	if cfg.file != "" {
		f, err := os.Open(cfg.file)
		if err != nil {
			logger.Fatal(err)
		}
		defer f.Close()
		in = f
	}
	if err := run(cfg, in, os.Stdout, logger); err != nil {
		logger.Fatal(err)
	}
}

// run solves the grid read from in and writes the answer to out.
func run(cfg config, in io.Reader, out io.Writer, logger *log.Logger) error {
	text, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	cs, err := gridgraph.ParseCostSurface(string(text))
	if err != nil {
		return err
	}
	p, err := movement.NewRunBounded(cfg.minRun, cfg.maxRun)
	if err != nil {
		return err
	}

	opts := []dijkstra.Option{}
	if cfg.path {
		opts = append(opts, dijkstra.WithReturnPath())
	}
	if cfg.dense {
		opts = append(opts, dijkstra.WithMemoryMode(dijkstra.MemoryModeDense))
	}

	start := time.Now()
	res, err := dijkstra.Search(cs, p, opts...)
	if err != nil {
		return err
	}
	if cfg.verbose {
		lb, _ := cs.FreeCost(res.Start, res.Destination)
		logger.Printf("%dx%d grid, %s: settled %d states in %s (unconstrained cost %d)",
			cs.Width(), cs.Height(), p, res.Settled, time.Since(start), lb)
		if reach, err := bfs.BFS(cs.Shape(), p); err == nil {
			if reach.Found {
				logger.Printf("fewest moves: %d (straight-line %d)",
					reach.Moves, res.Start.ManhattanDistance(res.Destination))
			} else {
				logger.Printf("destination unreachable: %d of %d cells reachable",
					len(reach.CellDepth), cs.Shape().Area())
			}
		}
	}

	if !res.Found {
		_, err = fmt.Fprintln(out, "no path")
		return err
	}
	if _, err = fmt.Fprintln(out, res.Cost); err != nil {
		return err
	}
	if cfg.path {
		_, err = io.WriteString(out, cs.RenderPath(res.Steps()))
	}

	return err
}
