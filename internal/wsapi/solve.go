package wsapi

import (
	"github.com/katalvlaran/crucible/bfs"
	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/movement"
)

const (
	defaultMinRun = 1
	defaultMaxRun = 3
)

// Solve runs one corner-to-corner search for req. Failures are reported in
// SolveResponse.Error; a missing route is Found == false with no error.
func Solve(req SolveRequest) SolveResponse {
	cs, err := gridgraph.ParseCostSurface(req.Grid)
	if err != nil {
		return SolveResponse{Error: err.Error()}
	}

	minRun, maxRun := req.MinRun, req.MaxRun
	if minRun == 0 {
		minRun = defaultMinRun
	}
	if maxRun == 0 {
		maxRun = defaultMaxRun
	}
	p, err := movement.NewRunBounded(minRun, maxRun)
	if err != nil {
		return SolveResponse{Error: err.Error()}
	}

	opts := []dijkstra.Option{}
	if req.Path {
		opts = append(opts, dijkstra.WithReturnPath())
	}
	if req.Dense {
		opts = append(opts, dijkstra.WithMemoryMode(dijkstra.MemoryModeDense))
	}
	res, err := dijkstra.Search(cs, p, opts...)
	if err != nil {
		return SolveResponse{Error: err.Error()}
	}

	out := SolveResponse{
		Found:   res.Found,
		Cost:    res.Cost,
		Settled: res.Settled,
		Policy:  p.String(),
	}
	if lb, err := cs.FreeCost(res.Start, res.Destination); err == nil {
		out.LowerBound = lb
	}
	if reach, err := bfs.BFS(cs.Shape(), p); err == nil && reach.Found {
		out.Moves = reach.Moves
	}
	if res.Found && req.Path {
		out.Path = cs.RenderPath(res.Steps())
	}

	return out
}
