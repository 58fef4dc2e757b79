package dijkstra_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/movement"
)

// TestSearch_ConcurrentSharedSurface runs many searches against one surface
// with different policies and memory modes; the surface is only read.
func TestSearch_ConcurrentSharedSurface(t *testing.T) {
	cs := gridgraph.MustParse(sampleGrid)
	jobs := []struct {
		p    movement.RunBounded
		want uint64
	}{
		{movement.Unconstrained(3), 102},
		{movement.Bounded(4, 10), 94},
	}

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan string, workers)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(id int) {
			defer wg.Done()
			job := jobs[id%len(jobs)]
			mode := memoryModes[(id/2)%len(memoryModes)]
			cost, found, err := dijkstra.MinCost(cs, job.p, dijkstra.WithMemoryMode(mode))
			if err != nil || !found || cost != job.want {
				errs <- job.p.String() + "/" + mode.String()
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	var failed []string
	for e := range errs {
		failed = append(failed, e)
	}
	require.Empty(t, failed)
}
