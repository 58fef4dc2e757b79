// Package dijkstra_test validates the history-constrained search: the reference
// scenarios, the policy boundary, the no-path outcome, option handling, and
// agreement between memory modes.
package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/grid"
	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/movement"
)

const sampleGrid = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`

// pathologicalGrid forces the 4..10 vehicle through the expensive rows.
const pathologicalGrid = `111111111111
999999999991
999999999991
999999999991
999999999991
`

var memoryModes = []dijkstra.MemoryMode{dijkstra.MemoryModeMap, dijkstra.MemoryModeDense}

// requireValidPath checks that res.Path is a legal move sequence under p whose
// cell costs add up to res.Cost.
func requireValidPath(t *testing.T, cs *gridgraph.CostSurface, p movement.Policy, res *dijkstra.Result) {
	t.Helper()
	require.True(t, res.Found)
	require.NotEmpty(t, res.Path)

	var total uint64
	for i, s := range res.Path {
		if i == 0 {
			require.Contains(t, p.Start(res.Start, res.Destination, grid.AllDirections), s)
		} else {
			require.Contains(t, p.Next(res.Path[i-1], res.Destination), s, "step %d", i)
		}
		c, ok := cs.CostAt(s.Pos)
		require.True(t, ok, "step %d off surface: %v", i, s)
		total += uint64(c)
	}
	require.Equal(t, res.Destination, res.Path[len(res.Path)-1].Pos)
	require.Equal(t, res.Cost, total)
}

//----------------------------------------------------------------------------//
// 1. Reference scenarios
//----------------------------------------------------------------------------//

func TestSearch_SampleMaxRun3(t *testing.T) {
	cs := gridgraph.MustParse(sampleGrid)
	p := movement.Unconstrained(3)
	for _, mode := range memoryModes {
		t.Run(mode.String(), func(t *testing.T) {
			res, err := dijkstra.Search(cs, p, dijkstra.WithMemoryMode(mode), dijkstra.WithReturnPath())
			require.NoError(t, err)
			assert.True(t, res.Found)
			assert.Equal(t, uint64(102), res.Cost)
			requireValidPath(t, cs, p, res)
		})
	}
}

func TestSearch_SampleMinRun4MaxRun10(t *testing.T) {
	cs := gridgraph.MustParse(sampleGrid)
	p := movement.Bounded(4, 10)
	for _, mode := range memoryModes {
		t.Run(mode.String(), func(t *testing.T) {
			res, err := dijkstra.Search(cs, p, dijkstra.WithMemoryMode(mode), dijkstra.WithReturnPath())
			require.NoError(t, err)
			assert.True(t, res.Found)
			assert.Equal(t, uint64(94), res.Cost)
			requireValidPath(t, cs, p, res)
		})
	}
}

func TestSearch_CornerSeedingMatchesAllHeadings(t *testing.T) {
	cs := gridgraph.MustParse(sampleGrid)
	cost, found, err := dijkstra.MinCost(cs, movement.Unconstrained(3),
		dijkstra.WithSeedHeadings(grid.DirectionsOf(grid.East, grid.South)))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint64(102), cost)
}

// TestSearch_Pathological checks that the 4..10 vehicle cannot take the cheap
// final approach down the right-hand column (only 3 straight moves) and pays
// for the long detour through the 9s instead.
func TestSearch_Pathological(t *testing.T) {
	cs := gridgraph.MustParse(pathologicalGrid)

	// Free turning: along the top, one 9, then 3 moves down the cheap column.
	loose := movement.Bounded(1, 10)
	res, err := dijkstra.Search(cs, loose, dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, uint64(23), res.Cost)
	requireValidPath(t, cs, loose, res)
	last, ok := res.Final()
	require.True(t, ok)
	assert.Equal(t, movement.State{Pos: grid.V(11, 4), Heading: grid.South, Run: 3}, last)

	// Minimum run 4: that approach is not a valid terminal state.
	strict := movement.Bounded(4, 10)
	for _, mode := range memoryModes {
		t.Run(mode.String(), func(t *testing.T) {
			res, err := dijkstra.Search(cs, strict, dijkstra.WithMemoryMode(mode), dijkstra.WithReturnPath())
			require.NoError(t, err)
			assert.Equal(t, uint64(71), res.Cost)
			requireValidPath(t, cs, strict, res)
			last, ok := res.Final()
			require.True(t, ok)
			assert.GreaterOrEqual(t, last.Run, 4)
		})
	}
}

// TestSearch_LowerBound checks that constrained costs never beat free movement.
func TestSearch_LowerBound(t *testing.T) {
	cs := gridgraph.MustParse(sampleGrid)
	free, err := cs.FreeCost(cs.Shape().TopLeft(), cs.Shape().BottomRight())
	require.NoError(t, err)
	for _, p := range []movement.RunBounded{movement.Unconstrained(3), movement.Bounded(4, 10)} {
		cost, found, err := dijkstra.MinCost(cs, p)
		require.NoError(t, err)
		require.True(t, found)
		assert.GreaterOrEqual(t, cost, free, "policy %v", p)
	}
}

//----------------------------------------------------------------------------//
// 2. No path, trivial and capped searches
//----------------------------------------------------------------------------//

func TestSearch_NoPathIsNotAnError(t *testing.T) {
	cases := []struct {
		name string
		grid string
		p    movement.RunBounded
	}{
		{"Row3Min4", "111\n", movement.Bounded(4, 10)},
		{"Square2Min4", "11\n11\n", movement.Bounded(4, 10)},
		{"Row3Min3", "111\n", movement.Bounded(3, 10)},
	}
	for _, tc := range cases {
		for _, mode := range memoryModes {
			t.Run(tc.name+"/"+mode.String(), func(t *testing.T) {
				cs := gridgraph.MustParse(tc.grid)
				res, err := dijkstra.Search(cs, tc.p, dijkstra.WithMemoryMode(mode), dijkstra.WithReturnPath())
				require.NoError(t, err)
				assert.False(t, res.Found)
				assert.Zero(t, res.Cost)
				assert.Nil(t, res.Path)
				_, ok := res.Final()
				assert.False(t, ok)
			})
		}
	}
}

func TestSearch_ExactMinRunReachesDestination(t *testing.T) {
	cs := gridgraph.MustParse("1234\n")
	res, err := dijkstra.Search(cs, movement.Bounded(3, 3), dijkstra.WithReturnPath())
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, uint64(9), res.Cost)
	assert.Equal(t, []grid.Vector{grid.V(0, 0), grid.V(1, 0), grid.V(2, 0), grid.V(3, 0)}, res.Cells())
}

func TestSearch_StartIsDestination(t *testing.T) {
	cs := gridgraph.MustParse(sampleGrid)
	res, err := dijkstra.Search(cs, movement.Bounded(4, 10),
		dijkstra.Start(grid.V(5, 5)), dijkstra.Destination(grid.V(5, 5)), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Zero(t, res.Cost)
	assert.Empty(t, res.Path)
	assert.Equal(t, []grid.Vector{grid.V(5, 5)}, res.Cells())
}

func TestSearch_MaxCost(t *testing.T) {
	cs := gridgraph.MustParse(sampleGrid)
	p := movement.Unconstrained(3)

	_, found, err := dijkstra.MinCost(cs, p, dijkstra.WithMaxCost(101))
	require.NoError(t, err)
	assert.False(t, found)

	cost, found, err := dijkstra.MinCost(cs, p, dijkstra.WithMaxCost(102))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint64(102), cost)
}

func TestSearch_WithoutReturnPathKeepsPathNil(t *testing.T) {
	cs := gridgraph.MustParse(sampleGrid)
	res, err := dijkstra.Search(cs, movement.Unconstrained(3))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Nil(t, res.Path)
	assert.Positive(t, res.Settled)
}

func TestSearch_CustomEndpoints(t *testing.T) {
	cs := gridgraph.MustParse("1111\n1991\n1111\n")
	p := movement.Unconstrained(3)

	// Reverse direction: bottom-right to top-left along the border.
	res, err := dijkstra.Search(cs, p,
		dijkstra.Start(grid.V(3, 2)), dijkstra.Destination(grid.V(0, 0)), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, uint64(5), res.Cost)
	requireValidPath(t, cs, p, res)

	// Corner seeding from a non-corner start misses the westward first move.
	res, err = dijkstra.Search(cs, p,
		dijkstra.Start(grid.V(2, 0)), dijkstra.Destination(grid.V(0, 0)),
		dijkstra.WithSeedHeadings(grid.DirectionsOf(grid.East, grid.South)))
	require.NoError(t, err)
	all, err := dijkstra.Search(cs, p, dijkstra.Start(grid.V(2, 0)), dijkstra.Destination(grid.V(0, 0)))
	require.NoError(t, err)
	assert.Equal(t, uint64(2), all.Cost)
	assert.Greater(t, res.Cost, all.Cost)
}

//----------------------------------------------------------------------------//
// 3. Invariants: monotone settle order and determinism
//----------------------------------------------------------------------------//

func TestSearch_SettleOrderIsMonotone(t *testing.T) {
	cs := gridgraph.MustParse(sampleGrid)
	for _, mode := range memoryModes {
		var costs []uint64
		seen := map[movement.State]bool{}
		res, err := dijkstra.Search(cs, movement.Bounded(4, 10),
			dijkstra.WithMemoryMode(mode),
			dijkstra.WithOnSettle(func(s movement.State, c uint64) {
				require.False(t, seen[s], "state %v settled twice", s)
				seen[s] = true
				costs = append(costs, c)
			}))
		require.NoError(t, err)
		require.Len(t, costs, res.Settled)
		for i := 1; i < len(costs); i++ {
			require.LessOrEqual(t, costs[i-1], costs[i], "settle %d (%s)", i, mode)
		}
		assert.Equal(t, res.Cost, costs[len(costs)-1])
	}
}

func TestSearch_Deterministic(t *testing.T) {
	cs := gridgraph.MustParse(sampleGrid)
	p := movement.Bounded(4, 10)
	first, err := dijkstra.Search(cs, p, dijkstra.WithReturnPath())
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := dijkstra.Search(cs, p, dijkstra.WithReturnPath())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}

	dense, err := dijkstra.Search(cs, p, dijkstra.WithReturnPath(), dijkstra.WithMemoryMode(dijkstra.MemoryModeDense))
	require.NoError(t, err)
	assert.Equal(t, first, dense)
}

//----------------------------------------------------------------------------//
// 4. Validation
//----------------------------------------------------------------------------//

func TestSearch_Validation(t *testing.T) {
	cs := gridgraph.MustParse("12\n34\n")
	p := movement.Unconstrained(3)

	_, err := dijkstra.Search(nil, p)
	assert.ErrorIs(t, err, dijkstra.ErrNilSurface)

	_, err = dijkstra.Search(cs, nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilPolicy)

	_, err = dijkstra.Search(cs, p, dijkstra.WithSeedHeadings(0))
	assert.ErrorIs(t, err, dijkstra.ErrOptionViolation)

	_, err = dijkstra.Search(cs, p, dijkstra.WithMemoryMode(dijkstra.MemoryMode(7)))
	assert.ErrorIs(t, err, dijkstra.ErrOptionViolation)

	_, err = dijkstra.Search(cs, p, dijkstra.Start(grid.V(-1, 0)))
	assert.ErrorIs(t, err, dijkstra.ErrOutOfBounds)

	_, _, err = dijkstra.MinCost(cs, p, dijkstra.Destination(grid.V(2, 1)))
	assert.ErrorIs(t, err, dijkstra.ErrOutOfBounds)
}

// brokenPolicy proposes a state with Run == 0.
type brokenPolicy struct{ movement.RunBounded }

func (b brokenPolicy) Next(s movement.State, _ grid.Vector) []movement.State {
	return []movement.State{{Pos: s.Pos.Step(s.Heading), Heading: s.Heading, Run: 0}}
}

// teleportPolicy proposes a state two cells away.
type teleportPolicy struct{ movement.RunBounded }

func (tp teleportPolicy) Next(s movement.State, _ grid.Vector) []movement.State {
	return []movement.State{{Pos: s.Pos.Add(s.Heading.Vector().Mul(2)), Heading: s.Heading, Run: 1}}
}

func TestSearch_PolicyContractPanics(t *testing.T) {
	cs := gridgraph.MustParse("1111\n1111\n1111\n")
	for name, p := range map[string]movement.Policy{
		"ZeroRun":  brokenPolicy{movement.Unconstrained(3)},
		"Teleport": teleportPolicy{movement.Unconstrained(3)},
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r, "expected a panic")
				err, ok := r.(error)
				require.True(t, ok)
				assert.ErrorIs(t, err, dijkstra.ErrPolicyContract)
			}()
			_, _ = dijkstra.Search(cs, p)
		})
	}
}

// opaquePolicy hides RunLimit, forcing the dense mode to fall back to maps.
type opaquePolicy struct{ movement.Policy }

func TestSearch_DenseFallsBackWithoutRunLimit(t *testing.T) {
	cs := gridgraph.MustParse(sampleGrid)
	p := opaquePolicy{movement.Unconstrained(3)}
	_, isLimiter := movement.Policy(p).(movement.RunLimiter)
	require.False(t, isLimiter)

	cost, found, err := dijkstra.MinCost(cs, p, dijkstra.WithMemoryMode(dijkstra.MemoryModeDense))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint64(102), cost)
}

func TestResult_StepsRender(t *testing.T) {
	cs := gridgraph.MustParse("1234\n")
	res, err := dijkstra.Search(cs, movement.Unconstrained(3), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, "1>>>\n", cs.RenderPath(res.Steps()))
}

//----------------------------------------------------------------------------//
// 5. Extreme inputs
//----------------------------------------------------------------------------//

// TestSearch_DenseHugeRunLimit: a run limit far beyond the surface must not
// size the dense tables by the limit itself.
func TestSearch_DenseHugeRunLimit(t *testing.T) {
	cs := gridgraph.MustParse("12\n34\n")
	p := movement.Unconstrained(1 << 60)

	cost, found, err := dijkstra.MinCost(cs, p, dijkstra.WithMemoryMode(dijkstra.MemoryModeDense))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint64(6), cost)

	res, err := dijkstra.Search(cs, p,
		dijkstra.WithMemoryMode(dijkstra.MemoryModeDense), dijkstra.WithReturnPath())
	require.NoError(t, err)
	requireValidPath(t, cs, p, res)

	big := gridgraph.MustParse(sampleGrid)
	wide := movement.Bounded(2, 2_000_000_000)
	want, err := dijkstra.Search(big, wide, dijkstra.WithReturnPath())
	require.NoError(t, err)
	got, err := dijkstra.Search(big, wide,
		dijkstra.WithReturnPath(), dijkstra.WithMemoryMode(dijkstra.MemoryModeDense))
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, uint64(79), got.Cost)
}

func TestSearch_LargeCostsStayExact(t *testing.T) {
	const c = 1 << 62
	cs, err := gridgraph.NewCostSurface([][]int{{0, c, c, c}})
	require.NoError(t, err)
	for _, mode := range memoryModes {
		cost, found, err := dijkstra.MinCost(cs, movement.Unconstrained(10), dijkstra.WithMemoryMode(mode))
		require.NoError(t, err, mode)
		assert.True(t, found, mode)
		assert.Equal(t, uint64(3)<<62, cost, mode)
	}

	// The dear top row would overflow, but the cheap detour wins anyway.
	cs, err = gridgraph.NewCostSurface([][]int{
		{0, c, c, c, c},
		{1, 1, 1, 1, 1},
	})
	require.NoError(t, err)
	cost, found, err := dijkstra.MinCost(cs, movement.Unconstrained(10))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint64(5), cost)
}

func TestSearch_CostOverflow(t *testing.T) {
	const c = 1 << 62
	cs, err := gridgraph.NewCostSurface([][]int{{0, c, c, c, c, c}})
	require.NoError(t, err)
	for _, mode := range memoryModes {
		res, err := dijkstra.Search(cs, movement.Unconstrained(10), dijkstra.WithMemoryMode(mode))
		assert.ErrorIs(t, err, dijkstra.ErrCostOverflow, mode)
		assert.Nil(t, res, mode)
	}
}
