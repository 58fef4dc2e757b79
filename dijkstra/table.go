package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/crucible/grid"
	"github.com/katalvlaran/crucible/movement"
)

// table holds the per-invocation search bookkeeping: best known cost per
// state, the settled (closed) set, and optional parent pointers.
type table interface {
	// cost returns the best known cost of s, or math.MaxUint64 if none.
	cost(s movement.State) uint64
	// relax records c as the cost of s reached from parent (nil for a seed).
	relax(s movement.State, c uint64, parent *movement.State)
	// settle marks s as final and reports false if it already was.
	settle(s movement.State) bool
	// parent returns the predecessor of s, if one was recorded.
	parent(s movement.State) (movement.State, bool)
}

// maxDenseSlots caps the dense layout. It keeps parent indexes within int32 and
// bounds the up-front allocation; larger searches use maps.
const maxDenseSlots = 1 << 28

// maxMapHint bounds the initial map capacity; maps grow with the states actually
// reached.
const maxMapHint = 1 << 16

// newTable picks the backing for one search invocation.
func newTable(shape grid.Shape, p movement.Policy, cfg Options) table {
	if cfg.MemoryMode == MemoryModeDense {
		if maxRun, ok := denseRunLimit(shape, p); ok {
			return newDenseTable(shape, maxRun, cfg.ReturnPath)
		}
	}

	return newMapTable(min(shape.Area(), maxMapHint), cfg.ReturnPath)
}

// denseRunLimit returns the run dimension of a dense table for p on shape, or
// false if p declares no limit or the table would exceed maxDenseSlots.
// A straight run on shape never exceeds its longer side, so larger policy
// limits are clamped to it.
func denseRunLimit(shape grid.Shape, p movement.Policy) (int, bool) {
	rl, ok := p.(movement.RunLimiter)
	if !ok || rl.RunLimit() < 1 {
		return 0, false
	}
	maxRun := rl.RunLimit()
	if side := max(shape.Width, shape.Height); maxRun > side {
		maxRun = side
	}
	perRun := shape.Area() * 4
	if perRun <= 0 || maxRun > maxDenseSlots/perRun {
		return 0, false
	}

	return maxRun, true
}

// mapTable keys everything by the composite State.
type mapTable struct {
	dist    map[movement.State]uint64
	closed  map[movement.State]struct{}
	parents map[movement.State]movement.State // nil unless ReturnPath
}

func newMapTable(hint int, withParents bool) *mapTable {
	t := &mapTable{
		dist:   make(map[movement.State]uint64, hint),
		closed: make(map[movement.State]struct{}, hint),
	}
	if withParents {
		t.parents = make(map[movement.State]movement.State, hint)
	}

	return t
}

func (t *mapTable) cost(s movement.State) uint64 {
	if c, ok := t.dist[s]; ok {
		return c
	}

	return math.MaxUint64
}

func (t *mapTable) relax(s movement.State, c uint64, parent *movement.State) {
	t.dist[s] = c
	if t.parents == nil {
		return
	}
	if parent == nil {
		delete(t.parents, s)
		return
	}
	t.parents[s] = *parent
}

func (t *mapTable) settle(s movement.State) bool {
	if _, ok := t.closed[s]; ok {
		return false
	}
	t.closed[s] = struct{}{}

	return true
}

func (t *mapTable) parent(s movement.State) (movement.State, bool) {
	p, ok := t.parents[s]

	return p, ok
}

// denseTable lays states out as ((cell*4)+heading)*maxRun + (run-1).
// Settled flags are one DirectionSet per (cell, run): bit h set means the
// state (cell, h, run) is final.
type denseTable struct {
	shape   grid.Shape
	maxRun  int
	dist    []uint64
	closed  []grid.DirectionSet
	parents []int32 // -1 for none; nil unless ReturnPath
}

func newDenseTable(shape grid.Shape, maxRun int, withParents bool) *denseTable {
	n := shape.Area() * 4 * maxRun
	t := &denseTable{
		shape:  shape,
		maxRun: maxRun,
		dist:   make([]uint64, n),
		closed: make([]grid.DirectionSet, shape.Area()*maxRun),
	}
	for i := range t.dist {
		t.dist[i] = math.MaxUint64
	}
	if withParents {
		t.parents = make([]int32, n)
		for i := range t.parents {
			t.parents[i] = -1
		}
	}

	return t
}

func (t *denseTable) index(s movement.State) int {
	if s.Run > t.maxRun {
		panic(fmt.Errorf("%w: run %d above limit %d in %v", ErrPolicyContract, s.Run, t.maxRun, s))
	}

	return (t.shape.Index(s.Pos)*4+s.Heading.Index())*t.maxRun + s.Run - 1
}

func (t *denseTable) state(i int) movement.State {
	run := i%t.maxRun + 1
	i /= t.maxRun

	return movement.State{
		Pos:     t.shape.Coordinate(i / 4),
		Heading: grid.Directions()[i%4],
		Run:     run,
	}
}

func (t *denseTable) cost(s movement.State) uint64 {
	return t.dist[t.index(s)]
}

func (t *denseTable) relax(s movement.State, c uint64, parent *movement.State) {
	i := t.index(s)
	t.dist[i] = c
	if t.parents == nil {
		return
	}
	if parent == nil {
		t.parents[i] = -1
		return
	}
	t.parents[i] = int32(t.index(*parent))
}

func (t *denseTable) settle(s movement.State) bool {
	i := t.shape.Index(s.Pos)*t.maxRun + s.Run - 1
	if t.closed[i].Has(s.Heading) {
		return false
	}
	t.closed[i] = t.closed[i].With(s.Heading)

	return true
}

func (t *denseTable) parent(s movement.State) (movement.State, bool) {
	if t.parents == nil {
		return movement.State{}, false
	}
	p := t.parents[t.index(s)]
	if p < 0 {
		return movement.State{}, false
	}

	return t.state(int(p)), true
}
