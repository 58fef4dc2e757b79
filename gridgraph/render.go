package gridgraph

import "github.com/katalvlaran/crucible/grid"

// RenderPath draws the surface as its digit block and overlays each step with
// the arrow of the heading it was entered with. Costs above 9 are drawn as '+'.
// Steps outside the surface are ignored.
// Complexity: O(W×H + len(steps)).
func (cs *CostSurface) RenderPath(steps []grid.Neighbor) string {
	cells := make([]rune, len(cs.costs))
	for i, c := range cs.costs {
		if c > 9 {
			cells[i] = '+'
			continue
		}
		cells[i] = rune('0' + c)
	}
	for _, st := range steps {
		if !cs.InBounds(st.Pos) {
			continue
		}
		cells[cs.shape.Index(st.Pos)] = st.Dir.Arrow()
	}

	return grid.FormatCharGrid(cs.shape, cells)
}

// String renders the bare digit block.
func (cs *CostSurface) String() string {
	return cs.RenderPath(nil)
}
