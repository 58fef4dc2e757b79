package movement_test

import (
	"fmt"

	"github.com/katalvlaran/crucible/grid"
	"github.com/katalvlaran/crucible/movement"
)

// ExampleRunBounded_Next lists the successors of a state for both vehicles.
func ExampleRunBounded_Next() {
	s := movement.State{Pos: grid.V(4, 4), Heading: grid.East, Run: 2}
	dst := grid.V(12, 12)

	fmt.Println(movement.Unconstrained(3).Next(s, dst))
	fmt.Println(movement.Bounded(4, 10).Next(s, dst))
	// Output:
	// [(5,4) East×3 (4,3) North×1 (4,5) South×1]
	// [(5,4) East×3]
}
