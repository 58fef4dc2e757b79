package grid

import "fmt"

// V is shorthand for Vector{X: x, Y: y}.
func V(x, y int) Vector {
	return Vector{X: x, Y: y}
}

// Add returns v+o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v-o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul scales v by k.
func (v Vector) Mul(k int) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

// Inverse returns -v.
func (v Vector) Inverse() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// ManhattanDistance returns |v.X-o.X| + |v.Y-o.Y|.
func (v Vector) ManhattanDistance(o Vector) int {
	return abs(v.X-o.X) + abs(v.Y-o.Y)
}

// Step moves v by one unit in direction d.
func (v Vector) Step(d Direction) Vector {
	return v.Add(d.Vector())
}

// Neighbor pairs an adjacent cell with the direction leading to it.
type Neighbor struct {
	Pos Vector
	Dir Direction
}

// CardinalNeighbors returns the four orthogonal neighbours of v in W, E, N, S order.
// No bounds checking is performed.
func (v Vector) CardinalNeighbors() [4]Neighbor {
	return [4]Neighbor{
		{Pos: v.Step(West), Dir: West},
		{Pos: v.Step(East), Dir: East},
		{Pos: v.Step(North), Dir: North},
		{Pos: v.Step(South), Dir: South},
	}
}

// String implements fmt.Stringer.
func (v Vector) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
