package movement

import (
	"fmt"

	"github.com/katalvlaran/crucible/grid"
)

// RunBounded is the policy family parameterised by a minimum and maximum
// straight run:
//
//   - reversing is never legal;
//   - continuing straight is legal while Run < MaxRun;
//   - turning left or right is legal once Run ≥ MinRun, and resets Run to 1;
//   - a move landing on the destination is legal only if the resulting
//     Run ≥ MinRun (the vehicle cannot stop mid-run).
//
// The zero value is not usable; build one with NewRunBounded, Unconstrained
// or Bounded.
type RunBounded struct {
	MinRun int
	MaxRun int
}

var _ Policy = RunBounded{}
var _ RunLimiter = RunBounded{}

// NewRunBounded validates the bounds and returns the policy.
func NewRunBounded(minRun, maxRun int) (RunBounded, error) {
	if minRun < 1 || maxRun < minRun {
		return RunBounded{}, fmt.Errorf("%w: min=%d max=%d", ErrBadRunBounds, minRun, maxRun)
	}

	return RunBounded{MinRun: minRun, MaxRun: maxRun}, nil
}

// Unconstrained returns the policy that may turn at any time and go straight at
// most maxRun cells. Panics with ErrBadRunBounds if maxRun < 1.
func Unconstrained(maxRun int) RunBounded {
	return Bounded(1, maxRun)
}

// Bounded returns the policy that must travel at least minRun and at most
// maxRun cells between turns. Panics with ErrBadRunBounds on invalid bounds;
// use NewRunBounded for user-supplied values.
func Bounded(minRun, maxRun int) RunBounded {
	p, err := NewRunBounded(minRun, maxRun)
	if err != nil {
		panic(err)
	}

	return p
}

// RunLimit implements RunLimiter.
func (p RunBounded) RunLimit() int {
	return p.MaxRun
}

// Start implements Policy.
func (p RunBounded) Start(origin, dst grid.Vector, headings grid.DirectionSet) []State {
	out := make([]State, 0, 4)
	for _, d := range headings.Directions() {
		p.appendMove(&out, State{Pos: origin.Step(d), Heading: d, Run: 1}, dst)
	}

	return out
}

// Next implements Policy. Successors are listed straight, left, right.
func (p RunBounded) Next(s State, dst grid.Vector) []State {
	out := make([]State, 0, 3)
	if s.Run < p.MaxRun {
		p.appendMove(&out, State{Pos: s.Pos.Step(s.Heading), Heading: s.Heading, Run: s.Run + 1}, dst)
	}
	if s.Run >= p.MinRun {
		left, right := s.Heading.TurnLeft(), s.Heading.TurnRight()
		p.appendMove(&out, State{Pos: s.Pos.Step(left), Heading: left, Run: 1}, dst)
		p.appendMove(&out, State{Pos: s.Pos.Step(right), Heading: right, Run: 1}, dst)
	}

	return out
}

// appendMove adds next unless it would stop on dst before completing MinRun.
func (p RunBounded) appendMove(out *[]State, next State, dst grid.Vector) {
	if next.Pos == dst && next.Run < p.MinRun {
		return
	}
	*out = append(*out, next)
}

// String implements fmt.Stringer.
func (p RunBounded) String() string {
	return fmt.Sprintf("run[%d..%d]", p.MinRun, p.MaxRun)
}
