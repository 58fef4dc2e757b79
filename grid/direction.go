package grid

import "fmt"

// directions lists the cardinal directions in their canonical order.
var directions = [4]Direction{North, South, East, West}

// Directions returns North, South, East, West in that order.
func Directions() [4]Direction {
	return directions
}

// Valid reports whether d is exactly one cardinal direction.
func (d Direction) Valid() bool {
	switch d {
	case North, South, East, West:
		return true
	}

	return false
}

// Opposite returns the reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}

	return d
}

// TurnLeft returns the direction 90° counter-clockwise from d (Y grows downward).
func (d Direction) TurnLeft() Direction {
	switch d {
	case North:
		return West
	case West:
		return South
	case South:
		return East
	case East:
		return North
	}

	return d
}

// TurnRight returns the direction 90° clockwise from d.
func (d Direction) TurnRight() Direction {
	return d.TurnLeft().Opposite()
}

// Vector returns the unit vector for d. Invalid directions map to the zero vector.
func (d Direction) Vector() Vector {
	switch d {
	case North:
		return Vector{X: 0, Y: -1}
	case South:
		return Vector{X: 0, Y: 1}
	case East:
		return Vector{X: 1, Y: 0}
	case West:
		return Vector{X: -1, Y: 0}
	}

	return Vector{}
}

// Index maps d to a dense index in [0,4) following Directions() order.
// It returns -1 for an invalid direction.
func (d Direction) Index() int {
	switch d {
	case North:
		return 0
	case South:
		return 1
	case East:
		return 2
	case West:
		return 3
	}

	return -1
}

// Arrow returns the glyph used when drawing a path heading in d.
func (d Direction) Arrow() rune {
	switch d {
	case North:
		return '^'
	case South:
		return 'v'
	case East:
		return '>'
	case West:
		return '<'
	}

	return '?'
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	}

	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// DirectionOf converts a cardinal unit vector to its Direction.
// Any other vector yields ErrInvalidDirection.
func DirectionOf(v Vector) (Direction, error) {
	for _, d := range directions {
		if d.Vector() == v {
			return d, nil
		}
	}

	return 0, fmt.Errorf("%w: %v", ErrInvalidDirection, v)
}

// Set returns the single-element DirectionSet containing d.
func (d Direction) Set() DirectionSet {
	return DirectionSet(d)
}

// Has reports whether d is a member of s.
func (s DirectionSet) Has(d Direction) bool {
	return d.Valid() && s&DirectionSet(d) != 0
}

// With returns s ∪ {d}.
func (s DirectionSet) With(d Direction) DirectionSet {
	return s | DirectionSet(d)
}

// Without returns s \ {d}.
func (s DirectionSet) Without(d Direction) DirectionSet {
	return s &^ DirectionSet(d)
}

// Len returns the number of directions in s.
func (s DirectionSet) Len() int {
	n := 0
	for _, d := range directions {
		if s.Has(d) {
			n++
		}
	}

	return n
}

// Directions lists the members of s in North, South, East, West order.
func (s DirectionSet) Directions() []Direction {
	out := make([]Direction, 0, 4)
	for _, d := range directions {
		if s.Has(d) {
			out = append(out, d)
		}
	}

	return out
}

// DirectionsOf builds a DirectionSet from individual directions.
func DirectionsOf(ds ...Direction) DirectionSet {
	var s DirectionSet
	for _, d := range ds {
		s = s.With(d)
	}

	return s
}
