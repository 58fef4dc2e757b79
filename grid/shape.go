package grid

// InBounds reports whether v lies inside the shape.
// Complexity: O(1).
func (s Shape) InBounds(v Vector) bool {
	return v.X >= 0 && v.Y >= 0 && v.X < s.Width && v.Y < s.Height
}

// Index maps v to its row-major index: Y*Width + X.
// The result is meaningless for out-of-bounds vectors; check InBounds first.
// Complexity: O(1).
func (s Shape) Index(v Vector) int {
	return v.Y*s.Width + v.X
}

// Coordinate converts a row-major index back to a vector.
// Complexity: O(1).
func (s Shape) Coordinate(idx int) Vector {
	return Vector{X: idx % s.Width, Y: idx / s.Width}
}

// Area returns Width*Height.
func (s Shape) Area() int {
	return s.Width * s.Height
}

// TopLeft returns (0,0).
func (s Shape) TopLeft() Vector {
	return Vector{}
}

// BottomRight returns (Width-1, Height-1).
func (s Shape) BottomRight() Vector {
	return Vector{X: s.Width - 1, Y: s.Height - 1}
}

// Coords returns every in-bounds coordinate, left to right, top to bottom.
// Complexity: O(W×H).
func (s Shape) Coords() []Vector {
	if s.Width <= 0 || s.Height <= 0 {
		return nil
	}
	out := make([]Vector, 0, s.Area())
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			out = append(out, Vector{X: x, Y: y})
		}
	}

	return out
}

// NewSignedShape returns the inclusive rectangle spanning topLeft..bottomRight.
func NewSignedShape(topLeft, bottomRight Vector) SignedShape {
	return SignedShape{TopLeft: topLeft, BottomRight: bottomRight}
}

// InBounds reports whether v lies inside the inclusive rectangle.
func (s SignedShape) InBounds(v Vector) bool {
	return v.X >= s.TopLeft.X && v.Y >= s.TopLeft.Y &&
		v.X <= s.BottomRight.X && v.Y <= s.BottomRight.Y
}

// Width returns the number of columns.
func (s SignedShape) Width() int {
	return s.BottomRight.X - s.TopLeft.X + 1
}

// Height returns the number of rows.
func (s SignedShape) Height() int {
	return s.BottomRight.Y - s.TopLeft.Y + 1
}

// Coords returns every coordinate of the rectangle in row-major order.
func (s SignedShape) Coords() []Vector {
	if s.Width() <= 0 || s.Height() <= 0 {
		return nil
	}
	out := make([]Vector, 0, s.Width()*s.Height())
	for y := s.TopLeft.Y; y <= s.BottomRight.Y; y++ {
		for x := s.TopLeft.X; x <= s.BottomRight.X; x++ {
			out = append(out, Vector{X: x, Y: y})
		}
	}

	return out
}
