package core

import "fmt"

// Point is a grid coordinate. Comparable, so it doubles as a map key
type Point struct {
	X, Y int
}

// Add returns the component-wise sum
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Div divides both components by n, truncating toward zero
func (p Point) Div(n int) Point {
	return Point{X: p.X / n, Y: p.Y / n}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
