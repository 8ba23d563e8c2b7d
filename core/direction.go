package core

// Unit direction vectors, screen-oriented (y grows downward)
var (
	DirNone  = Point{}
	DirUp    = Point{X: 0, Y: -1}
	DirDown  = Point{X: 0, Y: 1}
	DirLeft  = Point{X: -1, Y: 0}
	DirRight = Point{X: 1, Y: 0}
)

// IsCardinal reports whether d is exactly one of the four unit directions
func IsCardinal(d Point) bool {
	switch d {
	case DirUp, DirDown, DirLeft, DirRight:
		return true
	}
	return false
}
