package classify

import "math"

// Point is a pointer position in screen coordinates.
type Point struct {
	X float64
	Y float64
}

// FromRowCol converts a (row, column) position into a Point.
func FromRowCol(row, col float64) Point {
	return Point{X: col, Y: row}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Len returns the Euclidean length of p treated as a vector.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Trajectory is the sequence of positions sampled during one drag.
type Trajectory []Point

// Add appends a position.
func (t *Trajectory) Add(p Point) {
	*t = append(*t, p)
}

// Length returns the total path length.
func (t Trajectory) Length() float64 {
	var total float64
	for i := 1; i < len(t); i++ {
		total += t[i].Sub(t[i-1]).Len()
	}
	return total
}

// Bounds returns the top-left and bottom-right corners of the bounding box.
// Both are zero for an empty trajectory.
func (t Trajectory) Bounds() (lo, hi Point) {
	if len(t) == 0 {
		return Point{}, Point{}
	}
	lo, hi = t[0], t[0]
	for _, p := range t[1:] {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return lo, hi
}
