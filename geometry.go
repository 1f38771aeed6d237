package scatter

import "fmt"

// Point is a position in user units: x grows to the right, y downwards.
type Point struct {
	X, Y float64
}

// Rect is an axis parallel rectangle in user units.
type Rect struct {
	Min, Max Point
}

// R is shorthand for Rect{Point{x0, y0}, Point{x1, y1}}.
func R(x0, y0, x1, y1 float64) Rect {
	return Rect{Point{x0, y0}, Point{x1, y1}}
}

// Canonic returns r with Min having the smaller coordinates.
func (r Rect) Canonic() Rect {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Dx is the width of r.
func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }

// Dy is the height of r.
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return !(r.Dx() > 0 && r.Dy() > 0) }

// Intersect returns the largest rectangle contained in both r and s.
// Both must be canonic.
func (r Rect) Intersect(s Rect) Rect {
	if r.Min.X < s.Min.X {
		r.Min.X = s.Min.X
	}
	if r.Min.Y < s.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if r.Max.X > s.Max.X {
		r.Max.X = s.Max.X
	}
	if r.Max.Y > s.Max.Y {
		r.Max.Y = s.Max.Y
	}
	return r
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g,%g]-[%g,%g]", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}

// DataRect is an axis parallel rectangle in data space.
type DataRect struct {
	X, Y Interval
}

// Contains reports whether (x,y) lies inside d, edges included.
func (d DataRect) Contains(x, y float64) bool {
	return x >= d.X.Min && x <= d.X.Max && y >= d.Y.Min && y <= d.Y.Max
}
