// Package geom provides integer points and rectangles for tile planes.
//
// It is patterned after image.Point and image.Rectangle, but uses int32
// coordinates and keeps every extent computation free of overflow at the
// MinInt32/MaxInt32 boundary.
package geom

import (
	"fmt"
	"math"
)

// Point is an (X, Y) coordinate pair.
type Point struct {
	X int32
	Y int32
}

func Pt(x, y int32) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// In reports whether p is in r.
func (p Point) In(r Rect) bool {
	return r.Min.X <= p.X && p.X < r.Max.X &&
		r.Min.Y <= p.Y && p.Y < r.Max.Y
}

// Rect is a half-open rectangle: it contains the points with
// Min.X <= X < Max.X and Min.Y <= Y < Max.Y.
type Rect struct {
	Min Point
	Max Point
}

// Universe spans the whole representable coordinate range.
var Universe = Rect{
	Min: Point{X: math.MinInt32, Y: math.MinInt32},
	Max: Point{X: math.MaxInt32, Y: math.MaxInt32},
}

// Rt is shorthand for Rect{Pt(x0, y0), Pt(x1, y1)}. The returned rectangle
// has minimum and maximum coordinates swapped if necessary so that it is
// well-formed.
func Rt(x0, y0, x1, y1 int32) Rect {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Rect{Min: Point{X: x0, Y: y0}, Max: Point{X: x1, Y: y1}}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d)x[%d,%d)", r.Min.X, r.Max.X, r.Min.Y, r.Max.Y)
}

// Dx returns the width of r.
func (r Rect) Dx() int64 {
	return int64(r.Max.X) - int64(r.Min.X)
}

// Dy returns the height of r.
func (r Rect) Dy() int64 {
	return int64(r.Max.Y) - int64(r.Min.Y)
}

// Area returns the number of points in r, or 0 for an empty rectangle.
// The area of Universe, (2^32-1)^2, still fits.
func (r Rect) Area() uint64 {
	if r.Empty() {
		return 0
	}
	return uint64(r.Dx()) * uint64(r.Dy())
}

// Empty reports whether r contains no points.
func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Contains reports whether p lies in r.
func (r Rect) Contains(p Point) bool {
	return p.In(r)
}

// In reports whether every point in r is in s.
func (r Rect) In(s Rect) bool {
	if r.Empty() {
		return true
	}
	return s.Min.X <= r.Min.X && r.Max.X <= s.Max.X &&
		s.Min.Y <= r.Min.Y && r.Max.Y <= s.Max.Y
}

// Overlaps reports whether r and s have a non-empty intersection.
func (r Rect) Overlaps(s Rect) bool {
	return !r.Empty() && !s.Empty() &&
		r.Min.X < s.Max.X && s.Min.X < r.Max.X &&
		r.Min.Y < s.Max.Y && s.Min.Y < r.Max.Y
}

// Intersect returns the largest rectangle contained by both r and s.
// If the two rectangles do not overlap then the zero rectangle is returned.
func (r Rect) Intersect(s Rect) Rect {
	r.Min.X = max(r.Min.X, s.Min.X)
	r.Min.Y = max(r.Min.Y, s.Min.Y)
	r.Max.X = min(r.Max.X, s.Max.X)
	r.Max.Y = min(r.Max.Y, s.Max.Y)
	if r.Empty() {
		return Rect{}
	}
	return r
}

// SetMax moves the upper corner of r to p.
func (r *Rect) SetMax(p Point) {
	r.Max = p
}

// Center returns the midpoint of r, rounded towards negative infinity.
func (r Rect) Center() Point {
	cx := (int64(r.Min.X) + int64(r.Max.X)) >> 1
	cy := (int64(r.Min.Y) + int64(r.Max.Y)) >> 1
	return Point{X: int32(cx), Y: int32(cy)}
}
