// Package planetest provides fixtures for testing tile planes.
package planetest

import (
	"cmp"
	"math/rand/v2"
	"slices"

	"github.com/eak1mov/go-libplane/geom"
	"github.com/eak1mov/go-libplane/plane"
)

// Build creates a plane from tiles that partition geom.Universe and stitches
// them by brute force. Handles are returned in input order.
func Build(tiles []plane.Tile) (*plane.Plane, []plane.Handle) {
	p, handles := plane.NewUnchecked(tiles)

	at := func(pt geom.Point) plane.Handle {
		for i, t := range tiles {
			if t.Bounds.Contains(pt) {
				return handles[i]
			}
		}
		return plane.Handle{}
	}

	u := geom.Universe
	for i, t := range tiles {
		r := t.Bounds
		var s plane.Stitches
		if r.Min.X > u.Min.X {
			s.Left = at(geom.Pt(r.Min.X-1, r.Min.Y))
		}
		if r.Min.Y > u.Min.Y {
			s.Below = at(geom.Pt(r.Min.X, r.Min.Y-1))
		}
		if r.Max.X < u.Max.X {
			s.Right = at(geom.Pt(r.Max.X, r.Max.Y-1))
		}
		if r.Max.Y < u.Max.Y {
			s.Above = at(geom.Pt(r.Max.X-1, r.Max.Y))
		}
		p.SetStitchesUnchecked(handles[i], s)
	}
	return p, handles
}

// Quadrants returns four space tiles meeting at the origin, in the order
// top-left, top-right, bottom-left, bottom-right.
func Quadrants() []plane.Tile {
	u := geom.Universe
	return []plane.Tile{
		plane.NewTile(geom.Rect{Min: geom.Pt(u.Min.X, 0), Max: geom.Pt(0, u.Max.Y)}, plane.Space),
		plane.NewTile(geom.Rect{Min: geom.Pt(0, 0), Max: u.Max}, plane.Space),
		plane.NewTile(geom.Rect{Min: u.Min, Max: geom.Pt(0, 0)}, plane.Space),
		plane.NewTile(geom.Rect{Min: geom.Pt(0, u.Min.Y), Max: geom.Pt(u.Max.X, 0)}, plane.Space),
	}
}

// Framed returns a tile covering r and the four tiles around it, in the order
// center, left, right, above, below. The above and below tiles span the whole
// width of the plane.
func Framed(r geom.Rect, bodies [5]plane.Body) []plane.Tile {
	u := geom.Universe
	return []plane.Tile{
		plane.NewTile(r, bodies[0]),
		plane.NewTile(geom.Rect{Min: geom.Pt(u.Min.X, r.Min.Y), Max: geom.Pt(r.Min.X, r.Max.Y)}, bodies[1]),
		plane.NewTile(geom.Rect{Min: geom.Pt(r.Max.X, r.Min.Y), Max: geom.Pt(u.Max.X, r.Max.Y)}, bodies[2]),
		plane.NewTile(geom.Rect{Min: geom.Pt(u.Min.X, r.Max.Y), Max: u.Max}, bodies[3]),
		plane.NewTile(geom.Rect{Min: u.Min, Max: geom.Pt(u.Max.X, r.Min.Y)}, bodies[4]),
	}
}

// Entry is a tile without its stitches.
type Entry struct {
	Bounds geom.Rect
	Body   plane.Body
}

// Snapshot returns the tiles of p ordered by their lower-left corner,
// bottom to top and then left to right.
func Snapshot(p *plane.Plane) []Entry {
	var entries []Entry
	for _, t := range p.All() {
		entries = append(entries, Entry{Bounds: t.Bounds, Body: t.Body})
	}
	SortEntries(entries)
	return entries
}

func SortEntries(entries []Entry) {
	slices.SortFunc(entries, func(a, b Entry) int {
		return cmp.Or(
			cmp.Compare(a.Bounds.Min.Y, b.Bounds.Min.Y),
			cmp.Compare(a.Bounds.Min.X, b.Bounds.Min.X),
		)
	})
}

// Overlapping returns the entries intersecting r, in Snapshot order.
func Overlapping(entries []Entry, r geom.Rect) []Entry {
	var result []Entry
	for _, e := range entries {
		if e.Bounds.Overlaps(r) {
			result = append(result, e)
		}
	}
	return result
}

// RandomItems returns n random rectangles inside a size x size window at the
// origin, with bodies 1..n. The rectangles may overlap.
func RandomItems(rng *rand.Rand, n int, size int32) []plane.Item {
	items := make([]plane.Item, 0, n)
	maxSide := max(size/8, 2)
	for i := range n {
		x := rng.Int32N(size - 1)
		y := rng.Int32N(size - 1)
		w := 1 + rng.Int32N(min(maxSide, size-x))
		h := 1 + rng.Int32N(min(maxSide, size-y))
		items = append(items, plane.Item{
			Bounds: geom.Rt(x, y, x+w, y+h),
			Body:   plane.Body(i + 1),
		})
	}
	return items
}
