package plane

import (
	"iter"

	"github.com/eak1mov/go-libplane/geom"
)

// Tiles returns an iterator over the tiles intersecting r, in Query order.
// It yields tile handles and copies of the tiles. The loop body must not edit
// the plane.
func (p *Plane) Tiles(r geom.Rect) iter.Seq2[Handle, Tile] {
	return func(yield func(Handle, Tile) bool) {
		p.Query(r, func(h Handle, t Tile) bool {
			return !yield(h, t)
		})
	}
}

// All returns an iterator over every tile of the plane.
func (p *Plane) All() iter.Seq2[Handle, Tile] {
	return p.Tiles(geom.Universe)
}

// LeftTiles returns an iterator over the tiles touching the left edge of h,
// from bottom to top. It yields nothing if h is stale.
func (p *Plane) LeftTiles(h Handle) iter.Seq[Handle] {
	return p.neighbours(h, func(t *Tile) Handle { return t.Stitches.Left },
		func(t *Tile) Handle { return t.Stitches.Above },
		func(t, n *Tile) bool { return n.MaxY() >= t.MaxY() })
}

// RightTiles returns an iterator over the tiles touching the right edge of h,
// from top to bottom.
func (p *Plane) RightTiles(h Handle) iter.Seq[Handle] {
	return p.neighbours(h, func(t *Tile) Handle { return t.Stitches.Right },
		func(t *Tile) Handle { return t.Stitches.Below },
		func(t, n *Tile) bool { return n.MinY() <= t.MinY() })
}

// TopTiles returns an iterator over the tiles touching the top edge of h,
// from right to left.
func (p *Plane) TopTiles(h Handle) iter.Seq[Handle] {
	return p.neighbours(h, func(t *Tile) Handle { return t.Stitches.Above },
		func(t *Tile) Handle { return t.Stitches.Left },
		func(t, n *Tile) bool { return n.MinX() <= t.MinX() })
}

// BottomTiles returns an iterator over the tiles touching the bottom edge of
// h, from left to right.
func (p *Plane) BottomTiles(h Handle) iter.Seq[Handle] {
	return p.neighbours(h, func(t *Tile) Handle { return t.Stitches.Below },
		func(t *Tile) Handle { return t.Stitches.Right },
		func(t, n *Tile) bool { return n.MaxX() >= t.MaxX() })
}

// neighbours walks one edge of a tile: it starts at first(tile), steps with
// next and stops after the neighbour for which last reports true.
func (p *Plane) neighbours(h Handle, first, next func(*Tile) Handle, last func(t, n *Tile) bool) iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		t, ok := p.tiles.Get(h)
		if !ok {
			return
		}
		tile := *t
		for nh := first(&tile); !nh.IsZero(); {
			n := *p.at(nh)
			if !yield(nh) || last(&tile, &n) {
				return
			}
			nh = next(&n)
		}
	}
}
