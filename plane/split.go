package plane

import "github.com/eak1mov/go-libplane/geom"

// HorzSplit is the result of cutting a tile along a horizontal line.
type HorzSplit struct {
	Lower Handle
	Upper Handle
}

// VertSplit is the result of cutting a tile along a vertical line.
type VertSplit struct {
	Left  Handle
	Right Handle
}

// SplitHorz cuts a tile along the line y. The tile itself keeps the part
// below y and a new tile with the same body takes the part above.
// It returns false, leaving the plane unchanged, if h is stale or y does not
// lie strictly inside the tile.
func (p *Plane) SplitHorz(h Handle, y int32) (HorzSplit, bool) {
	if !p.tiles.Contains(h) {
		return HorzSplit{}, false
	}
	return p.splitHorz(h, y)
}

// SplitVert cuts a tile along the line x. The tile itself keeps the part
// left of x and a new tile with the same body takes the part right of it.
// It returns false, leaving the plane unchanged, if h is stale or x does not
// lie strictly inside the tile.
func (p *Plane) SplitVert(h Handle, x int32) (VertSplit, bool) {
	if !p.tiles.Contains(h) {
		return VertSplit{}, false
	}
	return p.splitVert(h, x)
}

// Split carves the part of a tile inside r into a tile of its own, using up
// to four single cuts, and returns it. The result keeps the body of the tile.
// It returns false if h is stale or r does not overlap the tile.
func (p *Plane) Split(h Handle, r geom.Rect) (Handle, bool) {
	t, ok := p.tiles.Get(h)
	if !ok || !t.Bounds.Overlaps(r) {
		return Handle{}, false
	}
	if s, ok := p.splitHorz(h, r.Max.Y); ok {
		h = s.Lower
	}
	if s, ok := p.splitHorz(h, r.Min.Y); ok {
		h = s.Upper
	}
	if s, ok := p.splitVert(h, r.Max.X); ok {
		h = s.Left
	}
	if s, ok := p.splitVert(h, r.Min.X); ok {
		h = s.Right
	}
	return h, true
}

func (p *Plane) splitHorz(lh Handle, y int32) (HorzSplit, bool) {
	lower := *p.at(lh)
	if y <= lower.MinY() || y >= lower.MaxY() {
		return HorzSplit{}, false
	}

	upper := NewTile(geom.Rect{Min: geom.Pt(lower.MinX(), y), Max: lower.Bounds.Max}, lower.Body)
	uh := p.alloc(upper.Bounds, upper.Body)

	lower.Bounds.SetMax(geom.Pt(lower.MaxX(), y))

	upper.Stitches.Below = lh
	upper.Stitches.Above = lower.Stitches.Above
	upper.Stitches.Right = lower.Stitches.Right

	// top edge
	for oh := lower.Stitches.Above; !oh.IsZero(); {
		other := p.at(oh)
		if other.Stitches.Below != lh {
			break
		}
		other.Stitches.Below = uh
		oh = other.Stitches.Left
	}
	lower.Stitches.Above = uh

	// right edge
	oh := lower.Stitches.Right
	for !oh.IsZero() {
		other := p.at(oh)
		if other.MinY() < y {
			break
		}
		other.Stitches.Left = uh
		oh = other.Stitches.Below
	}
	lower.Stitches.Right = oh

	// left edge
	oh = lower.Stitches.Left
	for !oh.IsZero() && p.at(oh).MaxY() <= y {
		oh = p.at(oh).Stitches.Above
	}
	upper.Stitches.Left = oh
	for !oh.IsZero() {
		other := p.at(oh)
		if other.Stitches.Right != lh {
			break
		}
		other.Stitches.Right = uh
		oh = other.Stitches.Above
	}

	*p.at(lh) = lower
	*p.at(uh) = upper

	return HorzSplit{Lower: lh, Upper: uh}, true
}

func (p *Plane) splitVert(lh Handle, x int32) (VertSplit, bool) {
	left := *p.at(lh)
	if x <= left.MinX() || x >= left.MaxX() {
		return VertSplit{}, false
	}

	right := NewTile(geom.Rect{Min: geom.Pt(x, left.MinY()), Max: left.Bounds.Max}, left.Body)
	rh := p.alloc(right.Bounds, right.Body)

	left.Bounds.SetMax(geom.Pt(x, left.MaxY()))

	right.Stitches.Left = lh
	right.Stitches.Right = left.Stitches.Right
	right.Stitches.Above = left.Stitches.Above

	// right edge
	for oh := left.Stitches.Right; !oh.IsZero(); {
		other := p.at(oh)
		if other.Stitches.Left != lh {
			break
		}
		other.Stitches.Left = rh
		oh = other.Stitches.Below
	}
	left.Stitches.Right = rh

	// top edge
	oh := left.Stitches.Above
	for !oh.IsZero() {
		other := p.at(oh)
		if other.MinX() < x {
			break
		}
		other.Stitches.Below = rh
		oh = other.Stitches.Left
	}
	left.Stitches.Above = oh

	// bottom edge
	oh = left.Stitches.Below
	for !oh.IsZero() && p.at(oh).MaxX() <= x {
		oh = p.at(oh).Stitches.Right
	}
	right.Stitches.Below = oh
	for !oh.IsZero() {
		other := p.at(oh)
		if other.Stitches.Above != lh {
			break
		}
		other.Stitches.Above = rh
		oh = other.Stitches.Right
	}

	*p.at(lh) = left
	*p.at(rh) = right

	return VertSplit{Left: lh, Right: rh}, true
}
