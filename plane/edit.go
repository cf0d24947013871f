package plane

import (
	"fmt"
	"iter"
	"slices"

	"github.com/eak1mov/go-libplane/geom"
)

// Insert creates a solid tile covering r with the given body and returns it.
// Space tiles around r are re-split and merged so that they stay in maximal
// horizontal strips.
//
// It returns ErrInvalidRect if r is empty or body is Space, and ErrOccupied
// if r overlaps a solid tile.
func (p *Plane) Insert(r geom.Rect, body Body) (Handle, error) {
	if r.Empty() || !r.In(geom.Universe) || body == Space {
		return Handle{}, fmt.Errorf("%w: %v", ErrInvalidRect, r)
	}
	if !p.Empty(r) {
		return Handle{}, fmt.Errorf("%w: %v", ErrOccupied, r)
	}

	// A single space strip holds the whole top edge of r, and another the
	// whole bottom edge.
	t := p.find(p.hint, geom.Pt(r.Min.X, r.Max.Y-1))
	p.splitHorz(t, r.Max.Y)
	t = p.find(t, r.Min)
	if s, ok := p.splitHorz(t, r.Min.Y); ok {
		t = s.Upper
	}

	// Walk up the strips crossing r, cutting each at both sides of r.
	var result, leftRest, rightRest Handle
	for first := true; ; first = false {
		leftRest, rightRest = Handle{}, Handle{}
		if s, ok := p.splitVert(t, r.Min.X); ok {
			leftRest = p.mergeBelowOrKeep(s.Left)
			t = s.Right
		}
		if s, ok := p.splitVert(t, r.Max.X); ok {
			t = s.Left
			rightRest = p.mergeBelowOrKeep(s.Right)
		}
		if first {
			result = t
		} else {
			t = p.mergeBelowOrKeep(t)
		}
		if p.at(t).MaxY() >= r.Max.Y {
			break
		}
		t = p.at(t).Stitches.Above
	}
	if !leftRest.IsZero() {
		p.mergeAbove(leftRest)
	}
	if !rightRest.IsZero() {
		p.mergeAbove(rightRest)
	}

	p.at(result).Body = body
	p.hint = result

	p.logger.Debug("libplane: insert", "rect", r, "body", body)
	return result, nil
}

// Remove turns a solid tile into space and merges it with the surrounding
// space so that space tiles stay in maximal horizontal strips. It returns the
// space tile now containing the lower-left corner of the removed tile.
//
// It returns ErrStaleHandle if h is stale and ErrNotSolid if the tile is
// already space.
func (p *Plane) Remove(h Handle) (Handle, error) {
	t, ok := p.tiles.Get(h)
	if !ok {
		return Handle{}, ErrStaleHandle
	}
	if t.IsSpace() {
		return Handle{}, fmt.Errorf("%w: %v", ErrNotSolid, t.Bounds)
	}
	t.Body = Space
	box := t.Bounds

	p.alignSides(h, box)

	// Cut the tile at every edge of its neighbours, so that each row has
	// exactly one neighbour on either side.
	var cuts []int32
	for _, edge := range []func(Handle) iter.Seq[Handle]{p.LeftTiles, p.RightTiles} {
		for nh := range edge(h) {
			n := p.at(nh)
			if n.MinY() > box.Min.Y {
				cuts = append(cuts, n.MinY())
			}
			if n.MaxY() < box.Max.Y {
				cuts = append(cuts, n.MaxY())
			}
		}
	}
	slices.Sort(cuts)
	cuts = slices.Compact(cuts)

	rows := make([]Handle, 0, len(cuts)+1)
	for _, y := range cuts {
		s, ok := p.splitHorz(h, y)
		if !ok {
			panic(fmt.Sprintf("libplane: cannot cut %v at %d", p.at(h).Bounds, y))
		}
		rows = append(rows, s.Lower)
		h = s.Upper
	}
	rows = append(rows, h)

	// Widen each row over the space on both sides.
	for i, row := range rows {
		rt := p.at(row)
		if lh := rt.Stitches.Left; !lh.IsZero() && p.at(lh).IsSpace() {
			p.splitHorz(lh, rt.MaxY())
			row = p.mustMerge(p.mergeLeft(row))
		}
		rt = p.at(row)
		if rh := rt.Stitches.Right; !rh.IsZero() && p.at(rh).IsSpace() {
			p.splitHorz(rh, rt.MaxY())
			row = p.mustMerge(p.mergeRight(row))
		}
		rows[i] = row
	}

	// Merge the rows with each other and with the space below and above.
	last := Handle{}
	for _, row := range rows {
		last = p.mergeBelowOrKeep(row)
	}
	p.mergeAbove(last)

	result := p.find(last, box.Min)
	p.hint = result

	p.logger.Debug("libplane: remove", "rect", box)
	return result, nil
}

// alignSides cuts the space tiles beside box that reach past its bottom or
// top edge, so that their edges line up with the edges of box.
func (p *Plane) alignSides(h Handle, box geom.Rect) {
	if box.Min.X > geom.Universe.Min.X {
		if lh := p.find(h, geom.Pt(box.Min.X-1, box.Min.Y)); p.at(lh).IsSpace() {
			p.splitHorz(lh, box.Min.Y)
		}
		if lh := p.find(h, geom.Pt(box.Min.X-1, box.Max.Y-1)); p.at(lh).IsSpace() {
			p.splitHorz(lh, box.Max.Y)
		}
	}
	if box.Max.X < geom.Universe.Max.X {
		if rh := p.find(h, geom.Pt(box.Max.X, box.Min.Y)); p.at(rh).IsSpace() {
			p.splitHorz(rh, box.Min.Y)
		}
		if rh := p.find(h, geom.Pt(box.Max.X, box.Max.Y-1)); p.at(rh).IsSpace() {
			p.splitHorz(rh, box.Max.Y)
		}
	}
}

// mergeBelowOrKeep merges h with the tile below if possible and returns the
// surviving tile, or h itself.
func (p *Plane) mergeBelowOrKeep(h Handle) Handle {
	if m, ok := p.mergeBelow(h); ok {
		return m
	}
	return h
}

func (p *Plane) mustMerge(h Handle, ok bool) Handle {
	if !ok {
		panic("libplane: space tiles are not aligned")
	}
	return h
}
