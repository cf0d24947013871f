package plane

import (
	"math"

	"github.com/eak1mov/go-libplane/geom"
)

// Query calls visit for every tile intersecting r, exactly once each.
// Tiles are visited row by row from the top of r down, and rightwards within
// each row. If visit returns true the enumeration stops immediately and Query
// returns true.
//
// visit may modify or split the tile it is handed, or merge it into its left
// or lower neighbour with MergeLeft or MergeBelow, but must not edit any other
// tile.
func (p *Plane) Query(r geom.Rect, visit func(Handle, Tile) bool) bool {
	if r.Empty() {
		return false
	}
	w := areaWalk{p: p, area: r, visit: visit}
	h := p.find(p.hint, geom.Pt(r.Min.X, r.Max.Y-1))
	for !h.IsZero() {
		t := *p.at(h)

		// The next seed is located before visit can change the current tile.
		var next Handle
		if y := int64(t.MinY()) - 1; y >= int64(r.Min.Y) {
			next = p.find(h, geom.Pt(r.Min.X, int32(y)))
		}

		if w.visitTile(h, &t) {
			return true
		}
		h = next
	}
	return false
}

// QueryAll calls visit for every tile of the plane.
func (p *Plane) QueryAll(visit func(Handle, Tile) bool) bool {
	return p.Query(geom.Universe, visit)
}

type areaWalk struct {
	p     *Plane
	area  geom.Rect
	visit func(Handle, Tile) bool

	// absorbed maps a tile that took in visited tiles through MergeBelow to
	// the lowest bottom of those tiles. Its right neighbours at or above that
	// height have already been visited.
	absorbed map[Handle]int32
}

// visitTile visits h, whose state before the visit is t, and then the tiles
// to its right that are reached through it.
func (w *areaWalk) visitTile(h Handle, t *Tile) bool {
	ceiling, ok := w.absorbed[h]
	if !ok {
		ceiling = math.MaxInt32
	}
	if w.visit(h, *t) {
		return true
	}
	if !w.p.tiles.Contains(h) {
		delete(w.absorbed, h)
		w.noteMerged(t)
	}
	if t.MaxX() < w.area.Max.X {
		return w.enumerateRight(t.Stitches.Right, t.MinY(), ceiling)
	}
	return false
}

// noteMerged records the tile below t as absorbing t if it grew over t.
// Otherwise t went into its left neighbour, which is already visited.
func (w *areaWalk) noteMerged(t *Tile) {
	lb := t.Stitches.Below
	if lb.IsZero() || !w.p.tiles.Contains(lb) || w.p.at(lb).MaxY() <= t.MinY() {
		return
	}
	if w.absorbed == nil {
		w.absorbed = make(map[Handle]int32)
	}
	w.absorbed[lb] = t.MinY()
}

// enumerateRight visits the tiles to the right of a tile whose topmost right
// neighbour is rt and whose bottom is at bottom. A tile is visited from the
// left neighbour containing its lower-left corner, or from the lowest left
// neighbour inside the area if it reaches below it. Neighbours starting at or
// above ceiling were visited before the left tile absorbed their neighbour.
func (w *areaWalk) enumerateRight(rt Handle, bottom, ceiling int32) bool {
	r := w.area
	atBottom := bottom <= r.Min.Y
	searchBottom := max(bottom, r.Min.Y)

	h := rt
	nextTop := w.p.at(h).MaxY()
	for nextTop > searchBottom {
		t := *w.p.at(h)

		lb := t.Stitches.Below
		nextTop = math.MinInt32
		if !lb.IsZero() {
			nextTop = w.p.at(lb).MaxY()
		}

		if t.MinY() < min(r.Max.Y, ceiling) && (atBottom || t.MinY() >= bottom) {
			if w.visitTile(h, &t) {
				return true
			}
		}
		h = lb
	}
	return false
}

// Empty reports whether r contains no solid tile. It sweeps the tiles along
// the left edge of r, which is enough while space tiles are kept in maximal
// horizontal strips, and falls back to Query when they are not.
func (p *Plane) Empty(r geom.Rect) bool {
	if r.Empty() {
		return true
	}
	h := p.find(p.hint, geom.Pt(r.Min.X, r.Max.Y-1))
	for {
		t := p.at(h)
		if t.IsSolid() {
			return false
		}
		if t.MaxX() < r.Max.X {
			// The tile beside t at this point lies inside r.
			pt := geom.Pt(t.MaxX(), min(t.MaxY(), r.Max.Y)-1)
			if p.at(p.find(h, pt)).IsSolid() {
				return false
			}
			return !p.Query(r, func(_ Handle, t Tile) bool { return t.IsSolid() })
		}
		y := int64(t.MinY()) - 1
		if y < int64(r.Min.Y) {
			return true
		}
		h = p.find(h, geom.Pt(r.Min.X, int32(y)))
	}
}
