package plane

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/eak1mov/go-libplane/geom"
)

// Validate checks the plane by brute force: the tiles must partition
// geom.Universe, every stitch must address the tile at its corner, and the
// hint must be live. Errors wrap ErrCorrupt.
func (p *Plane) Validate() error {
	if !p.tiles.Contains(p.hint) {
		return fmt.Errorf("%w: stale hint", ErrCorrupt)
	}

	tiles := make([]*Tile, 0, p.tiles.Len())
	var area uint64
	for _, t := range p.tiles.All() {
		// Every non-empty int32 rectangle lies in geom.Universe.
		if t.Bounds.Empty() {
			return fmt.Errorf("%w: tile %v is empty", ErrCorrupt, t.Bounds)
		}
		area += t.Bounds.Area()
		tiles = append(tiles, t)
	}
	if area != geom.Universe.Area() {
		return fmt.Errorf("%w: tiles cover %d of %d points", ErrCorrupt, area, geom.Universe.Area())
	}

	slices.SortFunc(tiles, func(a, b *Tile) int {
		return cmp.Compare(a.MinY(), b.MinY())
	})
	for i, a := range tiles {
		for _, b := range tiles[i+1:] {
			if b.MinY() >= a.MaxY() {
				break
			}
			if a.Bounds.Overlaps(b.Bounds) {
				return fmt.Errorf("%w: tiles %v and %v overlap", ErrCorrupt, a.Bounds, b.Bounds)
			}
		}
	}

	// The tiles are a partition, so the tile containing a point is unique.
	for _, t := range tiles {
		if err := p.validateStitches(t); err != nil {
			return err
		}
	}
	return nil
}

func (p *Plane) validateStitches(t *Tile) error {
	u := geom.Universe
	checks := []struct {
		name     string
		stitch   Handle
		boundary bool
		corner   geom.Point
	}{
		{"left", t.Stitches.Left, t.MinX() == u.Min.X, geom.Pt(t.MinX()-1, t.MinY())},
		{"below", t.Stitches.Below, t.MinY() == u.Min.Y, geom.Pt(t.MinX(), t.MinY()-1)},
		{"right", t.Stitches.Right, t.MaxX() == u.Max.X, geom.Pt(t.MaxX(), t.MaxY()-1)},
		{"above", t.Stitches.Above, t.MaxY() == u.Max.Y, geom.Pt(t.MaxX()-1, t.MaxY())},
	}
	for _, c := range checks {
		if c.boundary {
			if !c.stitch.IsZero() {
				return fmt.Errorf("%w: tile %v has a %s stitch across the boundary", ErrCorrupt, t.Bounds, c.name)
			}
			continue
		}
		n, ok := p.tiles.Get(c.stitch)
		if !ok {
			return fmt.Errorf("%w: tile %v has a dangling %s stitch", ErrCorrupt, t.Bounds, c.name)
		}
		if !n.Bounds.Contains(c.corner) {
			return fmt.Errorf("%w: %s stitch of tile %v points to %v, not to the tile at %v",
				ErrCorrupt, c.name, t.Bounds, n.Bounds, c.corner)
		}
	}
	return nil
}

// ValidateStrips runs Validate and also checks that space tiles are in
// maximal horizontal strips: no space tile touches another space tile on its
// left or right, and no two space tiles with the same horizontal extent are
// stacked.
func (p *Plane) ValidateStrips() error {
	if err := p.Validate(); err != nil {
		return err
	}
	for h, t := range p.tiles.All() {
		if t.IsSolid() {
			continue
		}
		for nh := range p.RightTiles(h) {
			if n := p.at(nh); n.IsSpace() {
				return fmt.Errorf("%w: space tiles %v and %v are side by side", ErrCorrupt, t.Bounds, n.Bounds)
			}
		}
		if ah := t.Stitches.Above; !ah.IsZero() {
			a := p.at(ah)
			if a.IsSpace() && a.MinX() == t.MinX() && a.MaxX() == t.MaxX() {
				return fmt.Errorf("%w: space tiles %v and %v are stacked", ErrCorrupt, t.Bounds, a.Bounds)
			}
		}
	}
	return nil
}
