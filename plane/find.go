package plane

import "github.com/eak1mov/go-libplane/geom"

// FindTileAt returns the tile containing pt, searching from the hint.
// It returns false if pt lies outside geom.Universe.
func (p *Plane) FindTileAt(pt geom.Point) (Handle, bool) {
	return p.FindTileFrom(p.hint, pt)
}

// FindTileFrom returns the tile containing pt, searching from start.
// It returns false if start is stale or pt lies outside geom.Universe.
func (p *Plane) FindTileFrom(start Handle, pt geom.Point) (Handle, bool) {
	if !p.tiles.Contains(start) || !pt.In(geom.Universe) {
		return Handle{}, false
	}
	return p.find(start, pt), true
}

func (p *Plane) find(h Handle, pt geom.Point) Handle {
	t := p.at(h)

	// Move down (or up) until the tile spans pt.Y.
	if pt.Y < t.MinY() {
		for pt.Y < t.MinY() {
			h = t.Stitches.Below
			t = p.at(h)
		}
	} else {
		for pt.Y >= t.MaxY() {
			h = t.Stitches.Above
			t = p.at(h)
		}
	}

	// Move left (or right) until the tile spans pt.X. Horizontal moves may
	// break the vertical alignment, so both are repeated until they hold at
	// the same time.
	if pt.X < t.MinX() {
		for {
			for pt.X < t.MinX() {
				h = t.Stitches.Left
				t = p.at(h)
			}
			if pt.Y < t.MaxY() {
				break
			}
			for pt.Y >= t.MaxY() {
				h = t.Stitches.Above
				t = p.at(h)
			}
			if pt.X >= t.MinX() {
				break
			}
		}
	} else {
		for pt.X >= t.MaxX() {
			for pt.X >= t.MaxX() {
				h = t.Stitches.Right
				t = p.at(h)
			}
			if pt.Y >= t.MinY() {
				break
			}
			for pt.Y < t.MinY() {
				h = t.Stitches.Below
				t = p.at(h)
			}
		}
	}

	return h
}
