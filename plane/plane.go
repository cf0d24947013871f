// Package plane implements a corner-stitched tile plane.
//
// A Plane partitions the integer plane geom.Universe into non-overlapping
// rectangular tiles. Every tile is either space or solid and carries four
// corner stitches to its neighbours, which allow point location, area
// enumeration and local edits without any global index.
//
// A Plane is not safe for concurrent use. Read-only operations (Get,
// FindTileAt, Query, Empty and the iterators) may run concurrently with each
// other, but never with an edit.
package plane

import (
	"log/slog"

	"github.com/eak1mov/go-libplane/geom"
	"github.com/eak1mov/go-libplane/internal/arena"
)

// Plane owns the tiles of a tiling behind stable handles.
type Plane struct {
	tiles  arena.Arena[Tile]
	hint   Handle
	logger *slog.Logger
}

type planeConfig struct {
	Logger *slog.Logger
}

type Option func(*planeConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *planeConfig) { c.Logger = logger }
}

func newPlane(opts []Option) *Plane {
	config := planeConfig{
		Logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&config)
	}
	return &Plane{logger: config.Logger}
}

// New creates a plane holding a single space tile covering geom.Universe.
func New(opts ...Option) *Plane {
	p := newPlane(opts)
	p.hint = p.alloc(geom.Universe, Space)
	return p
}

// NewUnchecked creates a plane from tiles and returns their handles in input
// order. Nothing is checked: the caller guarantees that the tiles partition
// geom.Universe and that their stitches, embedded or installed afterwards with
// SetStitchesUnchecked, follow the corner-stitch convention.
//
// NewUnchecked panics if tiles is empty.
func NewUnchecked(tiles []Tile, opts ...Option) (*Plane, []Handle) {
	if len(tiles) == 0 {
		panic("libplane: cannot create an empty tiling")
	}
	p := newPlane(opts)
	handles := make([]Handle, 0, len(tiles))
	for _, t := range tiles {
		handles = append(handles, p.tiles.Insert(t))
	}
	p.hint = handles[0]
	return p, handles
}

// SetStitchesUnchecked overwrites the stitches of a tile. It is meant for
// building fixtures with NewUnchecked and leaves the caller responsible for
// the corner-stitch convention. It returns false if h is stale.
func (p *Plane) SetStitchesUnchecked(h Handle, s Stitches) bool {
	t, ok := p.tiles.Get(h)
	if !ok {
		return false
	}
	t.Stitches = s
	return true
}

// Get returns a copy of the tile addressed by h, or false if h is stale.
func (p *Plane) Get(h Handle) (Tile, bool) {
	t, ok := p.tiles.Get(h)
	if !ok {
		return Tile{}, false
	}
	return *t, true
}

// SetBody changes the body of a tile. Stitches are not affected, but a plane
// edited this way may leave the maximal strip form expected by Insert and
// Remove. It returns false if h is stale.
func (p *Plane) SetBody(h Handle, body Body) bool {
	t, ok := p.tiles.Get(h)
	if !ok {
		return false
	}
	t.Body = body
	return true
}

// Hint returns the handle used to seed point location.
func (p *Plane) Hint() Handle {
	return p.hint
}

// Len returns the number of tiles.
func (p *Plane) Len() int {
	return p.tiles.Len()
}

func (p *Plane) alloc(r geom.Rect, body Body) Handle {
	return p.tiles.Insert(NewTile(r, body))
}

// free releases h; survivor takes over as hint if h was the hint.
func (p *Plane) free(h, survivor Handle) {
	if _, ok := p.tiles.Remove(h); !ok {
		panic("libplane: tile was already removed")
	}
	if p.hint == h {
		p.hint = survivor
	}
}

// at is the unchecked accessor used by the traversal loops. h must be live.
// The returned pointer is invalidated by alloc.
func (p *Plane) at(h Handle) *Tile {
	return p.tiles.At(h)
}
