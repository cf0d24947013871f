package plane

import (
	"github.com/eak1mov/go-libplane/geom"
	"github.com/eak1mov/go-libplane/internal/arena"
)

// Body identifies the material of a tile. Space is the empty body; any other
// value is an opaque identifier owned by the caller.
type Body uint64

const Space Body = 0

// Handle addresses a tile in a Plane. Handles stay valid until the tile is
// absorbed by a merge. The zero Handle refers to no tile.
type Handle = arena.Key

// Stitches are the corner stitches of a tile. A zero Handle marks an edge
// lying on the boundary of the plane.
//
//	                         Above
//	                           ^
//	               +-----------+ --> Right
//	               |           |
//	               |           |
//	     Left <--  +-----------+
//	               |
//	               v
//	             Below
type Stitches struct {
	// Left is the bottommost tile along the left edge.
	Left Handle
	// Below is the leftmost tile along the bottom edge.
	Below Handle
	// Right is the topmost tile along the right edge.
	Right Handle
	// Above is the rightmost tile along the top edge.
	Above Handle
}

// Tile is a rectangle of the plane together with its body and stitches.
type Tile struct {
	Bounds   geom.Rect
	Body     Body
	Stitches Stitches
}

func NewTile(r geom.Rect, body Body) Tile {
	return Tile{Bounds: r, Body: body}
}

func (t *Tile) IsSolid() bool { return t.Body != Space }
func (t *Tile) IsSpace() bool { return t.Body == Space }

func (t *Tile) MinX() int32 { return t.Bounds.Min.X }
func (t *Tile) MinY() int32 { return t.Bounds.Min.Y }
func (t *Tile) MaxX() int32 { return t.Bounds.Max.X }
func (t *Tile) MaxY() int32 { return t.Bounds.Max.Y }
