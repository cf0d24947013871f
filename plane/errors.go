package plane

import "errors"

var (
	// ErrStaleHandle indicates a handle to a tile that no longer exists.
	ErrStaleHandle = errors.New("libplane: stale tile handle")

	// ErrInvalidRect indicates an empty rectangle, a rectangle outside the
	// plane, or a solid tile without a body.
	ErrInvalidRect = errors.New("libplane: invalid rectangle")

	// ErrOccupied indicates that the area of a new solid tile is not empty.
	ErrOccupied = errors.New("libplane: area is occupied")

	// ErrNotSolid indicates an attempt to remove a tile that is space.
	ErrNotSolid = errors.New("libplane: tile is not solid")

	// ErrCorrupt indicates a broken tiling, reported by Validate.
	ErrCorrupt = errors.New("libplane: corrupt tiling")
)
