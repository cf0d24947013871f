package plane

import (
	"cmp"
	"slices"

	"github.com/eak1mov/go-libplane/geom"
	"github.com/google/hilbert"
)

// Item describes a solid tile to be inserted.
type Item struct {
	Bounds geom.Rect
	Body   Body
}

// hilbertOrder is the side of the grid the item centres are snapped to.
const hilbertOrder = 1 << 16

func hilbertCode(h *hilbert.Hilbert, pt geom.Point) int {
	x := int((uint32(pt.X) ^ 0x80000000) >> 16)
	y := int((uint32(pt.Y) ^ 0x80000000) >> 16)
	code, err := h.MapInverse(x, y)
	if err != nil {
		panic(err)
	}
	return code
}

// InsertAll inserts items in the order of a Hilbert curve through their
// centres, so that each point location starts close to the previous tile.
// The result is parallel to items; items that Insert rejects get the zero
// Handle.
func (p *Plane) InsertAll(items []Item) []Handle {
	h, err := hilbert.NewHilbert(hilbertOrder)
	if err != nil {
		panic(err)
	}

	codes := make([]int, len(items))
	order := make([]int, len(items))
	for i, item := range items {
		codes[i] = hilbertCode(h, item.Bounds.Center())
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(codes[a], codes[b])
	})

	handles := make([]Handle, len(items))
	rejected := 0
	for _, i := range order {
		th, err := p.Insert(items[i].Bounds, items[i].Body)
		if err != nil {
			rejected++
			continue
		}
		handles[i] = th
	}

	p.logger.Debug("libplane: insert all", "items", len(items), "rejected", rejected)
	return handles
}
