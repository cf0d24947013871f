package plane

func canMergeHorz(left, right *Tile) bool {
	return left.MaxX() == right.MinX() &&
		left.MinY() == right.MinY() && left.MaxY() == right.MaxY()
}

func canMergeVert(lower, upper *Tile) bool {
	return lower.MaxY() == upper.MinY() &&
		lower.MinX() == upper.MinX() && lower.MaxX() == upper.MaxX()
}

func canMergeBody(a, b *Tile) bool {
	return a.Body == b.Body
}

// MergeLeft merges a tile with its left neighbour if both have the same
// height, position and body. It returns the surviving tile, which is the
// left neighbour, or false if the tiles cannot be merged or h is stale.
func (p *Plane) MergeLeft(h Handle) (Handle, bool) {
	if !p.tiles.Contains(h) {
		return Handle{}, false
	}
	return p.mergeLeft(h)
}

// MergeRight merges a tile with its right neighbour. The tile survives.
func (p *Plane) MergeRight(h Handle) (Handle, bool) {
	if !p.tiles.Contains(h) {
		return Handle{}, false
	}
	return p.mergeRight(h)
}

// MergeBelow merges a tile with the neighbour below it. The neighbour
// survives.
func (p *Plane) MergeBelow(h Handle) (Handle, bool) {
	if !p.tiles.Contains(h) {
		return Handle{}, false
	}
	return p.mergeBelow(h)
}

// MergeAbove merges a tile with the neighbour above it. The tile survives.
func (p *Plane) MergeAbove(h Handle) (Handle, bool) {
	if !p.tiles.Contains(h) {
		return Handle{}, false
	}
	return p.mergeAbove(h)
}

func (p *Plane) mergeLeft(h Handle) (Handle, bool) {
	t := p.at(h)
	oh := t.Stitches.Left
	if oh.IsZero() {
		return Handle{}, false
	}
	other := p.at(oh)
	if !canMergeHorz(other, t) || !canMergeBody(other, t) {
		return Handle{}, false
	}
	return p.joinHorz(oh, h), true
}

func (p *Plane) mergeRight(h Handle) (Handle, bool) {
	t := p.at(h)
	oh := t.Stitches.Right
	if oh.IsZero() {
		return Handle{}, false
	}
	other := p.at(oh)
	if !canMergeHorz(t, other) || !canMergeBody(t, other) {
		return Handle{}, false
	}
	return p.joinHorz(h, oh), true
}

func (p *Plane) mergeBelow(h Handle) (Handle, bool) {
	t := p.at(h)
	oh := t.Stitches.Below
	if oh.IsZero() {
		return Handle{}, false
	}
	other := p.at(oh)
	if !canMergeVert(other, t) || !canMergeBody(other, t) {
		return Handle{}, false
	}
	return p.joinVert(oh, h), true
}

func (p *Plane) mergeAbove(h Handle) (Handle, bool) {
	t := p.at(h)
	oh := t.Stitches.Above
	if oh.IsZero() {
		return Handle{}, false
	}
	other := p.at(oh)
	if !canMergeVert(t, other) || !canMergeBody(t, other) {
		return Handle{}, false
	}
	return p.joinVert(h, oh), true
}
