package plane

import "fmt"

// joinHorz absorbs rh into its left neighbour lh and frees rh. The tiles
// must share their full height.
func (p *Plane) joinHorz(lh, rh Handle) Handle {
	left := *p.at(lh)
	right := *p.at(rh)

	if left.MinY() != right.MinY() || left.MaxY() != right.MaxY() || left.MaxX() != right.MinX() {
		panic(fmt.Sprintf("libplane: cannot join %v and %v horizontally", left.Bounds, right.Bounds))
	}

	// top edge
	for oh := right.Stitches.Above; !oh.IsZero(); {
		other := p.at(oh)
		if other.Stitches.Below != rh {
			break
		}
		other.Stitches.Below = lh
		oh = other.Stitches.Left
	}

	// bottom edge
	for oh := right.Stitches.Below; !oh.IsZero(); {
		other := p.at(oh)
		if other.Stitches.Above != rh {
			break
		}
		other.Stitches.Above = lh
		oh = other.Stitches.Right
	}

	// right edge
	for oh := right.Stitches.Right; !oh.IsZero(); {
		other := p.at(oh)
		if other.Stitches.Left != rh {
			break
		}
		other.Stitches.Left = lh
		oh = other.Stitches.Below
	}

	left.Bounds.Max.X = right.MaxX()
	left.Stitches.Right = right.Stitches.Right
	left.Stitches.Above = right.Stitches.Above

	*p.at(lh) = left
	p.free(rh, lh)

	return lh
}

// joinVert absorbs uh into the tile lh below it and frees uh. The tiles
// must share their full width.
func (p *Plane) joinVert(lh, uh Handle) Handle {
	lower := *p.at(lh)
	upper := *p.at(uh)

	if lower.MinX() != upper.MinX() || lower.MaxX() != upper.MaxX() || lower.MaxY() != upper.MinY() {
		panic(fmt.Sprintf("libplane: cannot join %v and %v vertically", lower.Bounds, upper.Bounds))
	}

	// right edge
	for oh := upper.Stitches.Right; !oh.IsZero(); {
		other := p.at(oh)
		if other.Stitches.Left != uh {
			break
		}
		other.Stitches.Left = lh
		oh = other.Stitches.Below
	}

	// left edge
	for oh := upper.Stitches.Left; !oh.IsZero(); {
		other := p.at(oh)
		if other.Stitches.Right != uh {
			break
		}
		other.Stitches.Right = lh
		oh = other.Stitches.Above
	}

	// top edge
	for oh := upper.Stitches.Above; !oh.IsZero(); {
		other := p.at(oh)
		if other.Stitches.Below != uh {
			break
		}
		other.Stitches.Below = lh
		oh = other.Stitches.Left
	}

	lower.Bounds.SetMax(upper.Bounds.Max)
	lower.Stitches.Right = upper.Stitches.Right
	lower.Stitches.Above = upper.Stitches.Above

	*p.at(lh) = lower
	p.free(uh, lh)

	return lh
}
