package plane_test

import (
	"math"
	"testing"

	"github.com/eak1mov/go-libplane/geom"
	"github.com/eak1mov/go-libplane/internal/planetest"
	"github.com/eak1mov/go-libplane/plane"
)

func TestFindTileAtUniverse(t *testing.T) {
	p := plane.New()
	for _, pt := range []geom.Point{
		geom.Pt(0, 0),
		geom.Pt(math.MinInt32, math.MinInt32),
		geom.Pt(math.MaxInt32-1, math.MaxInt32-1),
		geom.Pt(-7, 42),
	} {
		h, ok := p.FindTileAt(pt)
		if !ok {
			t.Fatalf("FindTileAt(%v) failed", pt)
		}
		if got, want := h, p.Hint(); got != want {
			t.Errorf("FindTileAt(%v) = %v, want = %v", pt, got, want)
		}
	}
}

func TestFindTileAtOutside(t *testing.T) {
	p := plane.New()
	for _, pt := range []geom.Point{
		geom.Pt(math.MaxInt32, 0),
		geom.Pt(0, math.MaxInt32),
	} {
		if _, ok := p.FindTileAt(pt); ok {
			t.Errorf("FindTileAt(%v) succeeded outside the universe", pt)
		}
	}
}

func TestFindTileQuadrants(t *testing.T) {
	p, handles := planetest.Build(planetest.Quadrants())
	tl, tr, bl, br := handles[0], handles[1], handles[2], handles[3]

	for _, tc := range []struct {
		pt   geom.Point
		want plane.Handle
	}{
		{geom.Pt(0, 0), tr},
		{geom.Pt(-1, 0), tl},
		{geom.Pt(-1, -1), bl},
		{geom.Pt(0, -1), br},
		{geom.Pt(-256, 256), tl},
		{geom.Pt(256, 256), tr},
		{geom.Pt(-256, -256), bl},
		{geom.Pt(256, -256), br},
		{geom.Pt(math.MinInt32, math.MaxInt32-1), tl},
		{geom.Pt(math.MaxInt32-1, math.MinInt32), br},
	} {
		for _, start := range handles {
			got, ok := p.FindTileFrom(start, tc.pt)
			if !ok {
				t.Fatalf("FindTileFrom(%v, %v) failed", start, tc.pt)
			}
			if got != tc.want {
				t.Errorf("FindTileFrom(%v, %v) = %v, want = %v", start, tc.pt, got, tc.want)
			}
		}
	}
}

func TestFindTileFromStale(t *testing.T) {
	p := plane.New()
	h, ok := p.SplitVert(p.Hint(), 0)
	if !ok {
		t.Fatalf("SplitVert failed")
	}
	if _, ok := p.MergeRight(h.Left); !ok {
		t.Fatalf("MergeRight failed")
	}
	if _, ok := p.FindTileFrom(h.Right, geom.Pt(1, 1)); ok {
		t.Errorf("FindTileFrom succeeded from a merged tile")
	}
	if _, ok := p.FindTileFrom(plane.Handle{}, geom.Pt(1, 1)); ok {
		t.Errorf("FindTileFrom succeeded from the zero handle")
	}
}

func TestFindTileGrid(t *testing.T) {
	var tiles []plane.Tile
	xs := []int32{math.MinInt32, -100, -10, 0, 10, 100, math.MaxInt32}
	ys := []int32{math.MinInt32, -50, 0, 50, math.MaxInt32}
	for j := range len(ys) - 1 {
		for i := range len(xs) - 1 {
			tiles = append(tiles, plane.NewTile(geom.Rt(xs[i], ys[j], xs[i+1], ys[j+1]), plane.Space))
		}
	}
	p, handles := planetest.Build(tiles)

	for i, tile := range tiles {
		for _, start := range handles {
			for _, pt := range []geom.Point{tile.Bounds.Min, tile.Bounds.Center(), geom.Pt(tile.Bounds.Max.X-1, tile.Bounds.Max.Y-1)} {
				got, ok := p.FindTileFrom(start, pt)
				if !ok {
					t.Fatalf("FindTileFrom(%v, %v) failed", start, pt)
				}
				if got != handles[i] {
					t.Errorf("FindTileFrom(%v, %v) = %v, want = %v", start, pt, got, handles[i])
				}
			}
		}
	}
}
