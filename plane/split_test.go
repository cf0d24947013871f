package plane_test

import (
	"math"
	"testing"

	"github.com/eak1mov/go-libplane/geom"
	"github.com/eak1mov/go-libplane/internal/planetest"
	"github.com/eak1mov/go-libplane/plane"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSplitVert(t *testing.T) {
	p := plane.New()
	s, ok := p.SplitVert(p.Hint(), 0)
	require.True(t, ok)
	require.NoError(t, p.Validate())

	left, _ := p.Get(s.Left)
	right, _ := p.Get(s.Right)
	if got, want := left.Bounds, geom.Rt(math.MinInt32, math.MinInt32, 0, math.MaxInt32); got != want {
		t.Errorf("left = %v, want = %v", got, want)
	}
	if got, want := right.Bounds, geom.Rt(0, math.MinInt32, math.MaxInt32, math.MaxInt32); got != want {
		t.Errorf("right = %v, want = %v", got, want)
	}
	if got, want := left.Stitches, (plane.Stitches{Right: s.Right}); got != want {
		t.Errorf("left stitches = %v, want = %v", got, want)
	}
	if got, want := right.Stitches, (plane.Stitches{Left: s.Left}); got != want {
		t.Errorf("right stitches = %v, want = %v", got, want)
	}
}

func TestSplitHorz(t *testing.T) {
	p := plane.New()
	s, ok := p.SplitHorz(p.Hint(), -5)
	require.True(t, ok)
	require.NoError(t, p.Validate())

	lower, _ := p.Get(s.Lower)
	upper, _ := p.Get(s.Upper)
	if got, want := lower.Bounds.Max.Y, int32(-5); got != want {
		t.Errorf("lower.Max.Y = %v, want = %v", got, want)
	}
	if got, want := upper.Bounds.Min.Y, int32(-5); got != want {
		t.Errorf("upper.Min.Y = %v, want = %v", got, want)
	}
	if got, want := lower.Stitches, (plane.Stitches{Above: s.Upper}); got != want {
		t.Errorf("lower stitches = %v, want = %v", got, want)
	}
	if got, want := upper.Stitches, (plane.Stitches{Below: s.Lower}); got != want {
		t.Errorf("upper stitches = %v, want = %v", got, want)
	}
}

func TestSplitRejected(t *testing.T) {
	p := plane.New()
	h := p.Hint()
	if _, ok := p.SplitVert(h, math.MinInt32); ok {
		t.Errorf("SplitVert at the left edge succeeded")
	}
	if _, ok := p.SplitHorz(h, math.MaxInt32); ok {
		t.Errorf("SplitHorz at the top edge succeeded")
	}
	if _, ok := p.SplitVert(plane.Handle{}, 0); ok {
		t.Errorf("SplitVert of the zero handle succeeded")
	}
	if got, want := p.Len(), 1; got != want {
		t.Errorf("Len = %v, want = %v", got, want)
	}
}

func TestSplitQuadrants(t *testing.T) {
	p, handles := planetest.Build(planetest.Quadrants())
	require.NoError(t, p.Validate())

	// Cut every quadrant along both axes and check the stitches after each step.
	for _, h := range handles {
		tile, _ := p.Get(h)
		c := tile.Bounds.Center()
		s, ok := p.SplitVert(h, c.X)
		require.True(t, ok)
		require.NoError(t, p.Validate())
		_, ok = p.SplitHorz(s.Left, c.Y)
		require.True(t, ok)
		require.NoError(t, p.Validate())
		_, ok = p.SplitHorz(s.Right, c.Y)
		require.True(t, ok)
		require.NoError(t, p.Validate())
	}
	if got, want := p.Len(), 16; got != want {
		t.Errorf("Len = %v, want = %v", got, want)
	}
}

func TestSplitRect(t *testing.T) {
	for _, tc := range []struct {
		name string
		r    geom.Rect
		want geom.Rect
		len  int
	}{
		{"inside", geom.Rt(-10, -10, 10, 10), geom.Rt(-10, -10, 10, 10), 5},
		{"corner", geom.Rect{Min: geom.Pt(5, 5), Max: geom.Universe.Max}, geom.Rect{Min: geom.Pt(5, 5), Max: geom.Universe.Max}, 3},
		{"whole", geom.Universe, geom.Universe, 1},
		{"band", geom.Rt(math.MinInt32, 0, math.MaxInt32, 1), geom.Rt(math.MinInt32, 0, math.MaxInt32, 1), 3},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := plane.New()
			body := plane.Body(7)
			require.True(t, p.SetBody(p.Hint(), body))

			h, ok := p.Split(p.Hint(), tc.r)
			require.True(t, ok)
			require.NoError(t, p.Validate())

			got, _ := p.Get(h)
			if got.Bounds != tc.want {
				t.Errorf("Split = %v, want = %v", got.Bounds, tc.want)
			}
			if got.Body != body {
				t.Errorf("Split body = %v, want = %v", got.Body, body)
			}
			if got, want := p.Len(), tc.len; got != want {
				t.Errorf("Len = %v, want = %v", got, want)
			}
			for _, e := range planetest.Snapshot(p) {
				if e.Body != body {
					t.Errorf("tile %v body = %v, want = %v", e.Bounds, e.Body, body)
				}
			}
		})
	}
}

func TestSplitRectDisjoint(t *testing.T) {
	p := plane.New()
	s, ok := p.SplitVert(p.Hint(), 0)
	require.True(t, ok)

	before := planetest.Snapshot(p)
	if _, ok := p.Split(s.Left, geom.Rt(1, 1, 5, 5)); ok {
		t.Errorf("Split of a disjoint rect succeeded")
	}
	if _, ok := p.Split(s.Left, geom.Rect{}); ok {
		t.Errorf("Split of an empty rect succeeded")
	}
	if diff := cmp.Diff(before, planetest.Snapshot(p)); diff != "" {
		t.Errorf("Split changed the plane (-want+got):\n%s", diff)
	}
}
