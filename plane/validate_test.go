package plane_test

import (
	"errors"
	"testing"

	"github.com/eak1mov/go-libplane/geom"
	"github.com/eak1mov/go-libplane/internal/planetest"
	"github.com/eak1mov/go-libplane/plane"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	u := geom.Universe
	for _, tc := range []struct {
		name  string
		build func() *plane.Plane
		valid bool
	}{
		{
			name:  "fresh",
			build: func() *plane.Plane { return plane.New() },
			valid: true,
		},
		{
			name: "quadrants",
			build: func() *plane.Plane {
				p, _ := planetest.Build(planetest.Quadrants())
				return p
			},
			valid: true,
		},
		{
			name: "gap",
			build: func() *plane.Plane {
				p, _ := planetest.Build(planetest.Quadrants()[:3])
				return p
			},
		},
		{
			name: "overlap",
			build: func() *plane.Plane {
				p, _ := planetest.Build(append(planetest.Quadrants(), plane.NewTile(geom.Rt(-5, -5, 5, 5), 1)))
				return p
			},
		},
		{
			name: "no stitches",
			build: func() *plane.Plane {
				p, _ := plane.NewUnchecked(planetest.Quadrants())
				return p
			},
		},
		{
			name: "swapped stitch",
			build: func() *plane.Plane {
				p, handles := planetest.Build(planetest.Quadrants())
				tl, _ := p.Get(handles[0])
				s := tl.Stitches
				s.Below = handles[3]
				p.SetStitchesUnchecked(handles[0], s)
				return p
			},
		},
		{
			name: "stitch across boundary",
			build: func() *plane.Plane {
				p, handles := planetest.Build([]plane.Tile{
					plane.NewTile(u, plane.Space),
				})
				p.SetStitchesUnchecked(handles[0], plane.Stitches{Left: handles[0]})
				return p
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.build().Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate failed: %v", err)
			}
			if !tc.valid && !errors.Is(err, plane.ErrCorrupt) {
				t.Errorf("Validate error = %v, want = %v", err, plane.ErrCorrupt)
			}
		})
	}
}

func TestValidateEmptyTile(t *testing.T) {
	p, _ := plane.NewUnchecked([]plane.Tile{
		plane.NewTile(geom.Universe, plane.Space),
		plane.NewTile(geom.Rt(1, 1, 1, 5), 1),
	})
	err := p.Validate()
	require.ErrorIs(t, err, plane.ErrCorrupt)
	require.ErrorContains(t, err, "is empty")
}

func TestValidateStrips(t *testing.T) {
	// Stacked space tiles with the same width.
	p := plane.New()
	if _, ok := p.SplitHorz(p.Hint(), 0); !ok {
		t.Fatalf("SplitHorz failed")
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
	if err := p.ValidateStrips(); !errors.Is(err, plane.ErrCorrupt) {
		t.Errorf("ValidateStrips error = %v, want = %v", err, plane.ErrCorrupt)
	}

	// Side by side space tiles.
	p = plane.New()
	if _, ok := p.SplitVert(p.Hint(), 0); !ok {
		t.Fatalf("SplitVert failed")
	}
	if err := p.ValidateStrips(); !errors.Is(err, plane.ErrCorrupt) {
		t.Errorf("ValidateStrips error = %v, want = %v", err, plane.ErrCorrupt)
	}

	p, _ = planetest.Build(planetest.Framed(geom.Rt(0, 0, 1, 1), [5]plane.Body{1}))
	if err := p.ValidateStrips(); err != nil {
		t.Errorf("ValidateStrips failed: %v", err)
	}
}
