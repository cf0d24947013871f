package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/eak1mov/go-libplane/geom"
	"github.com/eak1mov/go-libplane/plane"
)

func parsePoint(s string) (geom.Point, error) {
	var pt geom.Point
	if _, err := fmt.Sscanf(s, "%d,%d", &pt.X, &pt.Y); err != nil {
		return geom.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return pt, nil
}

func parseRect(s string) (geom.Rect, error) {
	var x0, y0, x1, y1 int32
	if _, err := fmt.Sscanf(s, "%d,%d,%d,%d", &x0, &y0, &x1, &y1); err != nil {
		return geom.Rect{}, fmt.Errorf("invalid rect %q: %w", s, err)
	}
	return geom.Rt(x0, y0, x1, y1), nil
}

// parseItems parses rectangles of the form x0,y0,x1,y1[=body]. Items without
// a body get their 1-based position.
func parseItems(args []string) ([]plane.Item, error) {
	items := make([]plane.Item, 0, len(args))
	for i, arg := range args {
		rectValue, bodyValue, found := strings.Cut(arg, "=")
		r, err := parseRect(rectValue)
		if err != nil {
			return nil, err
		}
		body := plane.Body(i + 1)
		if found {
			if _, err := fmt.Sscanf(bodyValue, "%d", &body); err != nil {
				return nil, fmt.Errorf("invalid body %q: %w", bodyValue, err)
			}
		}
		items = append(items, plane.Item{Bounds: r, Body: body})
	}
	return items, nil
}

// randomItems returns n rectangles scattered over a size x size window at the
// origin, with bodies 1..n. The rectangles may overlap.
func randomItems(rng *rand.Rand, n int, size int32) []plane.Item {
	items := make([]plane.Item, 0, n)
	maxSide := max(size/8, 2)
	for i := range n {
		x := rng.Int32N(size - 1)
		y := rng.Int32N(size - 1)
		w := 1 + rng.Int32N(min(maxSide, size-x))
		h := 1 + rng.Int32N(min(maxSide, size-y))
		items = append(items, plane.Item{
			Bounds: geom.Rt(x, y, x+w, y+h),
			Body:   plane.Body(i + 1),
		})
	}
	return items
}

func newPlane(verbose bool) *plane.Plane {
	if verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	return plane.New(plane.WithLogger(slog.Default()))
}

func printTile(h plane.Handle, t plane.Tile) {
	kind := "space"
	if t.IsSolid() {
		kind = fmt.Sprintf("body=%d", t.Body)
	}
	fmt.Printf("%v\t%v\t%s\n", h, t.Bounds, kind)
}
