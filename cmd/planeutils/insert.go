package main

import (
	"context"
	"flag"
	"log"

	"github.com/eak1mov/go-libplane/geom"
	"github.com/google/subcommands"
)

type insertCmd struct {
	query   string
	verbose bool
}

func (c *insertCmd) Name() string     { return "insert" }
func (c *insertCmd) Synopsis() string { return "insert rectangles and print the resulting tiles" }
func (c *insertCmd) Usage() string {
	return "planeutils insert [-q x0,y0,x1,y1] [-v] x0,y0,x1,y1[=body]...\n"
}
func (c *insertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Query window (default: bounding box of the rectangles)")
	f.BoolVar(&c.verbose, "v", false, "Verbose logging")
}

func (c *insertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	items, err := parseItems(f.Args())
	if err != nil {
		log.Println(err)
		return subcommands.ExitUsageError
	}

	p := newPlane(c.verbose)
	var window geom.Rect
	for _, item := range items {
		if _, err := p.Insert(item.Bounds, item.Body); err != nil {
			log.Println(err)
			return subcommands.ExitFailure
		}
		window = union(window, item.Bounds)
	}

	if c.query != "" {
		window, err = parseRect(c.query)
		if err != nil {
			log.Println(err)
			return subcommands.ExitUsageError
		}
	}
	if window.Empty() {
		window = geom.Universe
	}

	for h, t := range p.Tiles(window) {
		printTile(h, t)
	}
	return subcommands.ExitSuccess
}

func union(r, s geom.Rect) geom.Rect {
	if r.Empty() {
		return s
	}
	return geom.Rect{
		Min: geom.Pt(min(r.Min.X, s.Min.X), min(r.Min.Y, s.Min.Y)),
		Max: geom.Pt(max(r.Max.X, s.Max.X), max(r.Max.Y, s.Max.Y)),
	}
}
