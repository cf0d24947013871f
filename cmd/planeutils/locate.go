package main

import (
	"context"
	"flag"
	"fmt"
	"iter"
	"log"

	"github.com/eak1mov/go-libplane/plane"
	"github.com/google/subcommands"
)

type locateCmd struct {
	neighbours bool
}

func (c *locateCmd) Name() string     { return "locate" }
func (c *locateCmd) Synopsis() string { return "print the tile containing a point" }
func (c *locateCmd) Usage() string {
	return "planeutils locate [-n] x,y x0,y0,x1,y1[=body]...\n"
}
func (c *locateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.neighbours, "n", false, "Also print the neighbours of the tile")
}

func (c *locateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if f.NArg() < 1 {
		log.Println("missing point")
		return subcommands.ExitUsageError
	}
	pt, err := parsePoint(f.Arg(0))
	if err != nil {
		log.Println(err)
		return subcommands.ExitUsageError
	}
	items, err := parseItems(f.Args()[1:])
	if err != nil {
		log.Println(err)
		return subcommands.ExitUsageError
	}

	p := newPlane(false)
	for _, h := range p.InsertAll(items) {
		if h.IsZero() {
			log.Println("some rectangles overlap and were skipped")
			break
		}
	}

	h, ok := p.FindTileAt(pt)
	if !ok {
		log.Printf("point %v is outside the plane", pt)
		return subcommands.ExitFailure
	}
	t, _ := p.Get(h)
	printTile(h, t)

	if c.neighbours {
		for _, side := range []struct {
			name  string
			tiles iter.Seq[plane.Handle]
		}{
			{"left", p.LeftTiles(h)},
			{"bottom", p.BottomTiles(h)},
			{"right", p.RightTiles(h)},
			{"top", p.TopTiles(h)},
		} {
			fmt.Println(side.name + ":")
			for nh := range side.tiles {
				n, _ := p.Get(nh)
				printTile(nh, n)
			}
		}
	}
	return subcommands.ExitSuccess
}
