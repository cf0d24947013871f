package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/eak1mov/go-libplane/plane"
	"github.com/google/subcommands"
	"github.com/schollz/progressbar/v3"
)

type benchCmd struct {
	count    int
	seed     uint64
	size     int
	bulk     bool
	validate bool
}

func (c *benchCmd) Name() string     { return "bench" }
func (c *benchCmd) Synopsis() string { return "insert and remove random rectangles" }
func (c *benchCmd) Usage() string {
	return "planeutils bench [-n <count>] [-seed <seed>] [-size <width>] [-bulk] [-validate]\n"
}
func (c *benchCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.count, "n", 10000, "Number of rectangles")
	f.Uint64Var(&c.seed, "seed", 1, "Random seed")
	f.IntVar(&c.size, "size", 100000, "Width of the square the rectangles are placed in")
	f.BoolVar(&c.bulk, "bulk", false, "Insert in Hilbert order")
	f.BoolVar(&c.validate, "validate", true, "Validate the plane after each phase")
}

func (c *benchCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if c.count <= 0 || c.size < 2 {
		log.Println("invalid -n or -size")
		return subcommands.ExitUsageError
	}
	rng := rand.New(rand.NewPCG(c.seed, c.seed))
	items := randomItems(rng, c.count, int32(c.size))

	p := plane.New()
	start := time.Now()

	var handles []plane.Handle
	if c.bulk {
		handles = p.InsertAll(items)
	} else {
		bar := progressbar.NewOptions(len(items), progressbar.OptionShowIts(), progressbar.OptionShowCount())
		for _, item := range items {
			h, _ := p.Insert(item.Bounds, item.Body)
			handles = append(handles, h)
			bar.Add(1)
		}
		bar.Finish()
		fmt.Println()
	}

	inserted := 0
	for _, h := range handles {
		if !h.IsZero() {
			inserted++
		}
	}
	fmt.Printf("insert: %d of %d rectangles, %d tiles, %v\n", inserted, len(items), p.Len(), time.Since(start))
	if !c.check(p) {
		return subcommands.ExitFailure
	}

	start = time.Now()
	bar := progressbar.NewOptions(-1, progressbar.OptionShowIts(), progressbar.OptionShowCount())
	removed := 0
	for i, h := range handles {
		if h.IsZero() || i%2 == 1 {
			continue
		}
		if _, err := p.Remove(h); err != nil {
			log.Println(err)
			return subcommands.ExitFailure
		}
		removed++
		bar.Add(1)
	}
	bar.Finish()
	fmt.Println()

	fmt.Printf("remove: %d rectangles, %d tiles, %v\n", removed, p.Len(), time.Since(start))
	if !c.check(p) {
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

func (c *benchCmd) check(p *plane.Plane) bool {
	if !c.validate {
		return true
	}
	if err := p.ValidateStrips(); err != nil {
		log.Println(err)
		return false
	}
	return true
}
