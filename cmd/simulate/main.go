// Command simulate replays the journey simulation in the terminal: one
// manifest per station, status tallies, and an automatic upgrade proposal
// when the manifest allows one.  It drives the same coordinator the
// interactive view consumes, with a seedable random source so a run can be
// reproduced exactly.
package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/iliyamo/railway-seat-tracker/internal/model"
	"github.com/iliyamo/railway-seat-tracker/internal/realloc"
	"github.com/iliyamo/railway-seat-tracker/internal/simulator"
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed for a reproducible journey")
	delay := flag.Bool("delay", false, "honor the staggered notification delays")
	flag.Parse()

	gen := simulator.NewGenerator(rand.New(rand.NewSource(*seed)))
	coord := realloc.New(gen, simulator.Stations)

	printStation(coord)
	for {
		events, err := coord.Advance()
		if errors.Is(err, realloc.ErrEndOfLine) {
			fmt.Println("journey complete")
			return
		}
		fmt.Println()
		printStation(coord)
		playEvents(events, *delay)
		demoUpgrade(coord)
	}
}

func printStation(c *realloc.Coordinator) {
	fmt.Printf("── %s (stop %d/%d) ──\n", c.Station(), c.StationIndex()+1, len(simulator.Stations))
	counts := c.Manifest().StatusCounts()
	fmt.Printf("   occupied=%d rac=%d unverified=%d released=%d\n",
		counts[model.SimOccupied], counts[model.SimRAC],
		counts[model.SimUnverified], counts[model.SimReleased])
}

func playEvents(events []realloc.Event, honorDelays bool) {
	var elapsed time.Duration
	for _, ev := range events {
		if honorDelays && ev.After > elapsed {
			time.Sleep(ev.After - elapsed)
			elapsed = ev.After
		}
		fmt.Printf("   [%s] %s\n", ev.Kind, ev.Message)
	}
}

// demoUpgrade runs the suggestion flow once: pick the first RAC candidate,
// propose it into the first released seat, and confirm.
func demoUpgrade(c *realloc.Coordinator) {
	candidates := c.UpgradeCandidates()
	if len(candidates) == 0 {
		return
	}
	proposal, err := c.ProposeUpgrade(candidates[0].ID)
	if err != nil || proposal == nil {
		return
	}
	fmt.Printf("   upgrade proposal: %s (%s) -> %s\n",
		proposal.From.SeatNo, proposal.From.Name, proposal.To.SeatNo)
	ev, err := c.Confirm()
	if err == nil {
		fmt.Printf("   [%s] %s\n", ev.Kind, ev.Message)
	}
}
