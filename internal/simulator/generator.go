// Package simulator synthesizes per-station seat manifests for the
// reallocation view.  It never reads or writes the persisted seat store:
// every station advance is an independent redraw of the whole train, not an
// evolution of the previous snapshot.
package simulator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/iliyamo/railway-seat-tracker/internal/model"
)

// ManifestSize is the fixed roster size of a generated manifest.
const ManifestSize = 40

// noShowRiskProb is the chance a seat is flagged as a no-show risk,
// independent of its status.
const noShowRiskProb = 0.15

// releasedName is the placeholder shown for seats with no passenger.
const releasedName = "—"

// Manifest is the full simulated seat roster of the train at one station.
type Manifest []model.SimulatedSeat

// statusWeights drive the weighted status draw.  Order matters: selection
// walks the cumulative sums and the last bucket absorbs rounding.
var statusWeights = []struct {
	status model.SimStatus
	weight float64
}{
	{model.SimOccupied, 0.65},
	{model.SimRAC, 0.12},
	{model.SimUnverified, 0.10},
	{model.SimReleased, 0.13},
}

// Generator produces manifests from an injected random source, so tests can
// seed it for reproducible draws.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator backed by rng.  Passing nil seeds one
// from the wall clock.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Generate draws a fresh manifest.  Per seat: a uniform boarding/destination
// pair, a weighted status, a name from the pool by seat index (placeholder
// when released), an AI score uniform in [60,100] (absent when released),
// and an independent no-show risk flag.
func (g *Generator) Generate() Manifest {
	seats := make(Manifest, 0, ManifestSize)
	for i := 0; i < ManifestSize; i++ {
		pair := routePairs[g.rng.Intn(len(routePairs))]
		status := g.drawStatus()

		name := namePool[i%len(namePool)]
		var score *int
		if status == model.SimReleased {
			name = releasedName
		} else {
			v := g.rng.Intn(41) + 60
			score = &v
		}

		seats = append(seats, model.SimulatedSeat{
			ID:          i + 1,
			SeatNo:      fmt.Sprintf("S%02d", i+1),
			Name:        name,
			Boarding:    pair[0],
			Destination: pair[1],
			Status:      status,
			AIScore:     score,
			NoShowRisk:  g.rng.Float64() < noShowRiskProb,
		})
	}
	return seats
}

// drawStatus picks a status by cumulative-threshold selection: draw
// r in [0,1), walk the cumulative weights, first bucket whose sum exceeds r
// wins, last bucket is the fallback.
func (g *Generator) drawStatus() model.SimStatus {
	r := g.rng.Float64()
	acc := 0.0
	for _, b := range statusWeights {
		acc += b.weight
		if r < acc {
			return b.status
		}
	}
	return statusWeights[len(statusWeights)-1].status
}

// StatusCounts tallies the manifest by simulation status.
func (m Manifest) StatusCounts() map[model.SimStatus]int {
	counts := make(map[model.SimStatus]int, len(statusWeights))
	for _, s := range m {
		counts[s.Status]++
	}
	return counts
}
