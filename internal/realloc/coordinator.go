// Package realloc mediates interactive seat swaps and upgrade suggestions
// over a simulated manifest.  All mutation goes through a two-step
// select/confirm protocol; nothing is swapped silently.
package realloc

import (
	"errors"
	"fmt"
	"time"

	"github.com/iliyamo/railway-seat-tracker/internal/model"
	"github.com/iliyamo/railway-seat-tracker/internal/simulator"
)

// maxUpgradeCandidates bounds the upgrade suggestion panel.
const maxUpgradeCandidates = 3

var (
	// ErrReleasedSeat is returned when a released seat is selected as a
	// swap participant.  Released seats are only swap targets in the
	// upgrade flow.
	ErrReleasedSeat = errors.New("released seat cannot be selected")
	// ErrSeatUnknown is returned for a seat id outside the manifest.
	ErrSeatUnknown = errors.New("no such seat in manifest")
	// ErrNoProposal is returned by Confirm when nothing is pending.
	ErrNoProposal = errors.New("no pending swap proposal")
	// ErrNotUpgradeCandidate is returned when an upgrade is requested for
	// a seat that is not in RAC state.
	ErrNotUpgradeCandidate = errors.New("seat is not an upgrade candidate")
	// ErrEndOfLine is returned by Advance at the final station.
	ErrEndOfLine = errors.New("already at the final station")
)

// Proposal is a swap awaiting operator confirmation.  From and To are
// snapshots of the two seats at proposal time.
type Proposal struct {
	From model.SimulatedSeat
	To   model.SimulatedSeat
}

// Coordinator owns the current manifest value and the interactive swap
// state.  It is not safe for concurrent use; the simulation runs on a
// single control thread.
type Coordinator struct {
	gen        *simulator.Generator
	stations   []string
	stationIdx int
	manifest   simulator.Manifest
	pendingID  int // armed first selection, 0 when none
	proposal   *Proposal
}

// New builds a Coordinator over the given station list with an initial
// manifest drawn from gen.
func New(gen *simulator.Generator, stations []string) *Coordinator {
	return NewWithManifest(gen, stations, gen.Generate())
}

// NewWithManifest is New with an explicit starting manifest, for callers
// that need a known roster (tests, replays).
func NewWithManifest(gen *simulator.Generator, stations []string, m simulator.Manifest) *Coordinator {
	return &Coordinator{gen: gen, stations: stations, manifest: m}
}

// Manifest returns the current manifest value.
func (c *Coordinator) Manifest() simulator.Manifest { return c.manifest }

// Station returns the name of the current stop.
func (c *Coordinator) Station() string { return c.stations[c.stationIdx] }

// StationIndex returns the zero-based position along the route.
func (c *Coordinator) StationIndex() int { return c.stationIdx }

// Pending returns the armed first selection, if any.
func (c *Coordinator) Pending() (int, bool) { return c.pendingID, c.pendingID != 0 }

// Proposal returns the swap awaiting confirmation, or nil.
func (c *Coordinator) Proposal() *Proposal { return c.proposal }

// Select advances the two-step swap protocol with the given seat:
// with nothing armed it arms the seat; re-selecting the armed seat clears
// it; selecting a second, different seat returns a Proposal for
// confirmation.  Selecting a released seat is rejected without mutation.
func (c *Coordinator) Select(seatID int) (*Proposal, error) {
	seat, ok := c.seatByID(seatID)
	if !ok {
		return nil, ErrSeatUnknown
	}
	if seat.Status == model.SimReleased {
		return nil, ErrReleasedSeat
	}
	switch {
	case c.pendingID == 0:
		c.pendingID = seatID
		return nil, nil
	case c.pendingID == seatID:
		c.pendingID = 0
		return nil, nil
	default:
		from, _ := c.seatByID(c.pendingID)
		c.proposal = &Proposal{From: from, To: seat}
		return c.proposal, nil
	}
}

// Confirm applies the pending proposal: only the seat-number/status pair is
// exchanged between the two seats, so identity fields (name, boarding,
// destination) stay with their original seat ids and the status multiset of
// the manifest is unchanged.  Returns the swap notice.
func (c *Coordinator) Confirm() (Event, error) {
	if c.proposal == nil {
		return Event{}, ErrNoProposal
	}
	from, to := c.proposal.From, c.proposal.To
	for i := range c.manifest {
		switch c.manifest[i].ID {
		case from.ID:
			c.manifest[i].SeatNo = to.SeatNo
			c.manifest[i].Status = to.Status
		case to.ID:
			c.manifest[i].SeatNo = from.SeatNo
			c.manifest[i].Status = from.Status
		}
	}
	c.proposal = nil
	c.pendingID = 0
	return Event{
		Kind:    EventSwapConfirmed,
		Message: fmt.Sprintf("Seat swap confirmed: %s ↔ %s", from.SeatNo, to.SeatNo),
	}, nil
}

// Cancel discards the pending proposal and selection without mutation.
func (c *Coordinator) Cancel() {
	c.proposal = nil
	c.pendingID = 0
}

// UpgradeCandidates returns up to three RAC seats eligible for promotion
// into a released seat, in manifest order.
func (c *Coordinator) UpgradeCandidates() []model.SimulatedSeat {
	var out []model.SimulatedSeat
	for _, s := range c.manifest {
		if s.Status == model.SimRAC {
			out = append(out, s)
			if len(out) == maxUpgradeCandidates {
				break
			}
		}
	}
	return out
}

// ProposeUpgrade pairs a RAC seat with the first currently released seat
// and returns the resulting proposal, subject to the same confirm/cancel
// protocol as a manual swap.  With no released seat on the manifest the
// call is a no-op and returns nil.
func (c *Coordinator) ProposeUpgrade(seatID int) (*Proposal, error) {
	seat, ok := c.seatByID(seatID)
	if !ok {
		return nil, ErrSeatUnknown
	}
	if seat.Status != model.SimRAC {
		return nil, ErrNotUpgradeCandidate
	}
	for _, target := range c.manifest {
		if target.Status == model.SimReleased {
			c.pendingID = seatID
			c.proposal = &Proposal{From: seat, To: target}
			return c.proposal, nil
		}
	}
	return nil, nil
}

// Advance moves to the next station: pending selections are cleared, the
// manifest is regenerated wholesale, and an ordered batch of informational
// events is returned (boarding notices for the first two occupied seats,
// then the wait-list promotion notice).  The delays on the events are
// display staggering for the view; the advance itself is synchronous and
// always completes.  At the final station the coordinator refuses to move.
func (c *Coordinator) Advance() ([]Event, error) {
	if c.stationIdx >= len(c.stations)-1 {
		return nil, ErrEndOfLine
	}
	c.stationIdx++
	c.manifest = c.gen.Generate()
	c.pendingID = 0
	c.proposal = nil

	var events []Event
	boarded := 0
	for _, s := range c.manifest {
		if s.Status != model.SimOccupied {
			continue
		}
		events = append(events, Event{
			Kind:    EventBoarded,
			Message: fmt.Sprintf("%s boarded at seat %s", s.Name, s.SeatNo),
			After:   time.Duration(boarded) * boardingStagger,
		})
		boarded++
		if boarded == 2 {
			break
		}
	}
	events = append(events, Event{
		Kind:    EventRACUpgraded,
		Message: "2 RAC passengers upgraded to confirmed",
		After:   racNoticeDelay,
	})
	return events, nil
}

func (c *Coordinator) seatByID(id int) (model.SimulatedSeat, bool) {
	for _, s := range c.manifest {
		if s.ID == id {
			return s, true
		}
	}
	return model.SimulatedSeat{}, false
}
