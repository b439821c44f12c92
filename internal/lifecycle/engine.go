// Package lifecycle implements the seat status transition rules: a booked
// seat is verified against its PNR, released when the passenger fails to
// board, and rebooked to a new passenger further down the line.
//
// The state machine over (Status, Verified):
//
//	CONFIRMED/unverified --Verify--> CONFIRMED/verified   (terminal)
//	CONFIRMED/unverified --SweepNoShows--> EMPTY
//	EMPTY --Rebook--> CONFIRMED/unverified
//
// Verification protects a seat for the rest of the journey: no rule moves a
// verified seat back to EMPTY, even if the passenger boards late.
package lifecycle

import (
	"context"

	"github.com/iliyamo/railway-seat-tracker/internal/model"
)

// SeatStore is the persistence contract the engine runs on.  The production
// implementation is repository.SeatRepo; repository.MemorySeatRepo serves
// tests.  Implementations must make SweepNoShows a single filtered batch
// write and condition Rebook on the seat still being EMPTY at write time.
type SeatStore interface {
	Create(ctx context.Context, s *model.Seat) error
	GetByID(ctx context.Context, id uint64) (*model.Seat, error)
	GetByPNR(ctx context.Context, pnr string) (*model.Seat, error)
	MarkVerified(ctx context.Context, pnr string) error
	SweepNoShows(ctx context.Context, trainID, nextStation string) (int64, error)
	ListReleased(ctx context.Context, trainID, station string) ([]model.Seat, error)
	Rebook(ctx context.Context, id uint64, passengerName, pnr, boardingStation string) error
}

// Engine applies the transition rules on top of a SeatStore.
type Engine struct {
	store SeatStore
}

// NewEngine constructs an Engine over the given store.
func NewEngine(store SeatStore) *Engine {
	return &Engine{store: store}
}

// AddSeat creates the initial booking for a seat.  New seats always start
// CONFIRMED and unverified with no availability marker, regardless of what
// the caller put in those fields; that is the only entry point into the
// state machine.  Required booking fields are validated first.
func (e *Engine) AddSeat(ctx context.Context, s *model.Seat) error {
	required := []struct{ field, value string }{
		{"trainId", s.TrainID},
		{"coach", s.Coach},
		{"seatNumber", s.SeatNumber},
		{"pnr", s.PNR},
		{"passengerName", s.PassengerName},
	}
	for _, f := range required {
		if f.value == "" {
			return &ValidationError{Field: f.field}
		}
	}
	s.Status = model.StatusConfirmed
	s.Verified = false
	s.AvailableFromStation = nil
	return e.store.Create(ctx, s)
}

// Verify confirms a ticket against the seat assigned to the given PNR and
// returns the updated record.  Status is unaffected; re-verifying an
// already verified seat is a no-op success.
func (e *Engine) Verify(ctx context.Context, pnr string) (*model.Seat, error) {
	if pnr == "" {
		return nil, &ValidationError{Field: "pnr"}
	}
	if err := e.store.MarkVerified(ctx, pnr); err != nil {
		return nil, err
	}
	return e.store.GetByPNR(ctx, pnr)
}

// SweepNoShows releases every unverified CONFIRMED seat of a train, marking
// each as available from nextStation, and returns how many were converted.
// The operation is idempotent: converted seats no longer match the filter.
func (e *Engine) SweepNoShows(ctx context.Context, trainID, nextStation string) (int64, error) {
	if trainID == "" {
		return 0, &ValidationError{Field: "trainId"}
	}
	if nextStation == "" {
		return 0, &ValidationError{Field: "nextStation"}
	}
	return e.store.SweepNoShows(ctx, trainID, nextStation)
}

// QueryReleased lists the seats of a train that became free exactly at the
// given station, the candidates for reassignment at this or a later stop.
func (e *Engine) QueryReleased(ctx context.Context, trainID, station string) ([]model.Seat, error) {
	if trainID == "" {
		return nil, &ValidationError{Field: "trainId"}
	}
	if station == "" {
		return nil, &ValidationError{Field: "station"}
	}
	return e.store.ListReleased(ctx, trainID, station)
}

// Rebook assigns a new passenger to a released seat and returns the updated
// record.  The seat re-enters the machine as CONFIRMED/unverified with the
// availability marker cleared.  Fails with repository.ErrSeatNotAvailable
// unless the seat's status is exactly EMPTY at write time.
func (e *Engine) Rebook(ctx context.Context, seatID uint64, passengerName, pnr, boardingStation string) (*model.Seat, error) {
	if seatID == 0 {
		return nil, &ValidationError{Field: "seatId"}
	}
	required := []struct{ field, value string }{
		{"newPassengerName", passengerName},
		{"newPnr", pnr},
		{"boardingStation", boardingStation},
	}
	for _, f := range required {
		if f.value == "" {
			return nil, &ValidationError{Field: f.field}
		}
	}
	if err := e.store.Rebook(ctx, seatID, passengerName, pnr, boardingStation); err != nil {
		return nil, err
	}
	return e.store.GetByID(ctx, seatID)
}
