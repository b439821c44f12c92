package repository

import (
	"context"
	"sync"
	"time"

	"github.com/iliyamo/railway-seat-tracker/internal/model"
)

// MemorySeatRepo is an in-process seat store with the same conditional-write
// semantics as SeatRepo.  It backs the engine in tests and when running
// without a database; it is not durable.
type MemorySeatRepo struct {
	mu     sync.Mutex
	nextID uint64
	seats  map[uint64]*model.Seat
}

// NewMemorySeatRepo returns an empty in-memory store.
func NewMemorySeatRepo() *MemorySeatRepo {
	return &MemorySeatRepo{nextID: 1, seats: make(map[uint64]*model.Seat)}
}

func (r *MemorySeatRepo) Create(_ context.Context, s *model.Seat) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = r.nextID
	r.nextID++
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now
	cp := *s
	r.seats[cp.ID] = &cp
	return nil
}

func (r *MemorySeatRepo) GetByID(_ context.Context, id uint64) (*model.Seat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.seats[id]
	if !ok {
		return nil, ErrSeatNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *MemorySeatRepo) GetByPNR(_ context.Context, pnr string) (*model.Seat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.seats {
		if s.PNR == pnr {
			cp := *s
			return &cp, nil
		}
	}
	return nil, ErrSeatNotFound
}

func (r *MemorySeatRepo) MarkVerified(_ context.Context, pnr string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.seats {
		if s.PNR == pnr {
			s.Verified = true
			s.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return ErrSeatNotFound
}

func (r *MemorySeatRepo) SweepNoShows(_ context.Context, trainID, nextStation string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, s := range r.seats {
		if s.TrainID == trainID && !s.Verified && s.Status == model.StatusConfirmed {
			station := nextStation
			s.Status = model.StatusEmpty
			s.AvailableFromStation = &station
			s.UpdatedAt = time.Now().UTC()
			n++
		}
	}
	return n, nil
}

func (r *MemorySeatRepo) ListReleased(_ context.Context, trainID, station string) ([]model.Seat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []model.Seat
	for _, s := range r.seats {
		if s.TrainID == trainID && s.Status == model.StatusEmpty &&
			s.AvailableFromStation != nil && *s.AvailableFromStation == station {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (r *MemorySeatRepo) Rebook(_ context.Context, id uint64, passengerName, pnr, boardingStation string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.seats[id]
	if !ok || s.Status != model.StatusEmpty {
		return ErrSeatNotAvailable
	}
	s.PassengerName = passengerName
	s.PNR = pnr
	s.BoardingStation = boardingStation
	s.Status = model.StatusConfirmed
	s.Verified = false
	s.AvailableFromStation = nil
	s.UpdatedAt = time.Now().UTC()
	return nil
}
