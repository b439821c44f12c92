package repository // repository defines data access for seats

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"errors"       // errors for sentinel comparison

	"github.com/iliyamo/railway-seat-tracker/internal/model"
)

const seatColumns = `id, train_id, coach, seat_number, pnr, passenger_name,
	boarding_station, verified, status, available_from_station, created_at, updated_at`

// SeatRepo provides methods to work with seats in the database.  Status
// transitions are issued as conditional UPDATEs so that the previously-read
// status is re-validated at write time; callers never do read-then-write.
type SeatRepo struct {
	db *sql.DB
}

// NewSeatRepo constructs a SeatRepo with the given DB handle.
func NewSeatRepo(db *sql.DB) *SeatRepo {
	return &SeatRepo{db: db}
}

// Create inserts a single seat record. On success the seat's ID is populated.
func (r *SeatRepo) Create(ctx context.Context, s *model.Seat) error {
	const q = `INSERT INTO seats (train_id, coach, seat_number, pnr, passenger_name,
	           boarding_station, verified, status, available_from_station)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		s.TrainID, s.Coach, s.SeatNumber, s.PNR, s.PassengerName,
		s.BoardingStation, s.Verified, s.Status, s.AvailableFromStation,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// GetByID retrieves a seat by its primary key.
func (r *SeatRepo) GetByID(ctx context.Context, id uint64) (*model.Seat, error) {
	const q = `SELECT ` + seatColumns + ` FROM seats WHERE id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, q, id))
}

// GetByPNR retrieves the unique seat currently assigned to a booking reference.
func (r *SeatRepo) GetByPNR(ctx context.Context, pnr string) (*model.Seat, error) {
	const q = `SELECT ` + seatColumns + ` FROM seats WHERE pnr = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, q, pnr))
}

// MarkVerified sets verified=true on the seat assigned to the given PNR.
// Status is untouched.  Returns ErrSeatNotFound when no seat matches.
func (r *SeatRepo) MarkVerified(ctx context.Context, pnr string) error {
	const q = `UPDATE seats SET verified = TRUE, updated_at = CURRENT_TIMESTAMP WHERE pnr = ?`
	res, err := r.db.ExecContext(ctx, q, pnr)
	if err != nil {
		return err
	}
	// A verified seat matches too, so re-verification stays a success and
	// RowsAffected alone cannot distinguish "missing" from "already set".
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByPNR(ctx, pnr); err != nil {
			return err
		}
	}
	return nil
}

// SweepNoShows converts every unverified CONFIRMED seat of a train to EMPTY,
// stamping available_from_station with the next stop.  The filter and the
// write happen in one statement, so seats verified concurrently during the
// sweep are excluded consistently.  Returns the number of seats converted;
// re-running with the same arguments matches zero rows.
//
// Note the selection is purely (train, verified, status): a passenger whose
// boarding station is still ahead of the train is swept like any other.
func (r *SeatRepo) SweepNoShows(ctx context.Context, trainID, nextStation string) (int64, error) {
	const q = `UPDATE seats
	           SET status = ?, available_from_station = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE train_id = ? AND verified = FALSE AND status = ?`
	res, err := r.db.ExecContext(ctx, q, model.StatusEmpty, nextStation, trainID, model.StatusConfirmed)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ListReleased returns the seats of a train that became free exactly at the
// given station: status EMPTY and available_from_station equal to it.
func (r *SeatRepo) ListReleased(ctx context.Context, trainID, station string) ([]model.Seat, error) {
	const q = `SELECT ` + seatColumns + ` FROM seats
	           WHERE train_id = ? AND status = ? AND available_from_station = ?
	           ORDER BY coach, seat_number`
	rows, err := r.db.QueryContext(ctx, q, trainID, model.StatusEmpty, station)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Seat
	for rows.Next() {
		s, err := scanSeat(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Rebook assigns a new passenger to an EMPTY seat.  The status check is part
// of the UPDATE's WHERE clause (compare-and-set), so two concurrent rebooking
// requests against the same seat cannot both succeed.  Returns
// ErrSeatNotAvailable when the seat is missing or not EMPTY.
func (r *SeatRepo) Rebook(ctx context.Context, id uint64, passengerName, pnr, boardingStation string) error {
	const q = `UPDATE seats
	           SET passenger_name = ?, pnr = ?, boarding_station = ?,
	               status = ?, verified = FALSE, available_from_station = NULL,
	               updated_at = CURRENT_TIMESTAMP
	           WHERE id = ? AND status = ?`
	res, err := r.db.ExecContext(ctx, q, passengerName, pnr, boardingStation,
		model.StatusConfirmed, id, model.StatusEmpty)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSeatNotAvailable
	}
	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanSeat.
type scanner interface {
	Scan(dest ...any) error
}

func (r *SeatRepo) scanOne(row *sql.Row) (*model.Seat, error) {
	s, err := scanSeat(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSeatNotFound
		}
		return nil, err
	}
	return s, nil
}

func scanSeat(sc scanner) (*model.Seat, error) {
	var s model.Seat
	var avail sql.NullString
	if err := sc.Scan(
		&s.ID, &s.TrainID, &s.Coach, &s.SeatNumber, &s.PNR, &s.PassengerName,
		&s.BoardingStation, &s.Verified, &s.Status, &avail, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if avail.Valid {
		s.AvailableFromStation = &avail.String
	}
	return &s, nil
}
