package model

import "time"

// SeatStatus is the persisted lifecycle state of a seat. The durable model
// is deliberately binary: a seat either carries a confirmed booking or is
// free to be reassigned. Verification is tracked separately on the seat.
type SeatStatus string

const (
	// StatusConfirmed means the seat carries a booking. The booking may or
	// may not have been verified against the passenger's PNR yet.
	StatusConfirmed SeatStatus = "CONFIRMED"
	// StatusEmpty means the seat was released after a no-show and is
	// available for rebooking from AvailableFromStation onward.
	StatusEmpty SeatStatus = "EMPTY"
)

// Seat is the durable record of one seat on one train.  The natural key is
// (TrainID, Coach, SeatNumber); PNR identifies the current booking.
//
// Invariant: AvailableFromStation is non-nil if and only if Status is EMPTY.
// The passenger fields of an EMPTY seat are stale leftovers from the
// previous booking and must be overwritten on rebooking, never read.
//
// JSON tags follow the public API's camelCase wire format.
type Seat struct {
	ID                   uint64     `json:"id"`                   // seats.id
	TrainID              string     `json:"trainId"`              // seats.train_id
	Coach                string     `json:"coach"`                // seats.coach
	SeatNumber           string     `json:"seatNumber"`           // seats.seat_number
	PNR                  string     `json:"pnr"`                  // seats.pnr
	PassengerName        string     `json:"passengerName"`        // seats.passenger_name
	BoardingStation      string     `json:"boardingStation"`      // seats.boarding_station
	Verified             bool       `json:"verified"`             // seats.verified
	Status               SeatStatus `json:"status"`               // seats.status
	AvailableFromStation *string    `json:"availableFromStation"` // seats.available_from_station
	CreatedAt            time.Time  `json:"createdAt"`            // seats.created_at
	UpdatedAt            time.Time  `json:"updatedAt"`            // seats.updated_at
}
