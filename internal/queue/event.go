// Package queue defines message payloads exchanged over the message broker.
package queue

// SeatRebookedEvent is published when a released seat is successfully
// assigned to a new passenger.  It carries enough information for
// downstream consumers to log or notify without querying the seat store.
type SeatRebookedEvent struct {
	SeatID          uint64 `json:"seat_id"`
	TrainID         string `json:"train_id"`
	Coach           string `json:"coach"`
	SeatNumber      string `json:"seat_number"`
	PNR             string `json:"pnr"`
	PassengerName   string `json:"passenger_name"`
	BoardingStation string `json:"boarding_station"`
	RebookedAt      string `json:"rebooked_at"`
}

// NoShowSweepEvent is published after a no-show sweep converts seats to
// EMPTY for a train, even when zero seats matched.
type NoShowSweepEvent struct {
	TrainID       string `json:"train_id"`
	NextStation   string `json:"next_station"`
	ReleasedCount int64  `json:"released_count"`
	SweptAt       string `json:"swept_at"`
}
