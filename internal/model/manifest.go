package model

// SimStatus is the finer-grained seat state used by the journey simulator.
// It refines the persisted two-state model for display purposes; the
// mapping back to the durable model is given by Persisted below.
type SimStatus string

const (
	SimOccupied   SimStatus = "occupied"   // verified CONFIRMED
	SimRAC        SimStatus = "rac"        // wait-list entry, upgrade candidate
	SimUnverified SimStatus = "unverified" // CONFIRMED, PNR not yet checked
	SimReleased   SimStatus = "released"   // EMPTY
)

// Persisted maps a simulation status onto the durable (Status, Verified)
// pair.  RAC has no persisted analogue: a wait-listed passenger holds no
// seat record, so ok is false for SimRAC and for unknown values.
func (s SimStatus) Persisted() (status SeatStatus, verified bool, ok bool) {
	switch s {
	case SimOccupied:
		return StatusConfirmed, true, true
	case SimUnverified:
		return StatusConfirmed, false, true
	case SimReleased:
		return StatusEmpty, false, true
	default:
		return "", false, false
	}
}

// SimulatedSeat is one entry in a per-station manifest snapshot.  It is
// ephemeral: the simulator redraws the full manifest at every stop and
// never reads the persisted store.
//
// AIScore is a synthetic confidence score in [60,100]; it is nil when the
// seat is released.  NoShowRisk is drawn independently of Status.
type SimulatedSeat struct {
	ID          int       `json:"id"`
	SeatNo      string    `json:"seatNo"`
	Name        string    `json:"name"`
	Boarding    string    `json:"boarding"`
	Destination string    `json:"destination"`
	Status      SimStatus `json:"status"`
	AIScore     *int      `json:"aiScore"`
	NoShowRisk  bool      `json:"noShowRisk"`
}
