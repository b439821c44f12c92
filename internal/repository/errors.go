// Package repository defines data access for seat records.  Sentinel
// errors declared here let higher layers distinguish failure modes:
// handlers translate ErrSeatNotFound into HTTP 404 and
// ErrSeatNotAvailable into HTTP 400 without inspecting SQL details.
package repository

import "errors"

// ErrSeatNotFound is returned when a seat lookup by id or PNR yields no rows.
var ErrSeatNotFound = errors.New("seat not found")

// ErrSeatNotAvailable is returned when a rebooking targets a seat whose
// status is not EMPTY at write time.  The conditional UPDATE that produces
// it is what closes the double-booking race between concurrent rebookers.
var ErrSeatNotAvailable = errors.New("seat not available")
