package handler // handler contains the seat lifecycle HTTP handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/railway-seat-tracker/internal/lifecycle"
	"github.com/iliyamo/railway-seat-tracker/internal/model"
	"github.com/iliyamo/railway-seat-tracker/internal/repository"
)

// EventPublisher receives notifications after successful mutations.  The
// AMQP implementation lives in the service package; a nil publisher
// disables notifications (tests).
type EventPublisher interface {
	SeatRebooked(ctx context.Context, s model.Seat)
	NoShowSweep(ctx context.Context, trainID, nextStation string, released int64)
}

// SeatHandler exposes the lifecycle engine over the /api routes.
type SeatHandler struct {
	Engine *lifecycle.Engine
	Events EventPublisher
}

// NewSeatHandler constructs a SeatHandler.
func NewSeatHandler(engine *lifecycle.Engine, events EventPublisher) *SeatHandler {
	return &SeatHandler{Engine: engine, Events: events}
}

// AddSeat handles POST /api/add-seat.  The body is a full seat record; the
// engine forces new seats into the CONFIRMED/unverified starting state.
func (h *SeatHandler) AddSeat(c echo.Context) error {
	var seat model.Seat
	if err := c.Bind(&seat); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := h.Engine.AddSeat(c.Request().Context(), &seat); err != nil {
		var ve *lifecycle.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Seat Added", "seat": seat})
}

// VerifySeat handles POST /api/verify-seat.  Body: {pnr}.  404 when no seat
// matches the booking reference.
func (h *SeatHandler) VerifySeat(c echo.Context) error {
	var body struct {
		PNR string `json:"pnr"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	seat, err := h.Engine.Verify(c.Request().Context(), body.PNR)
	if err != nil {
		var ve *lifecycle.ValidationError
		switch {
		case errors.As(err, &ve):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Error()})
		case errors.Is(err, repository.ErrSeatNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Seat not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Seat Verified", "seat": seat})
}

// MarkNoShow handles POST /api/mark-no-show/:trainId.  Body: {nextStation}.
// Runs the batch no-show sweep and reports how many seats were converted.
func (h *SeatHandler) MarkNoShow(c echo.Context) error {
	trainID := c.Param("trainId")
	var body struct {
		NextStation string `json:"nextStation"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	count, err := h.Engine.SweepNoShows(c.Request().Context(), trainID, body.NextStation)
	if err != nil {
		var ve *lifecycle.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if h.Events != nil {
		h.Events.NoShowSweep(c.Request().Context(), trainID, body.NextStation, count)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "No-show seats converted", "modifiedCount": count})
}

// EmptySeats handles GET /api/empty-seats/:trainId/:station and lists the
// seats released exactly at this checkpoint.
func (h *SeatHandler) EmptySeats(c echo.Context) error {
	seats, err := h.Engine.QueryReleased(c.Request().Context(), c.Param("trainId"), c.Param("station"))
	if err != nil {
		var ve *lifecycle.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if seats == nil {
		seats = []model.Seat{}
	}
	return c.JSON(http.StatusOK, echo.Map{"seats": seats})
}

// RebookSeat handles POST /api/rebook-seat.  Body: {seatId,
// newPassengerName, newPnr, boardingStation}.  400 with "Seat not
// available" unless the target seat is EMPTY at write time.
func (h *SeatHandler) RebookSeat(c echo.Context) error {
	var body struct {
		SeatID           uint64 `json:"seatId"`
		NewPassengerName string `json:"newPassengerName"`
		NewPNR           string `json:"newPnr"`
		BoardingStation  string `json:"boardingStation"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	seat, err := h.Engine.Rebook(c.Request().Context(), body.SeatID, body.NewPassengerName, body.NewPNR, body.BoardingStation)
	if err != nil {
		var ve *lifecycle.ValidationError
		switch {
		case errors.As(err, &ve):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Error()})
		case errors.Is(err, repository.ErrSeatNotAvailable):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Seat not available"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
	}
	if h.Events != nil {
		h.Events.SeatRebooked(c.Request().Context(), *seat)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Seat Rebooked", "seat": seat})
}
