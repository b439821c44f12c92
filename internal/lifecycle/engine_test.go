package lifecycle_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/railway-seat-tracker/internal/lifecycle"
	"github.com/iliyamo/railway-seat-tracker/internal/model"
	"github.com/iliyamo/railway-seat-tracker/internal/repository"
)

func newEngine() (*lifecycle.Engine, *repository.MemorySeatRepo) {
	store := repository.NewMemorySeatRepo()
	return lifecycle.NewEngine(store), store
}

func addSeat(t *testing.T, e *lifecycle.Engine, trainID, coach, number, pnr, name string) *model.Seat {
	t.Helper()
	s := &model.Seat{
		TrainID:         trainID,
		Coach:           coach,
		SeatNumber:      number,
		PNR:             pnr,
		PassengerName:   name,
		BoardingStation: "New Delhi",
	}
	require.NoError(t, e.AddSeat(context.Background(), s))
	return s
}

// checkInvariant asserts availableFromStation is set exactly on EMPTY seats.
func checkInvariant(t *testing.T, s *model.Seat) {
	t.Helper()
	if s.Status == model.StatusEmpty {
		assert.NotNil(t, s.AvailableFromStation, "EMPTY seat must carry availableFromStation")
	} else {
		assert.Nil(t, s.AvailableFromStation, "non-EMPTY seat must not carry availableFromStation")
	}
}

func TestAddSeat(t *testing.T) {
	engine, _ := newEngine()
	ctx := context.Background()

	t.Run("starts confirmed and unverified", func(t *testing.T) {
		station := "Gwalior"
		s := &model.Seat{
			TrainID:       "T1",
			Coach:         "B2",
			SeatNumber:    "17",
			PNR:           "PNR123",
			PassengerName: "Arjun Sharma",
			// Caller-supplied lifecycle fields must be overridden.
			Status:               model.StatusEmpty,
			Verified:             true,
			AvailableFromStation: &station,
		}
		require.NoError(t, engine.AddSeat(ctx, s))
		assert.NotZero(t, s.ID)
		assert.Equal(t, model.StatusConfirmed, s.Status)
		assert.False(t, s.Verified)
		assert.Nil(t, s.AvailableFromStation)
		checkInvariant(t, s)
	})

	t.Run("missing required field", func(t *testing.T) {
		err := engine.AddSeat(ctx, &model.Seat{TrainID: "T1", Coach: "B2", SeatNumber: "18", PNR: "PNR124"})
		var ve *lifecycle.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "passengerName", ve.Field)
	})
}

func TestVerify(t *testing.T) {
	engine, _ := newEngine()
	ctx := context.Background()
	addSeat(t, engine, "T1", "B1", "01", "PNR200", "Priya Patel")

	t.Run("sets verified without touching status", func(t *testing.T) {
		seat, err := engine.Verify(ctx, "PNR200")
		require.NoError(t, err)
		assert.True(t, seat.Verified)
		assert.Equal(t, model.StatusConfirmed, seat.Status)
		checkInvariant(t, seat)
	})

	t.Run("re-verification is a no-op success", func(t *testing.T) {
		seat, err := engine.Verify(ctx, "PNR200")
		require.NoError(t, err)
		assert.True(t, seat.Verified)
	})

	t.Run("unknown pnr", func(t *testing.T) {
		_, err := engine.Verify(ctx, "NOPE")
		assert.ErrorIs(t, err, repository.ErrSeatNotFound)
	})
}

func TestSweepNoShows(t *testing.T) {
	engine, _ := newEngine()
	ctx := context.Background()

	unverified := addSeat(t, engine, "T1", "B1", "01", "PNR300", "Rohan Mehta")
	verified := addSeat(t, engine, "T1", "B1", "02", "PNR301", "Kavya Singh")
	otherTrain := addSeat(t, engine, "T2", "A1", "01", "PNR302", "Amit Kumar")
	_, err := engine.Verify(ctx, verified.PNR)
	require.NoError(t, err)

	t.Run("converts only unverified confirmed seats of the train", func(t *testing.T) {
		count, err := engine.SweepNoShows(ctx, "T1", "Agra Cantt")
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		swept, err := engine.QueryReleased(ctx, "T1", "Agra Cantt")
		require.NoError(t, err)
		require.Len(t, swept, 1)
		assert.Equal(t, unverified.ID, swept[0].ID)
		assert.Equal(t, model.StatusEmpty, swept[0].Status)
		require.NotNil(t, swept[0].AvailableFromStation)
		assert.Equal(t, "Agra Cantt", *swept[0].AvailableFromStation)
		checkInvariant(t, &swept[0])
	})

	t.Run("verified seat is protected", func(t *testing.T) {
		seat, err := engine.Verify(ctx, verified.PNR)
		require.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, seat.Status)
		checkInvariant(t, seat)
	})

	t.Run("other trains untouched", func(t *testing.T) {
		seat, err := engine.Verify(ctx, otherTrain.PNR)
		require.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, seat.Status)
	})

	t.Run("idempotent on re-run", func(t *testing.T) {
		count, err := engine.SweepNoShows(ctx, "T1", "Agra Cantt")
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("missing arguments", func(t *testing.T) {
		var ve *lifecycle.ValidationError
		_, err := engine.SweepNoShows(ctx, "", "Agra Cantt")
		assert.ErrorAs(t, err, &ve)
		_, err = engine.SweepNoShows(ctx, "T1", "")
		assert.ErrorAs(t, err, &ve)
	})
}

func TestQueryReleased(t *testing.T) {
	engine, _ := newEngine()
	ctx := context.Background()

	addSeat(t, engine, "T1", "B1", "01", "PNR400", "Sneha Rao")
	addSeat(t, engine, "T1", "B1", "02", "PNR401", "Vijay Nair")
	_, err := engine.SweepNoShows(ctx, "T1", "Gwalior")
	require.NoError(t, err)

	// A later sweep at another station releases a seat added afterwards.
	addSeat(t, engine, "T1", "B1", "03", "PNR402", "Deepika Joshi")
	_, err = engine.SweepNoShows(ctx, "T1", "Jhansi Jn")
	require.NoError(t, err)

	atGwalior, err := engine.QueryReleased(ctx, "T1", "Gwalior")
	require.NoError(t, err)
	assert.Len(t, atGwalior, 2)
	for _, s := range atGwalior {
		assert.Equal(t, model.StatusEmpty, s.Status)
		require.NotNil(t, s.AvailableFromStation)
		assert.Equal(t, "Gwalior", *s.AvailableFromStation)
	}

	atJhansi, err := engine.QueryReleased(ctx, "T1", "Jhansi Jn")
	require.NoError(t, err)
	assert.Len(t, atJhansi, 1)

	nowhere, err := engine.QueryReleased(ctx, "T1", "Nagpur")
	require.NoError(t, err)
	assert.Empty(t, nowhere)
}

func TestRebook(t *testing.T) {
	engine, _ := newEngine()
	ctx := context.Background()

	seat := addSeat(t, engine, "T1", "B1", "01", "PNR500", "Rahul Gupta")

	t.Run("rejects a confirmed seat and leaves it unchanged", func(t *testing.T) {
		_, err := engine.Rebook(ctx, seat.ID, "Ananya Das", "PNR501", "Bhopal Jn")
		assert.ErrorIs(t, err, repository.ErrSeatNotAvailable)

		cur, err := engine.Verify(ctx, "PNR500") // still findable under the old booking
		require.NoError(t, err)
		assert.Equal(t, "Rahul Gupta", cur.PassengerName)
		assert.Equal(t, model.StatusConfirmed, cur.Status)
	})

	t.Run("rejects unknown seat", func(t *testing.T) {
		_, err := engine.Rebook(ctx, 9999, "Ananya Das", "PNR501", "Bhopal Jn")
		assert.ErrorIs(t, err, repository.ErrSeatNotAvailable)
	})

	t.Run("accepts an empty seat and resets the lifecycle fields", func(t *testing.T) {
		seat2 := addSeat(t, engine, "T1", "B1", "02", "PNR502", "Suresh Iyer")
		_, err := engine.SweepNoShows(ctx, "T1", "Itarsi Jn")
		require.NoError(t, err)

		rebooked, err := engine.Rebook(ctx, seat2.ID, "Meera Pillai", "PNR503", "Itarsi Jn")
		require.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, rebooked.Status)
		assert.False(t, rebooked.Verified)
		assert.Nil(t, rebooked.AvailableFromStation)
		assert.Equal(t, "Meera Pillai", rebooked.PassengerName)
		assert.Equal(t, "PNR503", rebooked.PNR)
		assert.Equal(t, "Itarsi Jn", rebooked.BoardingStation)
		checkInvariant(t, rebooked)
	})

	t.Run("rebooked seat cannot be rebooked again", func(t *testing.T) {
		seat3 := addSeat(t, engine, "T1", "B1", "03", "PNR504", "Kiran Reddy")
		_, err := engine.SweepNoShows(ctx, "T1", "Nagpur")
		require.NoError(t, err)

		_, err = engine.Rebook(ctx, seat3.ID, "Pooja Verma", "PNR505", "Nagpur")
		require.NoError(t, err)
		_, err = engine.Rebook(ctx, seat3.ID, "Nikhil Shah", "PNR506", "Nagpur")
		assert.ErrorIs(t, err, repository.ErrSeatNotAvailable)
	})

	t.Run("missing fields never reach the store", func(t *testing.T) {
		var ve *lifecycle.ValidationError
		_, err := engine.Rebook(ctx, seat.ID, "", "PNR507", "Wardha")
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "newPassengerName", ve.Field)
	})
}
