//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hotel-booking-client/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

func TestParseStayPeriod(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		errIs    error
	}{
		{name: "future range", checkIn: "2026-09-15", checkOut: "2026-09-18"},
		{name: "check-in today", checkIn: "2026-09-10", checkOut: "2026-09-12"},
		{name: "same-day stay", checkIn: "2026-09-15", checkOut: "2026-09-15"},
		{name: "check-in in the past", checkIn: "2026-09-09", checkOut: "2026-09-12", errIs: reservation.ErrCheckInInPast},
		{name: "check-out before check-in", checkIn: "2026-09-15", checkOut: "2026-09-14", errIs: reservation.ErrCheckOutBeforeCheckIn},
		{name: "missing check-in", checkIn: "", checkOut: "2026-09-15", errIs: reservation.ErrCheckInRequired},
		{name: "missing check-out", checkIn: "2026-09-15", checkOut: "", errIs: reservation.ErrCheckOutRequired},
		{name: "unparseable check-in", checkIn: "15/09/2026", checkOut: "2026-09-18", errIs: reservation.ErrCheckInRequired},
		{name: "unparseable check-out", checkIn: "2026-09-15", checkOut: "next week", errIs: reservation.ErrCheckOutRequired},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			stay, err := reservation.ParseStayPeriod(c.checkIn, c.checkOut, today)

			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.checkIn, stay.CheckInString())
			assert.Equal(t, c.checkOut, stay.CheckOutString())
		})
	}
}

func TestStayPeriod(t *testing.T) {
	t.Run("nights counts the full days between the dates", func(t *testing.T) {
		stay, err := reservation.ParseStayPeriod("2026-09-15", "2026-09-18", today)
		require.NoError(t, err)
		assert.Equal(t, 3, stay.Nights())
	})

	t.Run("same-day stay has zero nights", func(t *testing.T) {
		stay, err := reservation.ParseStayPeriod("2026-09-15", "2026-09-15", today)
		require.NoError(t, err)
		assert.Equal(t, 0, stay.Nights())
	})

	t.Run("time-of-day on the reference date is ignored", func(t *testing.T) {
		lateToday := time.Date(2026, 9, 10, 23, 45, 0, 0, time.UTC)

		_, err := reservation.ParseStayPeriod("2026-09-10", "2026-09-11", lateToday)
		assert.NoError(t, err)
	})
}

func TestNewReservation(t *testing.T) {
	stay, err := reservation.ParseStayPeriod("2026-09-15", "2026-09-18", today)
	require.NoError(t, err)

	t.Run("assembles a draft without an id", func(t *testing.T) {
		draft, err := reservation.NewReservation(
			"user-1", "room-1", "Deluxe", stay,
			reservation.RequirementsFromLabels([]string{"Crib"}),
			reservation.NewNote("late arrival"),
		)
		require.NoError(t, err)

		assert.Empty(t, draft.ID())
		assert.Equal(t, "user-1", draft.UserID())
		assert.Equal(t, "room-1", draft.RoomID())
		assert.Equal(t, "Deluxe", draft.RoomType())
		assert.Equal(t, "late arrival", draft.Note().String())
		assert.True(t, draft.Requirements().Any())
	})

	t.Run("requires a user", func(t *testing.T) {
		_, err := reservation.NewReservation("", "room-1", "Deluxe", stay, reservation.NewRequirements(), reservation.Note{})
		require.ErrorIs(t, err, reservation.ErrUserRequired)
	})

	t.Run("requires a resolved room", func(t *testing.T) {
		_, err := reservation.NewReservation("user-1", "", "Deluxe", stay, reservation.NewRequirements(), reservation.Note{})
		require.ErrorIs(t, err, reservation.ErrRoomRequired)
	})
}
