//go:build unit

package builder

import (
	"hotel-booking-client/internal/domain/reservation"
	"hotel-booking-client/internal/usecase/readmodel"
	"hotel-booking-client/tests/fakeapi"
)

type ReservationBuilder struct {
	ID                  string
	CheckInDate         string
	CheckOutDate        string
	UserID              string
	RoomID              string
	CustomerName        string
	RoomType            string
	RoomNumber          string
	SpecialRequirements []string
	AdditionalRequests  string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:                  "res-1",
		CheckInDate:         "2026-09-10",
		CheckOutDate:        "2026-09-12",
		UserID:              "user-1",
		RoomID:              "room-1",
		CustomerName:        "Jane Perera",
		RoomType:            "Deluxe",
		RoomNumber:          "101",
		SpecialRequirements: []string{"false", "false", "false", "false"},
		AdditionalRequests:  "",
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildRM() *readmodel.ReservationRM {
	reqs := reservation.DecodeRequirements(b.SpecialRequirements)
	return &readmodel.ReservationRM{
		ID:                 b.ID,
		CheckInDate:        b.CheckInDate,
		CheckOutDate:       b.CheckOutDate,
		UserID:             b.UserID,
		RoomID:             b.RoomID,
		CustomerName:       b.CustomerName,
		RoomType:           b.RoomType,
		RoomNumber:         b.RoomNumber,
		Requirements:       reqs,
		RequirementLabels:  reqs.Labels(),
		AdditionalRequests: b.AdditionalRequests,
	}
}

func (b *ReservationBuilder) BuildRecord() fakeapi.ReservationRecord {
	return fakeapi.ReservationRecord{
		ID:                  b.ID,
		CheckInDate:         b.CheckInDate,
		CheckOutDate:        b.CheckOutDate,
		UserID:              b.UserID,
		RoomID:              b.RoomID,
		SpecialRequirements: b.SpecialRequirements,
		AdditionalRequests:  b.AdditionalRequests,
	}
}
