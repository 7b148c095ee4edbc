//go:build unit

package builder

import (
	"hotel-booking-client/internal/domain/room"
	"hotel-booking-client/internal/usecase/readmodel"
	"hotel-booking-client/tests/fakeapi"

	"github.com/jinzhu/copier"
)

type RoomBuilder struct {
	ID           string
	Type         string
	Number       string
	Description  string
	Capacity     int
	Price        string
	Availability string
	Image        string
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:           "room-1",
		Type:         "Deluxe",
		Number:       "101",
		Description:  "Sea view double",
		Capacity:     2,
		Price:        "15000",
		Availability: "true",
		Image:        "img-1.jpg",
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) BuildDomain() room.Room {
	return room.Room{
		ID:          b.ID,
		Type:        b.Type,
		Number:      b.Number,
		Description: b.Description,
		Capacity:    b.Capacity,
		Price:       b.Price,
		Available:   b.Availability == "true",
		ImageURL:    b.Image,
	}
}

func (b *RoomBuilder) BuildRM() readmodel.RoomRM {
	var rm readmodel.RoomRM
	_ = copier.Copy(&rm, b.BuildDomain())
	return rm
}

func (b *RoomBuilder) BuildRecord() fakeapi.RoomRecord {
	return fakeapi.RoomRecord{
		ID:           b.ID,
		Type:         b.Type,
		RoomNumber:   b.Number,
		Description:  b.Description,
		Capacity:     b.Capacity,
		Price:        b.Price,
		Availability: b.Availability,
		Image:        b.Image,
	}
}
