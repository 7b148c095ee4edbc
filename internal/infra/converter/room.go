// Package converter translates between the backend's wire encodings and
// domain types. The backend persists booleans as the literal strings
// "true"/"false" (legacy encoding); those strings are decoded to real
// booleans here, at the input edge, and re-encoded only on the way out, so
// no internal logic ever string-compares a boolean.
package converter

import "hotel-booking-client/internal/domain/room"

const wireTrue = "true"
const wireFalse = "false"

// RoomWire mirrors the backend's room document.
type RoomWire struct {
	ID           string `json:"_id"`
	Type         string `json:"type"`
	RoomNumber   string `json:"roomNumber"`
	Description  string `json:"description"`
	Capacity     int    `json:"capacity"`
	Price        string `json:"price"`
	Availability string `json:"availability"`
	Image        string `json:"image"`
}

// RoomFromWire decodes one room record. Only the exact literal "true"
// counts as available, a case-sensitive string match rather than a truthy
// test.
func RoomFromWire(w RoomWire) room.Room {
	return room.Room{
		ID:          w.ID,
		Type:        w.Type,
		Number:      w.RoomNumber,
		Description: w.Description,
		Capacity:    w.Capacity,
		Price:       w.Price,
		Available:   w.Availability == wireTrue,
		ImageURL:    w.Image,
	}
}

func RoomsFromWire(ws []RoomWire) []room.Room {
	out := make([]room.Room, 0, len(ws))
	for _, w := range ws {
		out = append(out, RoomFromWire(w))
	}
	return out
}

// RoomToWire re-encodes a room for the admin write endpoints.
func RoomToWire(r room.Room) RoomWire {
	availability := wireFalse
	if r.Available {
		availability = wireTrue
	}
	return RoomWire{
		ID:           r.ID,
		Type:         r.Type,
		RoomNumber:   r.Number,
		Description:  r.Description,
		Capacity:     r.Capacity,
		Price:        r.Price,
		Availability: availability,
		Image:        r.ImageURL,
	}
}
