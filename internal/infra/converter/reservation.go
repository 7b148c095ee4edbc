package converter

import (
	"time"

	"hotel-booking-client/internal/domain/reservation"
	"hotel-booking-client/internal/usecase/readmodel"
)

// ReservationWire mirrors the backend's reservation document. User and Room
// are the populated references the list endpoints attach; they are absent on
// write payloads.
type ReservationWire struct {
	ID                  string       `json:"_id"`
	CheckInDate         string       `json:"checkInDate"`
	CheckOutDate        string       `json:"checkOutDate"`
	UserID              string       `json:"userId"`
	RoomID              string       `json:"roomId"`
	User                *UserRefWire `json:"user,omitempty"`
	Room                *RoomRefWire `json:"room,omitempty"`
	SpecialRequirements []string     `json:"specialRequirements"`
	AdditionalRequests  string       `json:"additionalRequests"`
}

type UserRefWire struct {
	Name string `json:"name"`
}

type RoomRefWire struct {
	Type       string `json:"type"`
	RoomNumber string `json:"roomNumber"`
}

// CreateReservationWire is the Contract A payload. SpecialRequirements is
// the canonical fixed-length "true"/"false" array, the same shape the edit
// path submits.
type CreateReservationWire struct {
	CheckInDate         string   `json:"checkInDate"`
	CheckOutDate        string   `json:"checkOutDate"`
	UserID              string   `json:"userId"`
	RoomID              string   `json:"roomId"`
	RoomType            string   `json:"roomType"`
	SpecialRequirements []string `json:"specialRequirements"`
	AdditionalRequests  string   `json:"additionalRequests"`
}

// UpdateReservationWire is the Contract B payload.
type UpdateReservationWire struct {
	CheckInDate         string   `json:"checkInDate"`
	CheckOutDate        string   `json:"checkOutDate"`
	RoomType            string   `json:"roomType"`
	RoomNumber          string   `json:"roomNumber"`
	SpecialRequirements []string `json:"specialRequirements"`
	AdditionalRequests  string   `json:"additionalRequests"`
}

// ReservationFromWire decodes a stored reservation into the domain entity.
// Stored date strings are trusted as-is (they were validated on write), so
// the stay period is rebuilt without re-running the no-past-booking rule.
func ReservationFromWire(w ReservationWire) *reservation.Reservation {
	roomType := ""
	roomNumber := ""
	if w.Room != nil {
		roomType = w.Room.Type
		roomNumber = w.Room.RoomNumber
	}

	checkIn, _ := time.Parse(reservation.DateFormat, trimDate(w.CheckInDate))
	checkOut, _ := time.Parse(reservation.DateFormat, trimDate(w.CheckOutDate))
	stay, _ := reservation.NewStayPeriod(checkIn, checkOut, checkIn)

	return reservation.Rehydrate(
		w.ID,
		w.UserID,
		w.RoomID,
		roomType,
		roomNumber,
		stay,
		reservation.DecodeRequirements(w.SpecialRequirements),
		reservation.NewNote(w.AdditionalRequests),
	)
}

// CustomerName returns the populated owner name, if the backend attached one.
func (w ReservationWire) CustomerName() string {
	if w.User == nil {
		return ""
	}
	return w.User.Name
}

// ReservationRMFromWire projects a stored reservation onto its list row. The
// row derives from the decoded entity; only the populated customer name is
// read straight off the wire, since the entity does not carry it.
func ReservationRMFromWire(w ReservationWire) *readmodel.ReservationRM {
	r := ReservationFromWire(w)
	reqs := r.Requirements()
	return &readmodel.ReservationRM{
		ID:                 r.ID(),
		CheckInDate:        r.Stay().CheckInString(),
		CheckOutDate:       r.Stay().CheckOutString(),
		UserID:             r.UserID(),
		RoomID:             r.RoomID(),
		CustomerName:       w.CustomerName(),
		RoomType:           r.RoomType(),
		RoomNumber:         r.RoomNumber(),
		Requirements:       reqs,
		RequirementLabels:  reqs.Labels(),
		AdditionalRequests: r.Note().String(),
	}
}

func ReservationRMsFromWire(ws []ReservationWire) []*readmodel.ReservationRM {
	out := make([]*readmodel.ReservationRM, 0, len(ws))
	for _, w := range ws {
		out = append(out, ReservationRMFromWire(w))
	}
	return out
}

// CreateToWire encodes a validated draft for submission.
func CreateToWire(r *reservation.Reservation) CreateReservationWire {
	return CreateReservationWire{
		CheckInDate:         r.Stay().CheckInString(),
		CheckOutDate:        r.Stay().CheckOutString(),
		UserID:              r.UserID(),
		RoomID:              r.RoomID(),
		RoomType:            r.RoomType(),
		SpecialRequirements: r.Requirements().Encode(),
		AdditionalRequests:  r.Note().String(),
	}
}

// UpdateToWire encodes an operator edit for submission.
func UpdateToWire(u reservation.Update) UpdateReservationWire {
	return UpdateReservationWire{
		CheckInDate:         u.Stay.CheckInString(),
		CheckOutDate:        u.Stay.CheckOutString(),
		RoomType:            u.RoomType,
		RoomNumber:          u.RoomNumber,
		SpecialRequirements: u.Requirements.Encode(),
		AdditionalRequests:  u.Note.String(),
	}
}

// trimDate tolerates full RFC3339 timestamps in stored date fields; the
// backend has historically written both.
func trimDate(s string) string {
	if len(s) > len("2006-01-02") {
		return s[:len("2006-01-02")]
	}
	return s
}
