package reservation

import "errors"

var (
	ErrUserRequired = errors.New("reservation must belong to a user")
	ErrRoomRequired = errors.New("reservation must reference a room")
)

// NewReservation assembles a draft for submission. The room reference comes
// from resolving the chosen type against the availability view, never from
// the user directly; the id is assigned by the backend on create.
func NewReservation(
	userID string,
	roomID string,
	roomType string,
	stay StayPeriod,
	requirements Requirements,
	note Note,
) (*Reservation, error) {
	if userID == "" {
		return nil, ErrUserRequired
	}
	if roomID == "" {
		return nil, ErrRoomRequired
	}

	return &Reservation{
		userID:       userID,
		roomID:       roomID,
		roomType:     roomType,
		stay:         stay,
		requirements: requirements,
		note:         note,
	}, nil
}
