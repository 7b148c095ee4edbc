package reservation

// Reservation is one stay booked by a user. RoomType and RoomNumber are
// denormalized display copies the backend keeps alongside the room
// reference; the client shows them as-is.
type Reservation struct {
	id           string
	userID       string
	roomID       string
	roomType     string
	roomNumber   string
	stay         StayPeriod
	requirements Requirements
	note         Note
}

func (r *Reservation) ID() string                 { return r.id }
func (r *Reservation) UserID() string             { return r.userID }
func (r *Reservation) RoomID() string             { return r.roomID }
func (r *Reservation) RoomType() string           { return r.roomType }
func (r *Reservation) RoomNumber() string         { return r.roomNumber }
func (r *Reservation) Stay() StayPeriod           { return r.stay }
func (r *Reservation) Requirements() Requirements { return r.requirements }
func (r *Reservation) Note() Note                 { return r.note }

// Rehydrate rebuilds an entity from backend data that has already been
// decoded at the wire boundary.
func Rehydrate(
	id string,
	userID string,
	roomID string,
	roomType string,
	roomNumber string,
	stay StayPeriod,
	requirements Requirements,
	note Note,
) *Reservation {
	return &Reservation{
		id:           id,
		userID:       userID,
		roomID:       roomID,
		roomType:     roomType,
		roomNumber:   roomNumber,
		stay:         stay,
		requirements: requirements,
		note:         note,
	}
}

// Update is the set of fields an operator may change on an existing
// reservation. RoomType and RoomNumber are free text here: the admin edit
// path trusts operator input and does not resolve them against live
// inventory.
type Update struct {
	Stay         StayPeriod
	RoomType     string
	RoomNumber   string
	Requirements Requirements
	Note         Note
}
