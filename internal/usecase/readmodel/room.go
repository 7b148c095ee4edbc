// Package readmodel holds the flat view structures the use cases hand to
// callers. They are projections for display, distinct from domain entities.
package readmodel

// RoomTypeRM is one row of the available-rooms view: a room type with its
// availability count and the price/description of its representative (first
// seen) room.
type RoomTypeRM struct {
	Type           string
	AvailableCount int
	Total          int
	Price          string
	Description    string
	Rooms          []RoomRM
}

// RoomRM is a single room row for the admin room list.
type RoomRM struct {
	ID          string
	Type        string
	Number      string
	Description string
	Capacity    int
	Price       string
	Available   bool
	ImageURL    string
}

// TypeOptionRM is one entry of the reservation form's room-type choices.
type TypeOptionRM struct {
	Type   string
	RoomID string
}
