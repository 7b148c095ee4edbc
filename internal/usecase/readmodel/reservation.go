package readmodel

// ReservationRM is one reservation row. Requirements is the canonical
// positional boolean form; display labels derive from it via the catalog.
type ReservationRM struct {
	ID                 string
	CheckInDate        string
	CheckOutDate       string
	UserID             string
	RoomID             string
	CustomerName       string
	RoomType           string
	RoomNumber         string
	Requirements       []bool
	RequirementLabels  []string
	AdditionalRequests string
}
