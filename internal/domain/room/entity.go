package room

// TypeUnspecified is the bucket for rooms arriving without a type. Keeping
// them in an explicit bucket preserves the partition invariant: every room
// belongs to exactly one type summary.
const TypeUnspecified = "unspecified"

// Room is a single bookable unit as listed by the backend. Availability is
// decoded to a real boolean at the wire boundary; the backend persists it as
// the literal strings "true"/"false". Price stays text: the backend stores it
// that way and the client only ever displays it.
type Room struct {
	ID          string
	Type        string
	Number      string
	Description string
	Capacity    int
	Price       string
	Available   bool
	ImageURL    string
}

// GroupType returns the type bucket the room is aggregated under.
func (r Room) GroupType() string {
	if r.Type == "" {
		return TypeUnspecified
	}
	return r.Type
}
