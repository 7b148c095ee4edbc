package room

// TypeSummary aggregates every room of one type. Rooms keeps source order,
// so Representative (the room bound to a reservation when the customer picks
// a type, and the unit whose price/description is shown) is always the
// first-seen room of the type. That first-seen rule is a deliberate
// behavioral decision, not an ordering accident.
type TypeSummary struct {
	Type           string
	Total          int
	AvailableCount int
	Rooms          []Room
}

func (s TypeSummary) Representative() Room {
	return s.Rooms[0]
}

// TypeOption is the projection offered for reservation creation: a type with
// at least one free room, resolved to its representative unit.
type TypeOption struct {
	Type   string
	RoomID string
}

// Inventory is the per-type view over one room listing. It is derived,
// ephemeral state: rebuilt wholesale from every fetch and never merged
// across fetches.
type Inventory struct {
	order  []string
	byType map[string]*TypeSummary
}

// BuildInventory partitions rooms by type in a single pass. Member order and
// type discovery order both follow the input sequence. A room counts as
// available iff its decoded availability flag is set.
func BuildInventory(rooms []Room) Inventory {
	inv := Inventory{byType: make(map[string]*TypeSummary, len(rooms))}
	for _, r := range rooms {
		t := r.GroupType()
		summary, ok := inv.byType[t]
		if !ok {
			summary = &TypeSummary{Type: t}
			inv.byType[t] = summary
			inv.order = append(inv.order, t)
		}
		summary.Rooms = append(summary.Rooms, r)
		summary.Total++
		if r.Available {
			summary.AvailableCount++
		}
	}
	return inv
}

// Summary looks up one type's aggregate.
func (inv Inventory) Summary(typeName string) (TypeSummary, bool) {
	s, ok := inv.byType[typeName]
	if !ok {
		return TypeSummary{}, false
	}
	return *s, true
}

// Summaries returns all aggregates in type discovery order.
func (inv Inventory) Summaries() []TypeSummary {
	out := make([]TypeSummary, 0, len(inv.order))
	for _, t := range inv.order {
		out = append(out, *inv.byType[t])
	}
	return out
}

// TypeCount returns the number of distinct type buckets.
func (inv Inventory) TypeCount() int {
	return len(inv.order)
}

// TotalRooms returns the number of rooms across all buckets. It always
// equals the length of the input sequence the inventory was built from.
func (inv Inventory) TotalRooms() int {
	n := 0
	for _, s := range inv.byType {
		n += s.Total
	}
	return n
}

// AvailableTypeOptions projects the types bookable right now. A type with
// zero free rooms is never offered: picking it would only produce a
// user-facing rejection from the backend.
func (inv Inventory) AvailableTypeOptions() []TypeOption {
	out := make([]TypeOption, 0, len(inv.order))
	for _, t := range inv.order {
		s := inv.byType[t]
		if s.AvailableCount == 0 {
			continue
		}
		out = append(out, TypeOption{Type: s.Type, RoomID: s.Representative().ID})
	}
	return out
}

// ResolveType maps a chosen type name to the room unit a reservation for it
// books. Only types with availability resolve.
func (inv Inventory) ResolveType(typeName string) (string, bool) {
	s, ok := inv.byType[typeName]
	if !ok || s.AvailableCount == 0 {
		return "", false
	}
	return s.Representative().ID, true
}
