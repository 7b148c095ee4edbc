package usecase

import (
	"context"
	"errors"
	"sync"

	"hotel-booking-client/internal/domain/room"
	"hotel-booking-client/internal/pkg/errs"
	"hotel-booking-client/internal/pkg/session"
	"hotel-booking-client/internal/usecase/readmodel"
	"hotel-booking-client/internal/usecase/shared"
)

var ErrInventoryUnavailable = errors.New("room inventory unavailable")

type RoomRepository interface {
	ListRooms(ctx context.Context, sess session.Session) ([]room.Room, error)
}

// InventorySnapshot is the aggregation state a caller renders from. "No
// data yet" and "last fetch failed" are distinct: Fetched says whether any
// aggregation has ever been built, Err carries the most recent failure.
type InventorySnapshot struct {
	Inventory room.Inventory
	Fetched   bool
	Err       error
}

type InventoryUseCase interface {
	Refresh(ctx context.Context, sess session.Session) (InventorySnapshot, error)
	Snapshot() InventorySnapshot
	RoomTypes(ctx context.Context, sess session.Session) ([]readmodel.RoomTypeRM, error)
	TypeOptions(ctx context.Context, sess session.Session) ([]readmodel.TypeOptionRM, error)
}

type inventoryUseCaseImpl struct {
	rooms RoomRepository

	mu       sync.Mutex
	guard    shared.FetchGuard
	snapshot InventorySnapshot
}

func NewInventoryUseCase(rooms RoomRepository) InventoryUseCase {
	return &inventoryUseCaseImpl{rooms: rooms}
}

// Refresh fetches the room list and rebuilds the aggregation wholesale.
// Room browsing is open to anonymous visitors, so no session validation
// happens here; the session only contributes its token when it has one.
// A completion that lost the race to a newer fetch is discarded.
func (u *inventoryUseCaseImpl) Refresh(ctx context.Context, sess session.Session) (InventorySnapshot, error) {
	seq := u.guard.Next()

	rooms, err := u.rooms.ListRooms(ctx, sess)

	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.guard.Apply(seq) {
		// Stale completion: a newer fetch has already been issued.
		return u.snapshot, nil
	}

	if err != nil {
		u.snapshot.Err = err
		return u.snapshot, errs.Mark(err, ErrInventoryUnavailable)
	}

	u.snapshot = InventorySnapshot{
		Inventory: room.BuildInventory(rooms),
		Fetched:   true,
	}
	return u.snapshot, nil
}

func (u *inventoryUseCaseImpl) Snapshot() InventorySnapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.snapshot
}

// RoomTypes refreshes and projects the per-type availability view.
func (u *inventoryUseCaseImpl) RoomTypes(ctx context.Context, sess session.Session) ([]readmodel.RoomTypeRM, error) {
	snap, err := u.Refresh(ctx, sess)
	if err != nil {
		return nil, err
	}

	summaries := snap.Inventory.Summaries()
	out := make([]readmodel.RoomTypeRM, 0, len(summaries))
	for _, s := range summaries {
		rep := s.Representative()
		rm := readmodel.RoomTypeRM{
			Type:           s.Type,
			AvailableCount: s.AvailableCount,
			Total:          s.Total,
			Price:          rep.Price,
			Description:    rep.Description,
			Rooms:          make([]readmodel.RoomRM, 0, len(s.Rooms)),
		}
		for _, r := range s.Rooms {
			rm.Rooms = append(rm.Rooms, roomRM(r))
		}
		out = append(out, rm)
	}
	return out, nil
}

// TypeOptions refreshes and projects the bookable type choices for the
// reservation form.
func (u *inventoryUseCaseImpl) TypeOptions(ctx context.Context, sess session.Session) ([]readmodel.TypeOptionRM, error) {
	snap, err := u.Refresh(ctx, sess)
	if err != nil {
		return nil, err
	}

	options := snap.Inventory.AvailableTypeOptions()
	out := make([]readmodel.TypeOptionRM, 0, len(options))
	for _, o := range options {
		out = append(out, readmodel.TypeOptionRM{Type: o.Type, RoomID: o.RoomID})
	}
	return out, nil
}

func roomRM(r room.Room) readmodel.RoomRM {
	return readmodel.RoomRM{
		ID:          r.ID,
		Type:        r.Type,
		Number:      r.Number,
		Description: r.Description,
		Capacity:    r.Capacity,
		Price:       r.Price,
		Available:   r.Available,
		ImageURL:    r.ImageURL,
	}
}
