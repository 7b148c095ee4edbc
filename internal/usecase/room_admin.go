package usecase

import (
	"context"
	"errors"

	"hotel-booking-client/internal/domain/room"
	"hotel-booking-client/internal/infra"
	"hotel-booking-client/internal/pkg/clock"
	"hotel-booking-client/internal/pkg/errs"
	"hotel-booking-client/internal/pkg/session"
	"hotel-booking-client/internal/usecase/readmodel"
)

var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomTypeRequired = errors.New("room type is required")
)

type RoomAdminRepository interface {
	CreateRoom(ctx context.Context, sess session.Session, r room.Room) error
	UpdateRoom(ctx context.Context, sess session.Session, r room.Room) error
	DeleteRoom(ctx context.Context, sess session.Session, id string) error
}

// RoomForm is the admin room create/edit input.
type RoomForm struct {
	Type        string
	Number      string
	Description string
	Capacity    int
	Price       string
	Available   bool
	ImageURL    string
}

func (f RoomForm) toDomain(id string) room.Room {
	return room.Room{
		ID:          id,
		Type:        f.Type,
		Number:      f.Number,
		Description: f.Description,
		Capacity:    f.Capacity,
		Price:       f.Price,
		Available:   f.Available,
		ImageURL:    f.ImageURL,
	}
}

// RoomAdminUseCase is the thin admin room management surface: pass-through
// writes plus the room list, all behind the admin gate.
type RoomAdminUseCase interface {
	List(ctx context.Context, sess session.Session) ([]readmodel.RoomRM, error)
	Create(ctx context.Context, sess session.Session, form RoomForm) error
	Update(ctx context.Context, sess session.Session, id string, form RoomForm) error
	Delete(ctx context.Context, sess session.Session, id string) error
}

type roomAdminUseCaseImpl struct {
	rooms  RoomRepository
	writes RoomAdminRepository
	clock  clock.Clock
}

func NewRoomAdminUseCase(rooms RoomRepository, writes RoomAdminRepository, clk clock.Clock) RoomAdminUseCase {
	return &roomAdminUseCaseImpl{rooms: rooms, writes: writes, clock: clk}
}

func (u *roomAdminUseCaseImpl) List(ctx context.Context, sess session.Session) ([]readmodel.RoomRM, error) {
	if err := u.gate(sess); err != nil {
		return nil, err
	}

	rooms, err := u.rooms.ListRooms(ctx, sess)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list rooms")
	}
	out := make([]readmodel.RoomRM, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, roomRM(r))
	}
	return out, nil
}

func (u *roomAdminUseCaseImpl) Create(ctx context.Context, sess session.Session, form RoomForm) error {
	if err := u.gate(sess); err != nil {
		return err
	}
	if form.Type == "" {
		return ErrRoomTypeRequired
	}
	return u.writes.CreateRoom(ctx, sess, form.toDomain(""))
}

func (u *roomAdminUseCaseImpl) Update(ctx context.Context, sess session.Session, id string, form RoomForm) error {
	if err := u.gate(sess); err != nil {
		return err
	}
	if form.Type == "" {
		return ErrRoomTypeRequired
	}

	if err := u.writes.UpdateRoom(ctx, sess, form.toDomain(id)); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRoomNotFound
		}
		return errs.Wrap(err, "failed to update room")
	}
	return nil
}

func (u *roomAdminUseCaseImpl) Delete(ctx context.Context, sess session.Session, id string) error {
	if err := u.gate(sess); err != nil {
		return err
	}

	if err := u.writes.DeleteRoom(ctx, sess, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRoomNotFound
		}
		return errs.Wrap(err, "failed to delete room")
	}
	return nil
}

func (u *roomAdminUseCaseImpl) gate(sess session.Session) error {
	if err := sess.Validate(u.clock.Now()); err != nil {
		return errs.Mark(err, ErrAuthRequired)
	}
	if !sess.IsAdmin {
		return ErrAdminRequired
	}
	return nil
}
