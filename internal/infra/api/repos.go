package api

import (
	"context"

	"hotel-booking-client/internal/domain/reservation"
	"hotel-booking-client/internal/domain/user"
	"hotel-booking-client/internal/pkg/session"
	"hotel-booking-client/internal/usecase/readmodel"
)

// ReservationRepo and UserRepo adapt the shared client to their ports. The
// two ports both name their operations List/Update/Delete with different
// signatures, so they cannot live on one receiver.

type ReservationRepo struct {
	c *Client
}

func NewReservationRepo(c *Client) *ReservationRepo {
	return &ReservationRepo{c: c}
}

func (r *ReservationRepo) List(ctx context.Context, sess session.Session) ([]*readmodel.ReservationRM, error) {
	return r.c.ListReservations(ctx, sess)
}

func (r *ReservationRepo) ListByUser(ctx context.Context, sess session.Session, userID string) ([]*readmodel.ReservationRM, error) {
	return r.c.ListReservationsByUser(ctx, sess, userID)
}

func (r *ReservationRepo) Create(ctx context.Context, sess session.Session, draft *reservation.Reservation) (*readmodel.ReservationRM, error) {
	return r.c.CreateReservation(ctx, sess, draft)
}

func (r *ReservationRepo) Update(ctx context.Context, sess session.Session, id string, u reservation.Update) error {
	return r.c.UpdateReservation(ctx, sess, id, u)
}

func (r *ReservationRepo) Delete(ctx context.Context, sess session.Session, id string) error {
	return r.c.DeleteReservation(ctx, sess, id)
}

type UserRepo struct {
	c *Client
}

func NewUserRepo(c *Client) *UserRepo {
	return &UserRepo{c: c}
}

func (r *UserRepo) Get(ctx context.Context, sess session.Session, id string) (*readmodel.UserRM, error) {
	return r.c.GetUser(ctx, sess, id)
}

func (r *UserRepo) List(ctx context.Context, sess session.Session) ([]*readmodel.UserRM, error) {
	return r.c.ListUsers(ctx, sess)
}

func (r *UserRepo) Update(ctx context.Context, sess session.Session, id string, upd user.ProfileUpdate) error {
	return r.c.UpdateUser(ctx, sess, id, upd)
}

func (r *UserRepo) Delete(ctx context.Context, sess session.Session, id string) error {
	return r.c.DeleteUser(ctx, sess, id)
}
