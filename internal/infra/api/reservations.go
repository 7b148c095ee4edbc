package api

import (
	"context"
	"net/http"

	"hotel-booking-client/internal/domain/reservation"
	"hotel-booking-client/internal/infra/converter"
	"hotel-booking-client/internal/pkg/session"
	"hotel-booking-client/internal/usecase/readmodel"
)

// reservationEnvelope is the {data: [...]} wrapper the reservation list
// endpoints use.
type reservationEnvelope struct {
	Data []converter.ReservationWire `json:"data"`
}

// ListReservations fetches every reservation (admin view).
func (c *Client) ListReservations(ctx context.Context, sess session.Session) ([]*readmodel.ReservationRM, error) {
	var envelope reservationEnvelope
	if err := c.do(ctx, sess, http.MethodGet, "/api/reservations", nil, &envelope); err != nil {
		return nil, err
	}
	return converter.ReservationRMsFromWire(envelope.Data), nil
}

// ListReservationsByUser fetches one customer's reservation history.
func (c *Client) ListReservationsByUser(ctx context.Context, sess session.Session, userID string) ([]*readmodel.ReservationRM, error) {
	var envelope reservationEnvelope
	if err := c.do(ctx, sess, http.MethodGet, "/api/reservations/user/"+userID, nil, &envelope); err != nil {
		return nil, err
	}
	return converter.ReservationRMsFromWire(envelope.Data), nil
}

// CreateReservation submits a validated draft and returns the stored row.
func (c *Client) CreateReservation(ctx context.Context, sess session.Session, r *reservation.Reservation) (*readmodel.ReservationRM, error) {
	var wire converter.ReservationWire
	if err := c.do(ctx, sess, http.MethodPost, "/api/reservations", converter.CreateToWire(r), &wire); err != nil {
		return nil, err
	}
	return converter.ReservationRMFromWire(wire), nil
}

// UpdateReservation submits an operator edit.
func (c *Client) UpdateReservation(ctx context.Context, sess session.Session, id string, u reservation.Update) error {
	return c.do(ctx, sess, http.MethodPut, "/api/reservations/"+id, converter.UpdateToWire(u), nil)
}

// DeleteReservation removes one reservation.
func (c *Client) DeleteReservation(ctx context.Context, sess session.Session, id string) error {
	return c.do(ctx, sess, http.MethodDelete, "/api/reservations/"+id, nil, nil)
}
