package api

import (
	"context"
	"net/http"

	"hotel-booking-client/internal/domain/room"
	"hotel-booking-client/internal/infra/converter"
	"hotel-booking-client/internal/pkg/session"
)

// ListRooms fetches the flat room list the inventory aggregation is built
// from.
func (c *Client) ListRooms(ctx context.Context, sess session.Session) ([]room.Room, error) {
	var wire []converter.RoomWire
	if err := c.do(ctx, sess, http.MethodGet, "/api/rooms", nil, &wire); err != nil {
		return nil, err
	}
	return converter.RoomsFromWire(wire), nil
}

func (c *Client) CreateRoom(ctx context.Context, sess session.Session, r room.Room) error {
	payload := converter.RoomToWire(r)
	payload.ID = "" // assigned by the backend
	return c.do(ctx, sess, http.MethodPost, "/api/rooms", payload, nil)
}

func (c *Client) UpdateRoom(ctx context.Context, sess session.Session, r room.Room) error {
	return c.do(ctx, sess, http.MethodPut, "/api/rooms/"+r.ID, converter.RoomToWire(r), nil)
}

func (c *Client) DeleteRoom(ctx context.Context, sess session.Session, id string) error {
	return c.do(ctx, sess, http.MethodDelete, "/api/rooms/"+id, nil, nil)
}
