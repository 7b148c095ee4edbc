package api

import (
	"context"
	"net/http"

	"hotel-booking-client/internal/domain/user"
	"hotel-booking-client/internal/infra/converter"
	"hotel-booking-client/internal/pkg/session"
	"hotel-booking-client/internal/usecase/readmodel"
)

func userRMFromWire(w converter.UserWire) *readmodel.UserRM {
	return &readmodel.UserRM{
		ID:        w.ID,
		Name:      w.Name,
		Email:     w.Email,
		Phone:     w.Phone,
		IsAdmin:   w.IsAdmin,
		CreatedAt: w.CreatedAt,
	}
}

// GetUser fetches one profile.
func (c *Client) GetUser(ctx context.Context, sess session.Session, id string) (*readmodel.UserRM, error) {
	var wire converter.UserWire
	if err := c.do(ctx, sess, http.MethodGet, "/api/user/"+id, nil, &wire); err != nil {
		return nil, err
	}
	return userRMFromWire(wire), nil
}

// ListUsers fetches every user (admin view).
func (c *Client) ListUsers(ctx context.Context, sess session.Session) ([]*readmodel.UserRM, error) {
	var wire []converter.UserWire
	if err := c.do(ctx, sess, http.MethodGet, "/api/user", nil, &wire); err != nil {
		return nil, err
	}
	out := make([]*readmodel.UserRM, 0, len(wire))
	for _, w := range wire {
		out = append(out, userRMFromWire(w))
	}
	return out, nil
}

func (c *Client) UpdateUser(ctx context.Context, sess session.Session, id string, upd user.ProfileUpdate) error {
	payload := converter.UpdateUserWire{
		Name:    upd.Name,
		Email:   upd.Email,
		Phone:   upd.Phone,
		IsAdmin: upd.IsAdmin,
	}
	return c.do(ctx, sess, http.MethodPut, "/api/user/"+id, payload, nil)
}

func (c *Client) DeleteUser(ctx context.Context, sess session.Session, id string) error {
	return c.do(ctx, sess, http.MethodDelete, "/api/user/"+id, nil, nil)
}
