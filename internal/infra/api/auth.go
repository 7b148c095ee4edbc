package api

import (
	"context"
	"net/http"

	"hotel-booking-client/internal/infra/converter"
	"hotel-booking-client/internal/pkg/session"
)

type loginWire struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerWire struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

func sessionFromAuth(w converter.AuthResponseWire) session.Session {
	return session.Session{
		Token:   w.Token,
		UserID:  w.ID,
		Name:    w.Name,
		IsAdmin: w.IsAdmin,
	}
}

// Login exchanges credentials for a session. No auth header is sent.
func (c *Client) Login(ctx context.Context, email, password string) (session.Session, error) {
	var wire converter.AuthResponseWire
	err := c.do(ctx, session.Anonymous(), http.MethodPost, "/api/auth/login", loginWire{Email: email, Password: password}, &wire)
	if err != nil {
		return session.Session{}, err
	}
	return sessionFromAuth(wire), nil
}

// Register creates an account and returns the session it is logged into.
func (c *Client) Register(ctx context.Context, name, email, password, phone string) (session.Session, error) {
	var wire converter.AuthResponseWire
	payload := registerWire{Name: name, Email: email, Password: password, Phone: phone}
	err := c.do(ctx, session.Anonymous(), http.MethodPost, "/api/auth/register", payload, &wire)
	if err != nil {
		return session.Session{}, err
	}
	return sessionFromAuth(wire), nil
}
