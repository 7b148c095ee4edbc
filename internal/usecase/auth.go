package usecase

import (
	"context"
	"errors"

	"hotel-booking-client/internal/domain/user"
	"hotel-booking-client/internal/pkg/session"
)

var (
	ErrAuthRequired        = errors.New("authentication required")
	ErrAdminRequired       = errors.New("admin privileges required")
	ErrPasswordRequired    = errors.New("password is required")
	ErrPasswordsDoNotMatch = errors.New("passwords must match")
)

type AuthRepository interface {
	Login(ctx context.Context, email, password string) (session.Session, error)
	Register(ctx context.Context, name, email, password, phone string) (session.Session, error)
}

type Credentials struct {
	Email    string
	Password string
}

type RegisterForm struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Phone           string
}

type AuthUseCase interface {
	Login(ctx context.Context, creds Credentials) (session.Session, error)
	Register(ctx context.Context, form RegisterForm) (session.Session, error)
}

type authUseCaseImpl struct {
	auth AuthRepository
}

func NewAuthUseCase(auth AuthRepository) AuthUseCase {
	return &authUseCaseImpl{auth: auth}
}

func (u *authUseCaseImpl) Login(ctx context.Context, creds Credentials) (session.Session, error) {
	email, err := user.NewEmail(creds.Email)
	if err != nil {
		return session.Session{}, err
	}
	if creds.Password == "" {
		return session.Session{}, ErrPasswordRequired
	}
	return u.auth.Login(ctx, email.Value(), creds.Password)
}

func (u *authUseCaseImpl) Register(ctx context.Context, form RegisterForm) (session.Session, error) {
	name, err := user.NewName(form.Name)
	if err != nil {
		return session.Session{}, err
	}
	email, err := user.NewEmail(form.Email)
	if err != nil {
		return session.Session{}, err
	}
	password, err := user.NewPassword(form.Password)
	if err != nil {
		return session.Session{}, err
	}
	if form.ConfirmPassword != form.Password {
		return session.Session{}, ErrPasswordsDoNotMatch
	}
	phone, err := user.NewPhone(form.Phone)
	if err != nil {
		return session.Session{}, err
	}

	return u.auth.Register(ctx, name.Value(), email.Value(), password.Value(), phone.Value())
}
