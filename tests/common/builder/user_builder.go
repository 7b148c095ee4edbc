//go:build unit

package builder

import (
	"hotel-booking-client/internal/usecase"
	"hotel-booking-client/tests/fakeapi"
)

type UserBuilder struct {
	ID       string
	Name     string
	Email    string
	Phone    string
	Password string
	IsAdmin  bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       "user-1",
		Name:     "Jane Perera",
		Email:    "jane@example.com",
		Phone:    "0771234567",
		Password: "secret6",
		IsAdmin:  false,
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) BuildRecord() fakeapi.UserRecord {
	return fakeapi.UserRecord{
		ID:       b.ID,
		Name:     b.Name,
		Email:    b.Email,
		Phone:    b.Phone,
		IsAdmin:  b.IsAdmin,
		Password: b.Password,
	}
}

func (b *UserBuilder) BuildRegisterForm() usecase.RegisterForm {
	return usecase.RegisterForm{
		Name:            b.Name,
		Email:           b.Email,
		Password:        b.Password,
		ConfirmPassword: b.Password,
		Phone:           b.Phone,
	}
}
