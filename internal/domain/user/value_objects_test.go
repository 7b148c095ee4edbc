//go:build unit

package user_test

import (
	"testing"

	"hotel-booking-client/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "plain address", input: "jane@example.com", want: "jane@example.com"},
		{name: "plus tag and subdomain", input: "jane+tag@mail.example.co", want: "jane+tag@mail.example.co"},
		{name: "surrounding whitespace trimmed", input: "  jane@example.com  ", want: "jane@example.com"},
		{name: "missing at sign", input: "jane.example.com", errIs: user.ErrInvalidEmail},
		{name: "missing tld", input: "jane@example", errIs: user.ErrInvalidEmail},
		{name: "empty", input: "", errIs: user.ErrInvalidEmail},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			email, err := user.NewEmail(c.input)

			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, email.Value())
		})
	}
}

func TestNewPhone(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "ten digits", input: "0771234567"},
		{name: "nine digits", input: "077123456", errIs: user.ErrInvalidPhone},
		{name: "eleven digits", input: "07712345678", errIs: user.ErrInvalidPhone},
		{name: "contains dashes", input: "077-123-456", errIs: user.ErrInvalidPhone},
		{name: "empty", input: "", errIs: user.ErrInvalidPhone},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := user.NewPhone(c.input)

			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNewPassword(t *testing.T) {
	t.Run("minimum length accepted", func(t *testing.T) {
		_, err := user.NewPassword("secret")
		assert.NoError(t, err)
	})

	t.Run("below minimum rejected", func(t *testing.T) {
		_, err := user.NewPassword("short")
		require.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func TestNewName(t *testing.T) {
	t.Run("trims whitespace", func(t *testing.T) {
		name, err := user.NewName("  Jane Perera  ")
		require.NoError(t, err)
		assert.Equal(t, "Jane Perera", name.Value())
	})

	t.Run("whitespace-only rejected", func(t *testing.T) {
		_, err := user.NewName("   ")
		require.ErrorIs(t, err, user.ErrNameRequired)
	})
}
