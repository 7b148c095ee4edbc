package usecase

import (
	"context"
	"errors"

	"hotel-booking-client/internal/domain/user"
	"hotel-booking-client/internal/infra"
	"hotel-booking-client/internal/pkg/clock"
	"hotel-booking-client/internal/pkg/errs"
	"hotel-booking-client/internal/pkg/session"
	"hotel-booking-client/internal/usecase/readmodel"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	Get(ctx context.Context, sess session.Session, id string) (*readmodel.UserRM, error)
	List(ctx context.Context, sess session.Session) ([]*readmodel.UserRM, error)
	Update(ctx context.Context, sess session.Session, id string, upd user.ProfileUpdate) error
	Delete(ctx context.Context, sess session.Session, id string) error
}

type UserUseCase interface {
	Profile(ctx context.Context, sess session.Session) (*readmodel.UserRM, error)
	UpdateProfile(ctx context.Context, sess session.Session, upd user.ProfileUpdate) error
	List(ctx context.Context, sess session.Session) ([]*readmodel.UserRM, error)
	Update(ctx context.Context, sess session.Session, id string, upd user.ProfileUpdate) error
	Delete(ctx context.Context, sess session.Session, id string) error
}

type userUseCaseImpl struct {
	users UserRepository
	clock clock.Clock
}

func NewUserUseCase(users UserRepository, clk clock.Clock) UserUseCase {
	return &userUseCaseImpl{users: users, clock: clk}
}

func (u *userUseCaseImpl) Profile(ctx context.Context, sess session.Session) (*readmodel.UserRM, error) {
	if err := sess.Validate(u.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrAuthRequired)
	}

	profile, err := u.users.Get(ctx, sess, sess.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to fetch profile")
	}
	return profile, nil
}

// UpdateProfile changes the caller's own record. The admin flag is never
// sent from this path.
func (u *userUseCaseImpl) UpdateProfile(ctx context.Context, sess session.Session, upd user.ProfileUpdate) error {
	if err := sess.Validate(u.clock.Now()); err != nil {
		return errs.Mark(err, ErrAuthRequired)
	}
	if err := validateProfileUpdate(upd); err != nil {
		return err
	}

	upd.IsAdmin = nil
	return u.users.Update(ctx, sess, sess.UserID, upd)
}

func (u *userUseCaseImpl) List(ctx context.Context, sess session.Session) ([]*readmodel.UserRM, error) {
	if err := sess.Validate(u.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrAuthRequired)
	}
	if !sess.IsAdmin {
		return nil, ErrAdminRequired
	}
	return u.users.List(ctx, sess)
}

func (u *userUseCaseImpl) Update(ctx context.Context, sess session.Session, id string, upd user.ProfileUpdate) error {
	if err := sess.Validate(u.clock.Now()); err != nil {
		return errs.Mark(err, ErrAuthRequired)
	}
	if !sess.IsAdmin {
		return ErrAdminRequired
	}
	if err := validateProfileUpdate(upd); err != nil {
		return err
	}

	if err := u.users.Update(ctx, sess, id, upd); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Wrap(err, "failed to update user")
	}
	return nil
}

func (u *userUseCaseImpl) Delete(ctx context.Context, sess session.Session, id string) error {
	if err := sess.Validate(u.clock.Now()); err != nil {
		return errs.Mark(err, ErrAuthRequired)
	}
	if !sess.IsAdmin {
		return ErrAdminRequired
	}

	if err := u.users.Delete(ctx, sess, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Wrap(err, "failed to delete user")
	}
	return nil
}

func validateProfileUpdate(upd user.ProfileUpdate) error {
	if _, err := user.NewName(upd.Name); err != nil {
		return err
	}
	if _, err := user.NewEmail(upd.Email); err != nil {
		return err
	}
	if _, err := user.NewPhone(upd.Phone); err != nil {
		return err
	}
	return nil
}
