package usecase

import (
	"context"
	"errors"
	"strings"

	"hotel-booking-client/internal/domain/reservation"
	"hotel-booking-client/internal/infra"
	"hotel-booking-client/internal/pkg/clock"
	"hotel-booking-client/internal/pkg/errs"
	"hotel-booking-client/internal/pkg/patch"
	"hotel-booking-client/internal/pkg/session"
	"hotel-booking-client/internal/usecase/readmodel"
)

var (
	ErrRoomTypeNotFound    = errors.New("room type not found")
	ErrReservationNotFound = errors.New("reservation not found")
)

type ReservationRepository interface {
	List(ctx context.Context, sess session.Session) ([]*readmodel.ReservationRM, error)
	ListByUser(ctx context.Context, sess session.Session, userID string) ([]*readmodel.ReservationRM, error)
	Create(ctx context.Context, sess session.Session, r *reservation.Reservation) (*readmodel.ReservationRM, error)
	Update(ctx context.Context, sess session.Session, id string, u reservation.Update) error
	Delete(ctx context.Context, sess session.Session, id string) error
}

// BookingForm is the raw customer input for a new reservation.
// SpecialRequirements holds the checked catalog labels.
type BookingForm struct {
	CheckInDate         string
	CheckOutDate        string
	RoomType            string
	SpecialRequirements []string
	AdditionalRequests  string
}

// EditForm is the editable state of an existing reservation, decoded to the
// canonical positional boolean requirements.
type EditForm struct {
	CheckInDate        string
	CheckOutDate       string
	RoomType           string
	RoomNumber         string
	AdditionalRequests string
	Requirements       []bool
}

// EditFormFromRM seeds the edit dialog from a list row.
func EditFormFromRM(rm *readmodel.ReservationRM) EditForm {
	reqs := make([]bool, len(reservation.Catalog))
	copy(reqs, rm.Requirements)
	return EditForm{
		CheckInDate:        rm.CheckInDate,
		CheckOutDate:       rm.CheckOutDate,
		RoomType:           rm.RoomType,
		RoomNumber:         rm.RoomNumber,
		AdditionalRequests: rm.AdditionalRequests,
		Requirements:       reqs,
	}
}

// FieldEdits is a partial change set; nil fields stay as they are.
type FieldEdits struct {
	CheckInDate        *string
	CheckOutDate       *string
	RoomType           *string
	RoomNumber         *string
	AdditionalRequests *string
	Requirements       []bool
}

// Apply merges a partial change set into the form.
func (f *EditForm) Apply(e FieldEdits) {
	f.CheckInDate = patch.Coalesce(e.CheckInDate, f.CheckInDate)
	f.CheckOutDate = patch.Coalesce(e.CheckOutDate, f.CheckOutDate)
	f.RoomType = patch.Coalesce(e.RoomType, f.RoomType)
	f.RoomNumber = patch.Coalesce(e.RoomNumber, f.RoomNumber)
	f.AdditionalRequests = patch.Coalesce(e.AdditionalRequests, f.AdditionalRequests)
	if e.Requirements != nil {
		f.Requirements = make([]bool, len(e.Requirements))
		copy(f.Requirements, e.Requirements)
	}
}

// SetRequirement toggles one catalog position on the form.
func (f *EditForm) SetRequirement(index int, checked bool) {
	if index < 0 || index >= len(f.Requirements) {
		return
	}
	f.Requirements[index] = checked
}

type ReservationUseCase interface {
	Create(ctx context.Context, sess session.Session, form BookingForm) (*readmodel.ReservationRM, error)
	List(ctx context.Context, sess session.Session) ([]*readmodel.ReservationRM, error)
	History(ctx context.Context, sess session.Session, userID string) ([]*readmodel.ReservationRM, error)
	Update(ctx context.Context, sess session.Session, id string, form EditForm) error
	Delete(ctx context.Context, sess session.Session, id string) error
}

type reservationUseCaseImpl struct {
	reservations ReservationRepository
	inventory    InventoryUseCase
	clock        clock.Clock
}

func NewReservationUseCase(
	reservations ReservationRepository,
	inventory InventoryUseCase,
	clk clock.Clock,
) ReservationUseCase {
	return &reservationUseCaseImpl{
		reservations: reservations,
		inventory:    inventory,
		clock:        clk,
	}
}

// Create validates and submits a new reservation. The chosen type must be
// present in the current availability view; nothing is sent otherwise.
func (u *reservationUseCaseImpl) Create(ctx context.Context, sess session.Session, form BookingForm) (*readmodel.ReservationRM, error) {
	if err := sess.Validate(u.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrAuthRequired)
	}

	stay, err := reservation.ParseStayPeriod(form.CheckInDate, form.CheckOutDate, clock.Today(u.clock))
	if err != nil {
		return nil, err
	}

	options, err := u.inventory.TypeOptions(ctx, sess)
	if err != nil {
		return nil, err
	}
	roomID := ""
	for _, o := range options {
		if o.Type == form.RoomType {
			roomID = o.RoomID
			break
		}
	}
	if roomID == "" {
		return nil, ErrRoomTypeNotFound
	}

	draft, err := reservation.NewReservation(
		sess.UserID,
		roomID,
		form.RoomType,
		stay,
		reservation.RequirementsFromLabels(form.SpecialRequirements),
		reservation.NewNote(strings.TrimSpace(form.AdditionalRequests)),
	)
	if err != nil {
		return nil, err
	}

	return u.reservations.Create(ctx, sess, draft)
}

// List returns every reservation; the management view is admin-only.
func (u *reservationUseCaseImpl) List(ctx context.Context, sess session.Session) ([]*readmodel.ReservationRM, error) {
	if err := sess.Validate(u.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrAuthRequired)
	}
	if !sess.IsAdmin {
		return nil, ErrAdminRequired
	}
	return u.reservations.List(ctx, sess)
}

// History returns one customer's reservations. Customers can only read
// their own; admins can read anyone's.
func (u *reservationUseCaseImpl) History(ctx context.Context, sess session.Session, userID string) ([]*readmodel.ReservationRM, error) {
	if err := sess.Validate(u.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrAuthRequired)
	}
	if !sess.IsAdmin && userID != sess.UserID {
		return nil, ErrAdminRequired
	}
	return u.reservations.ListByUser(ctx, sess, userID)
}

// Update submits an operator edit. Room type and number are trusted as
// typed; the date range is re-validated since it carries the same
// invariants as at creation.
func (u *reservationUseCaseImpl) Update(ctx context.Context, sess session.Session, id string, form EditForm) error {
	if err := sess.Validate(u.clock.Now()); err != nil {
		return errs.Mark(err, ErrAuthRequired)
	}
	if !sess.IsAdmin {
		return ErrAdminRequired
	}

	stay, err := reservation.ParseStayPeriod(form.CheckInDate, form.CheckOutDate, clock.Today(u.clock))
	if err != nil {
		return err
	}

	upd := reservation.Update{
		Stay:         stay,
		RoomType:     form.RoomType,
		RoomNumber:   form.RoomNumber,
		Requirements: reservation.Requirements(form.Requirements),
		Note:         reservation.NewNote(form.AdditionalRequests),
	}

	if err := u.reservations.Update(ctx, sess, id, upd); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Wrap(err, "failed to update reservation")
	}
	return nil
}

func (u *reservationUseCaseImpl) Delete(ctx context.Context, sess session.Session, id string) error {
	if err := sess.Validate(u.clock.Now()); err != nil {
		return errs.Mark(err, ErrAuthRequired)
	}
	if !sess.IsAdmin {
		return ErrAdminRequired
	}

	if err := u.reservations.Delete(ctx, sess, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Wrap(err, "failed to delete reservation")
	}
	return nil
}
