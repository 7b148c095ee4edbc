package usecase

import (
	"context"

	"hotel-booking-client/internal/pkg/session"
	"hotel-booking-client/internal/usecase/readmodel"
)

// BookingFlow drives the customer reservation form: it owns the entered
// values, submits them, and applies the form side effects: reset on
// success, values retained on failure so the user can correct and resubmit.
type BookingFlow struct {
	reservations ReservationUseCase
	form         BookingForm
}

func NewBookingFlow(reservations ReservationUseCase) *BookingFlow {
	return &BookingFlow{reservations: reservations}
}

func (b *BookingFlow) Form() *BookingForm {
	return &b.form
}

// Submit validates and sends the current form. On success the form is
// cleared; on any failure it keeps what the user entered and the error is
// surfaced to the caller.
func (b *BookingFlow) Submit(ctx context.Context, sess session.Session) (*readmodel.ReservationRM, error) {
	created, err := b.reservations.Create(ctx, sess, b.form)
	if err != nil {
		return nil, err
	}
	b.form = BookingForm{}
	return created, nil
}
