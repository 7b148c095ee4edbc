package usecase

import (
	"context"
	"errors"

	"hotel-booking-client/internal/pkg/session"
	"hotel-booking-client/internal/usecase/readmodel"
)

var (
	ErrNoEditInProgress   = errors.New("no edit in progress")
	ErrNoDeleteInProgress = errors.New("no delete confirmation in progress")
)

type EditState int

const (
	StateIdle EditState = iota
	StateEditing
	StateSaving
	StateConfirmingDelete
)

func (s EditState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEditing:
		return "editing"
	case StateSaving:
		return "saving"
	case StateConfirmingDelete:
		return "confirming-delete"
	default:
		return "unknown"
	}
}

// EditFlow drives the reservation management table's edit and delete
// dialogs. A save moves Idle, Editing, Saving, then back to Idle on success
// (with the list refetched before the flow settles); on failure it returns
// to Editing and the dialog stays open with the error. The delete
// confirmation always
// returns to Idle once the call resolves, success or not; only the reported
// outcome differs. That asymmetry between the two dialogs is intentional.
type EditFlow struct {
	reservations ReservationUseCase

	state    EditState
	targetID string
	form     EditForm
	lastErr  error
}

func NewEditFlow(reservations ReservationUseCase) *EditFlow {
	return &EditFlow{reservations: reservations, state: StateIdle}
}

func (f *EditFlow) State() EditState {
	return f.state
}

func (f *EditFlow) TargetID() string {
	return f.targetID
}

func (f *EditFlow) Err() error {
	return f.lastErr
}

// Form exposes the dialog's editable state while Editing.
func (f *EditFlow) Form() *EditForm {
	return &f.form
}

// Begin opens the edit dialog for one row, seeding the form from it.
func (f *EditFlow) Begin(rm *readmodel.ReservationRM) {
	f.state = StateEditing
	f.targetID = rm.ID
	f.form = EditFormFromRM(rm)
	f.lastErr = nil
}

// Cancel closes the edit dialog without saving.
func (f *EditFlow) Cancel() {
	f.state = StateIdle
	f.targetID = ""
	f.lastErr = nil
}

// Save submits the edit. On success it refetches the full list (no
// optimistic patching; the displayed rows must match the backend) and
// settles in Idle; on failure it returns to Editing with the form intact.
func (f *EditFlow) Save(ctx context.Context, sess session.Session) ([]*readmodel.ReservationRM, error) {
	if f.state != StateEditing {
		return nil, ErrNoEditInProgress
	}

	f.state = StateSaving
	if err := f.reservations.Update(ctx, sess, f.targetID, f.form); err != nil {
		f.state = StateEditing
		f.lastErr = err
		return nil, err
	}

	f.state = StateIdle
	f.targetID = ""
	f.lastErr = nil
	return f.reservations.List(ctx, sess)
}

// RequestDelete opens the delete confirmation for one row.
func (f *EditFlow) RequestDelete(id string) {
	f.state = StateConfirmingDelete
	f.targetID = id
	f.lastErr = nil
}

// CancelDelete closes the confirmation without deleting.
func (f *EditFlow) CancelDelete() {
	f.state = StateIdle
	f.targetID = ""
}

// ConfirmDelete performs the delete. The confirmation dialog closes
// unconditionally once the call resolves; a refreshed list comes back only
// on success.
func (f *EditFlow) ConfirmDelete(ctx context.Context, sess session.Session) ([]*readmodel.ReservationRM, error) {
	if f.state != StateConfirmingDelete {
		return nil, ErrNoDeleteInProgress
	}

	id := f.targetID
	f.state = StateIdle
	f.targetID = ""

	if err := f.reservations.Delete(ctx, sess, id); err != nil {
		f.lastErr = err
		return nil, err
	}
	f.lastErr = nil
	return f.reservations.List(ctx, sess)
}
