package reservation

import (
	"errors"
	"time"
)

// DateFormat is the calendar-date wire format used by the backend for
// check-in/check-out fields.
const DateFormat = "2006-01-02"

var (
	ErrCheckInRequired       = errors.New("check-in date is required")
	ErrCheckInInPast         = errors.New("check-in date cannot be in the past")
	ErrCheckOutRequired      = errors.New("check-out date is required")
	ErrCheckOutBeforeCheckIn = errors.New("check-out date cannot be before check-in date")
)

// StayPeriod is a validated check-in/check-out date range. Dates typed
// directly into a form bypass any picker minimums, so the same rules are
// enforced again here: check-in no earlier than today, check-out no earlier
// than check-in. Same-day stays and check-in today are both allowed.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut, today time.Time) (StayPeriod, error) {
	if checkIn.IsZero() {
		return StayPeriod{}, ErrCheckInRequired
	}
	if checkOut.IsZero() {
		return StayPeriod{}, ErrCheckOutRequired
	}

	checkIn = truncateToDay(checkIn)
	checkOut = truncateToDay(checkOut)
	today = truncateToDay(today)

	if checkIn.Before(today) {
		return StayPeriod{}, ErrCheckInInPast
	}
	if checkOut.Before(checkIn) {
		return StayPeriod{}, ErrCheckOutBeforeCheckIn
	}

	return StayPeriod{checkIn: checkIn, checkOut: checkOut}, nil
}

// ParseStayPeriod builds a StayPeriod from raw form values. Empty fields map
// to the field-level required errors so the caller can tell which date
// failed.
func ParseStayPeriod(checkIn, checkOut string, today time.Time) (StayPeriod, error) {
	if checkIn == "" {
		return StayPeriod{}, ErrCheckInRequired
	}
	if checkOut == "" {
		return StayPeriod{}, ErrCheckOutRequired
	}

	in, err := time.Parse(DateFormat, checkIn)
	if err != nil {
		return StayPeriod{}, ErrCheckInRequired
	}
	out, err := time.Parse(DateFormat, checkOut)
	if err != nil {
		return StayPeriod{}, ErrCheckOutRequired
	}

	return NewStayPeriod(in, out, today)
}

func (p StayPeriod) CheckIn() time.Time {
	return p.checkIn
}

func (p StayPeriod) CheckOut() time.Time {
	return p.checkOut
}

func (p StayPeriod) Nights() int {
	return int(p.checkOut.Sub(p.checkIn) / (24 * time.Hour))
}

func (p StayPeriod) CheckInString() string {
	return p.checkIn.Format(DateFormat)
}

func (p StayPeriod) CheckOutString() string {
	return p.checkOut.Format(DateFormat)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Note is the optional free-text additional-requests field.
type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: value}
}

func (n Note) String() string {
	return n.value
}
