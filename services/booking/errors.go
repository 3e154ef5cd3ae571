package booking

import "errors"

var (
	// ErrServiceNotFound means the requested service type does not
	// exist or is no longer offered.
	ErrServiceNotFound = errors.New("service not found")

	// ErrDateNotBookable means the chosen date is in the past or the
	// store is closed that day.
	ErrDateNotBookable = errors.New("date is not open for booking")

	// ErrSlotNotOffered means the requested start time is not one of
	// the windows the store offers for that service and date.
	ErrSlotNotOffered = errors.New("requested time is not an offered slot")

	// ErrSlotConflict means the chosen window was taken before the
	// submission committed. Surfaced to the customer as "this time is
	// no longer available"; never retried automatically.
	ErrSlotConflict = errors.New("slot is no longer available")

	// ErrBookingNotFound means no booking exists with the given ID.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidDate means the date is not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("date must be YYYY-MM-DD")

	// ErrInvalidStatus means the requested status transition names an
	// unknown booking status.
	ErrInvalidStatus = errors.New("unknown booking status")
)
