package store

import "errors"

var (
	// ErrKeyNotFound dikembalikan implementasi Persistence saat key belum ada.
	ErrKeyNotFound = errors.New("key not found")

	ErrNoTableAvailable   = errors.New("no table available for this time slot")
	ErrInvalidTransition  = errors.New("invalid reservation status transition")
	ErrReservationClosed  = errors.New("reservation already completed or cancelled")
	ErrReservationInvalid = errors.New("invalid reservation data")
	ErrNotFound           = errors.New("record not found")
	ErrUsernameTaken      = errors.New("username already registered")
)
