package models

import "time"

type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusSeated    ReservationStatus = "seated"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
)

// Valid melaporkan apakah nilai status dikenal.
func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusSeated, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal -> completed dan cancelled tidak punya transisi lanjutan
func (s ReservationStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo memeriksa state machine reservasi:
// pending -> confirmed -> seated -> completed, cancelled dari semua
// state non-terminal.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusSeated || next == StatusCancelled
	case StatusSeated:
		return next == StatusCompleted || next == StatusCancelled
	case StatusCompleted, StatusCancelled:
		return false
	}
	return false
}

type Reservation struct {
	ID              string
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	Date            string // YYYY-MM-DD
	Time            string // salah satu slot setengah jam 08:00-23:00
	Guests          int
	TableNumber     int // 0 = belum ada meja
	Status          ReservationStatus
	SpecialRequests string
	// EstimatedDuration dalam menit, selalu diturunkan dari Guests.
	EstimatedDuration int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
