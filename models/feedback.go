package models

import "time"

// Feedback adalah penilaian pelanggan setelah reservasi selesai.
type Feedback struct {
	ID            string
	ReservationID string
	CustomerName  string
	Rating        int // 1-5
	Comment       string
	CreatedAt     time.Time
}
