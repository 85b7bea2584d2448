package models

import "time"

type Notification struct {
	ID        string
	UserID    string // kosong = broadcast untuk semua staff
	Title     string
	Message   string
	Read      bool
	CreatedAt time.Time
}
