// Package reservation berisi logika inti reservasi: ketersediaan slot,
// penugasan meja dan estimasi durasi. Semua fungsi pure, tanpa side effect,
// supaya bisa diuji tanpa store maupun HTTP.
package reservation

import (
	"fmt"
	"time"
)

// TimeSlots adalah tangga slot setengah jam 08:00 sampai 23:00 (31 slot).
// Urutan di sini adalah urutan yang dikembalikan AvailableSlots.
var TimeSlots = []string{
	"08:00", "08:30",
	"09:00", "09:30",
	"10:00", "10:30",
	"11:00", "11:30",
	"12:00", "12:30",
	"13:00", "13:30",
	"14:00", "14:30",
	"15:00", "15:30",
	"16:00", "16:30",
	"17:00", "17:30",
	"18:00", "18:30",
	"19:00", "19:30",
	"20:00", "20:30",
	"21:00", "21:30",
	"22:00", "22:30",
	"23:00",
}

// ValidSlot -> true jika waktu ada dalam tangga slot
func ValidSlot(timeSlot string) bool {
	for _, s := range TimeSlots {
		if s == timeSlot {
			return true
		}
	}
	return false
}

// ValidDate memeriksa format tanggal kalender YYYY-MM-DD.
func ValidDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// SlotMinutes mengonversi slot "HH:MM" ke menit sejak tengah malam.
func SlotMinutes(timeSlot string) (int, error) {
	t, err := time.Parse("15:04", timeSlot)
	if err != nil {
		return 0, fmt.Errorf("invalid time slot %q: %w", timeSlot, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}
