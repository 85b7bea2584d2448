package reservation

import (
	"github.com/yeremiapane/restaurant-reservation/models"
)

// occupiedTables mengumpulkan meja yang dipakai reservasi konflik: tanggal
// dan slot sama, status non-terminal, dan bukan reservasi excludeID sendiri
// (dipakai saat edit). Reservasi tanpa meja tidak menempati apa pun.
func occupiedTables(reservations []models.Reservation, date, timeSlot, excludeID string) map[int]bool {
	occupied := make(map[int]bool)
	for _, res := range reservations {
		if res.Date != date || res.Time != timeSlot {
			continue
		}
		if res.Status.Terminal() {
			continue
		}
		if excludeID != "" && res.ID == excludeID {
			continue
		}
		if res.TableNumber != 0 {
			occupied[res.TableNumber] = true
		}
	}
	return occupied
}

// IsSlotAvailable memeriksa apakah masih ada meja dengan kapasitas cukup
// yang bebas untuk (date, timeSlot, guests). excludeID boleh kosong.
func IsSlotAvailable(reservations []models.Reservation, tables []models.Table, date, timeSlot string, guests int, excludeID string) bool {
	occupied := occupiedTables(reservations, date, timeSlot, excludeID)
	for _, table := range tables {
		if table.Capacity >= guests && !occupied[table.ID] {
			return true
		}
	}
	return false
}

// AvailableSlots menyaring tangga slot penuh dan mengembalikan slot yang
// masih bisa dipesan, dalam urutan tangga.
func AvailableSlots(reservations []models.Reservation, tables []models.Table, date string, guests int, excludeID string) []string {
	available := make([]string, 0, len(TimeSlots))
	for _, slot := range TimeSlots {
		if IsSlotAvailable(reservations, tables, date, slot, guests, excludeID) {
			available = append(available, slot)
		}
	}
	return available
}
