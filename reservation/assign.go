package reservation

import (
	"sort"

	"github.com/yeremiapane/restaurant-reservation/models"
)

// AssignTable memilih meja untuk reservasi baru/edit: dari meja bebas yang
// kapasitasnya cukup, ambil yang kapasitasnya paling kecil (best fit).
// Seri kapasitas dipecah dengan ID terkecil. Mengembalikan 0 jika tidak
// ada meja; caller wajib menggagalkan operasi, jangan pernah memberi meja
// yang kapasitasnya kurang.
func AssignTable(reservations []models.Reservation, tables []models.Table, date, timeSlot string, guests int, excludeID string) int {
	occupied := occupiedTables(reservations, date, timeSlot, excludeID)

	candidates := make([]models.Table, 0, len(tables))
	for _, table := range tables {
		if table.Capacity >= guests && !occupied[table.ID] {
			candidates = append(candidates, table)
		}
	}
	if len(candidates) == 0 {
		return 0
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Capacity != candidates[j].Capacity {
			return candidates[i].Capacity < candidates[j].Capacity
		}
		return candidates[i].ID < candidates[j].ID
	})
	return candidates[0].ID
}
