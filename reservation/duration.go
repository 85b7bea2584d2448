package reservation

// EstimateDuration -> estimasi lama kunjungan dalam menit berdasarkan
// jumlah tamu. Deterministik; nilai di Reservation.EstimatedDuration
// selalu hasil fungsi ini, tidak pernah di-set manual.
func EstimateDuration(guests int) int {
	switch {
	case guests <= 2:
		return 60
	case guests <= 4:
		return 90
	case guests <= 6:
		return 105
	default:
		return 120
	}
}
