package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/yeremiapane/restaurant-reservation/models"
	"github.com/yeremiapane/restaurant-reservation/reservation"
)

// ReservationInput adalah field yang boleh diisi pembuat/pengedit reservasi.
// Meja, status dan durasi dihitung store, bukan input.
type ReservationInput struct {
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	Date            string
	Time            string
	Guests          int
	SpecialRequests string
}

func (in ReservationInput) validate() error {
	if in.CustomerName == "" || in.CustomerPhone == "" || in.CustomerEmail == "" {
		return fmt.Errorf("%w: missing contact fields", ErrReservationInvalid)
	}
	if in.Guests < 1 {
		return fmt.Errorf("%w: guests must be at least 1", ErrReservationInvalid)
	}
	if !reservation.ValidDate(in.Date) {
		return fmt.Errorf("%w: invalid date %q", ErrReservationInvalid, in.Date)
	}
	if !reservation.ValidSlot(in.Time) {
		return fmt.Errorf("%w: invalid time slot %q", ErrReservationInvalid, in.Time)
	}
	return nil
}

// Reservations -> seluruh reservasi (copy), termasuk yang sudah
// completed/cancelled untuk tampilan riwayat.
func (s *Store) Reservations() []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]models.Reservation, len(s.reservations))
	copy(list, s.reservations)
	return list
}

// ReservationByID mencari satu reservasi.
func (s *Store) ReservationByID(id string) (models.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, res := range s.reservations {
		if res.ID == id {
			return res, nil
		}
	}
	return models.Reservation{}, ErrNotFound
}

// CreateReservation memberi meja lewat assigner lalu menyimpan reservasi
// baru dengan status pending. Jika tidak ada meja yang cocok, tidak ada
// yang di-commit dan ErrNoTableAvailable dikembalikan.
func (s *Store) CreateReservation(in ReservationInput) (models.Reservation, error) {
	if err := in.validate(); err != nil {
		return models.Reservation{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tableID := reservation.AssignTable(s.reservations, s.tables, in.Date, in.Time, in.Guests, "")
	if tableID == 0 {
		return models.Reservation{}, ErrNoTableAvailable
	}

	now := s.clock.Now()
	res := models.Reservation{
		ID:                uuid.NewString(),
		CustomerName:      in.CustomerName,
		CustomerPhone:     in.CustomerPhone,
		CustomerEmail:     in.CustomerEmail,
		Date:              in.Date,
		Time:              in.Time,
		Guests:            in.Guests,
		TableNumber:       tableID,
		Status:            models.StatusPending,
		SpecialRequests:   in.SpecialRequests,
		EstimatedDuration: reservation.EstimateDuration(in.Guests),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	next := make([]models.Reservation, len(s.reservations), len(s.reservations)+1)
	copy(next, s.reservations)
	s.reservations = append(next, res)
	s.save(KeyReservations, s.reservations)
	return res, nil
}

// UpdateReservation mengedit field kontak/jadwal lalu menugaskan ulang meja,
// dengan reservasi itu sendiri dikecualikan dari pengecekan konflik.
// Reservasi terminal tidak bisa diedit.
func (s *Store) UpdateReservation(id string, in ReservationInput) (models.Reservation, error) {
	if err := in.validate(); err != nil {
		return models.Reservation{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, res := range s.reservations {
		if res.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.Reservation{}, ErrNotFound
	}
	if s.reservations[idx].Status.Terminal() {
		return models.Reservation{}, ErrReservationClosed
	}

	tableID := reservation.AssignTable(s.reservations, s.tables, in.Date, in.Time, in.Guests, id)
	if tableID == 0 {
		return models.Reservation{}, ErrNoTableAvailable
	}

	next := make([]models.Reservation, len(s.reservations))
	copy(next, s.reservations)

	res := next[idx]
	res.CustomerName = in.CustomerName
	res.CustomerPhone = in.CustomerPhone
	res.CustomerEmail = in.CustomerEmail
	res.Date = in.Date
	res.Time = in.Time
	res.Guests = in.Guests
	res.SpecialRequests = in.SpecialRequests
	res.TableNumber = tableID
	res.EstimatedDuration = reservation.EstimateDuration(in.Guests)
	res.UpdatedAt = s.clock.Now()
	next[idx] = res

	s.reservations = next
	s.save(KeyReservations, s.reservations)
	return res, nil
}

// UpdateReservationStatus menjalankan satu transisi state machine. Transisi
// tidak valid ditolak dengan ErrInvalidTransition dan store tidak berubah.
func (s *Store) UpdateReservationStatus(id string, status models.ReservationStatus) (models.Reservation, error) {
	if !status.Valid() {
		return models.Reservation{}, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, res := range s.reservations {
		if res.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.Reservation{}, ErrNotFound
	}
	if !s.reservations[idx].Status.CanTransitionTo(status) {
		return models.Reservation{}, fmt.Errorf("%w: %s -> %s",
			ErrInvalidTransition, s.reservations[idx].Status, status)
	}

	next := make([]models.Reservation, len(s.reservations))
	copy(next, s.reservations)
	next[idx].Status = status
	next[idx].UpdatedAt = s.clock.Now()

	s.reservations = next
	s.save(KeyReservations, s.reservations)
	return next[idx], nil
}

// AvailableSlots -> slot yang masih bisa dipesan untuk tanggal dan jumlah
// tamu tertentu. excludeID dipakai form edit.
func (s *Store) AvailableSlots(date string, guests int, excludeID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return reservation.AvailableSlots(s.reservations, s.tables, date, guests, excludeID)
}

// SearchReservations menyaring daftar untuk layar dashboard: substring nama
// atau telepon, status, dan tanggal. Argumen kosong berarti tanpa filter.
func (s *Store) SearchReservations(search string, status models.ReservationStatus, date string) []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search = strings.ToLower(search)
	matched := make([]models.Reservation, 0, len(s.reservations))
	for _, res := range s.reservations {
		if search != "" &&
			!strings.Contains(strings.ToLower(res.CustomerName), search) &&
			!strings.Contains(res.CustomerPhone, search) {
			continue
		}
		if status != "" && res.Status != status {
			continue
		}
		if date != "" && res.Date != date {
			continue
		}
		matched = append(matched, res)
	}
	return matched
}

// TableOccupancy adalah status satu meja untuk layout dashboard.
type TableOccupancy struct {
	Table    models.Table
	Occupied bool
}

// TableLayout -> occupancy per meja untuk satu tanggal. Mengikuti layar
// layout: meja dianggap terisi jika ada reservasi confirmed/seated pada
// tanggal itu, slot waktu diabaikan.
func (s *Store) TableLayout(date string) []TableOccupancy {
	s.mu.RLock()
	defer s.mu.RUnlock()

	layout := make([]TableOccupancy, 0, len(s.tables))
	for _, table := range s.tables {
		occupied := false
		for _, res := range s.reservations {
			if res.Date == date && res.TableNumber == table.ID &&
				(res.Status == models.StatusConfirmed || res.Status == models.StatusSeated) {
				occupied = true
				break
			}
		}
		layout = append(layout, TableOccupancy{Table: table, Occupied: occupied})
	}
	return layout
}
