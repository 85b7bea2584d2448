// Package store menampung seluruh state aplikasi dalam memori. Store dibuat
// sekali di application root dan dioper ke controller/service yang butuh
// akses; tidak ada state global. Setiap mutasi mengganti seluruh koleksi
// (baca, hitung koleksi baru, ganti) lalu di-checkpoint ke collaborator
// Persistence sebagai blob per key (gaya localStorage).
package store

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/yeremiapane/restaurant-reservation/models"
	"github.com/yeremiapane/restaurant-reservation/utils"
)

// Key blob di Persistence, satu list penuh per key.
const (
	KeyReservations  = "restaurant_reservations"
	KeyUsers         = "restaurant_users"
	KeyNotifications = "restaurant_notifications"
	KeyFeedback      = "restaurant_feedback"
)

// Persistence -> collaborator penyimpanan key-value, tanpa partial update
// dan tanpa transaksi. Get mengembalikan ErrKeyNotFound jika key belum ada.
type Persistence interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// Clock -> sumber waktu, di-inject supaya sweep dan pengecekan "hari ini"
// bisa diuji dengan jam palsu.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

type Store struct {
	mu          sync.RWMutex
	persistence Persistence
	clock       Clock

	tables        []models.Table
	reservations  []models.Reservation
	users         []models.User
	notifications []models.Notification
	feedback      []models.Feedback
}

func New(p Persistence, clock Clock) *Store {
	return &Store{
		persistence: p,
		clock:       clock,
		tables:      models.DefaultTables(),
	}
}

// Clock mengembalikan collaborator waktu milik store.
func (s *Store) Clock() Clock { return s.clock }

// Load memuat semua koleksi dari Persistence. Key yang belum ada dianggap
// koleksi kosong.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := loadList(s.persistence, KeyReservations, &s.reservations); err != nil {
		return err
	}
	if err := loadList(s.persistence, KeyUsers, &s.users); err != nil {
		return err
	}
	if err := loadList(s.persistence, KeyNotifications, &s.notifications); err != nil {
		return err
	}
	return loadList(s.persistence, KeyFeedback, &s.feedback)
}

func loadList(p Persistence, key string, dst interface{}) error {
	raw, err := p.Get(key)
	if err != nil {
		if err == ErrKeyNotFound {
			return nil
		}
		return err
	}
	return json.Unmarshal(raw, dst)
}

// save men-serialisasi satu koleksi penuh ke Persistence. Checkpoint bersifat
// best-effort (semantik localStorage): kegagalan dicatat, mutasi in-memory
// tetap berlaku. Dipanggil dengan lock sudah dipegang.
func (s *Store) save(key string, list interface{}) {
	raw, err := json.Marshal(list)
	if err != nil {
		utils.ErrorLogger.Printf("Error marshaling %s: %v", key, err)
		return
	}
	if err := s.persistence.Set(key, raw); err != nil {
		utils.ErrorLogger.Printf("Error persisting %s: %v", key, err)
	}
}

// Tables -> daftar meja statis (copy)
func (s *Store) Tables() []models.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tables := make([]models.Table, len(s.tables))
	copy(tables, s.tables)
	return tables
}
