package services

import (
	"sync"
	"time"

	"github.com/yeremiapane/restaurant-reservation/events"
	"github.com/yeremiapane/restaurant-reservation/models"
	"github.com/yeremiapane/restaurant-reservation/reservation"
	"github.com/yeremiapane/restaurant-reservation/store"
	"github.com/yeremiapane/restaurant-reservation/utils"
)

// GraceMinutes adalah toleransi setelah estimasi selesai sebelum sweep
// menutup reservasi seated.
const GraceMinutes = 15

// AutoCompleteMonitor menyelesaikan otomatis reservasi seated yang sudah
// melewati estimasi durasi plus grace period. Ini mekanisme backup;
// penyelesaian manual oleh staff tetap jalur utama. Sweep berjalan di satu
// goroutine sehingga tick tidak pernah tumpang tindih.
type AutoCompleteMonitor struct {
	Store    *store.Store
	Notifier FeedbackNotifier
	Interval time.Duration

	mu      sync.Mutex
	stop    chan struct{}
	running bool
}

func NewAutoCompleteMonitor(st *store.Store, notifier FeedbackNotifier) *AutoCompleteMonitor {
	return &AutoCompleteMonitor{
		Store:    st,
		Notifier: notifier,
		Interval: time.Minute,
	}
}

// Start menjalankan sweep periodik. Tidak melakukan apa-apa jika sudah jalan.
func (m *AutoCompleteMonitor) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running {
		return
	}
	m.stop = make(chan struct{})
	m.running = true

	stop := m.stop
	go func() {
		ticker := time.NewTicker(m.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				m.Sweep()
			case <-stop:
				return
			}
		}
	}()
	utils.InfoLogger.Println("Auto-complete monitor started")
}

// Stop menghentikan tick berikutnya. Efek tick yang sudah diterapkan tidak
// di-rollback.
func (m *AutoCompleteMonitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.running {
		return
	}
	close(m.stop)
	m.running = false
	utils.InfoLogger.Println("Auto-complete monitor stopped")
}

// Running melaporkan apakah monitor sedang aktif.
func (m *AutoCompleteMonitor) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

// Sweep memeriksa semua reservasi seated pada tanggal hari ini dan menutup
// yang sudah melewati start + estimatedDuration + grace. Diekspor supaya
// bisa dipanggil deterministik dari test.
func (m *AutoCompleteMonitor) Sweep() {
	now := m.Store.Clock().Now()
	today := now.Format("2006-01-02")
	nowMinutes := now.Hour()*60 + now.Minute()

	for _, res := range m.Store.Reservations() {
		if res.Status != models.StatusSeated || res.Date != today {
			continue
		}

		start, err := reservation.SlotMinutes(res.Time)
		if err != nil {
			utils.ErrorLogger.Printf("Skipping reservation %s: %v", res.ID, err)
			continue
		}

		expectedEnd := start + res.EstimatedDuration
		if nowMinutes <= expectedEnd+GraceMinutes {
			continue
		}

		updated, err := m.Store.UpdateReservationStatus(res.ID, models.StatusCompleted)
		if err != nil {
			// Staff bisa saja menutup/membatalkan reservasi di antara
			// pembacaan dan update; itu bukan kondisi error sweep.
			utils.InfoLogger.Printf("Sweep skipped reservation %s: %v", res.ID, err)
			continue
		}

		utils.InfoLogger.Printf("Reservation %s auto-completed (table %d, started %s)",
			updated.ID, updated.TableNumber, updated.Time)
		events.BroadcastReservationStatus(updated)

		if m.Notifier != nil {
			if err := m.Notifier.FeedbackRequest(updated.CustomerName, updated.CustomerEmail, updated.ID, updated.Date); err != nil {
				utils.ErrorLogger.Printf("Error sending feedback request for %s: %v", updated.ID, err)
			}
		}
	}
}
