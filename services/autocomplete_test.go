package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yeremiapane/restaurant-reservation/models"
	"github.com/yeremiapane/restaurant-reservation/store"
	"github.com/yeremiapane/restaurant-reservation/utils"
)

type memoryPersistence struct {
	data map[string][]byte
}

func (m *memoryPersistence) Get(key string) ([]byte, error) {
	raw, ok := m.data[key]
	if !ok {
		return nil, store.ErrKeyNotFound
	}
	return raw, nil
}

func (m *memoryPersistence) Set(key string, value []byte) error {
	m.data[key] = value
	return nil
}

// adjustableClock bisa dimajukan di tengah test untuk mensimulasikan
// berjalannya waktu antar sweep.
type adjustableClock struct {
	now time.Time
}

func (c *adjustableClock) Now() time.Time { return c.now }

type recordingNotifier struct {
	requests []string
}

func (n *recordingNotifier) FeedbackRequest(customerName, customerEmail, reservationID, date string) error {
	n.requests = append(n.requests, reservationID)
	return nil
}

func seatedReservation(t *testing.T, st *store.Store, date, timeSlot string, guests int) models.Reservation {
	t.Helper()

	res, err := st.CreateReservation(store.ReservationInput{
		CustomerName:  "Dewi Lestari",
		CustomerPhone: "081234567890",
		CustomerEmail: "dewi@example.com",
		Date:          date,
		Time:          timeSlot,
		Guests:        guests,
	})
	assert.NoError(t, err)

	_, err = st.UpdateReservationStatus(res.ID, models.StatusConfirmed)
	assert.NoError(t, err)
	res, err = st.UpdateReservationStatus(res.ID, models.StatusSeated)
	assert.NoError(t, err)
	return res
}

func setupMonitor(t *testing.T, now time.Time) (*AutoCompleteMonitor, *store.Store, *adjustableClock, *recordingNotifier) {
	t.Helper()
	utils.InitLogger()

	clock := &adjustableClock{now: now}
	st := store.New(&memoryPersistence{data: map[string][]byte{}}, clock)
	assert.NoError(t, st.Load())

	notifier := &recordingNotifier{}
	monitor := NewAutoCompleteMonitor(st, notifier)
	return monitor, st, clock, notifier
}

func TestSweepCompletesOverdueReservation(t *testing.T) {
	// Party of 4 duduk jam 18:00, estimasi 90 menit -> selesai 19:30,
	// grace sampai 19:45.
	monitor, st, clock, notifier := setupMonitor(t,
		time.Date(2024, 3, 1, 17, 0, 0, 0, time.UTC))
	res := seatedReservation(t, st, "2024-03-01", "18:00", 4)

	// 19:29 masih dalam estimasi.
	clock.now = time.Date(2024, 3, 1, 19, 29, 0, 0, time.UTC)
	monitor.Sweep()
	got, err := st.ReservationByID(res.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusSeated, got.Status)

	// 19:45 tepat di batas grace, belum ditutup.
	clock.now = time.Date(2024, 3, 1, 19, 45, 0, 0, time.UTC)
	monitor.Sweep()
	got, _ = st.ReservationByID(res.ID)
	assert.Equal(t, models.StatusSeated, got.Status)

	// 19:46 melewati batas -> completed plus permintaan feedback.
	clock.now = time.Date(2024, 3, 1, 19, 46, 0, 0, time.UTC)
	monitor.Sweep()
	got, _ = st.ReservationByID(res.ID)
	assert.Equal(t, models.StatusCompleted, got.Status)
	assert.Equal(t, []string{res.ID}, notifier.requests)

	// Sweep berikutnya tidak mengirim feedback dua kali.
	monitor.Sweep()
	assert.Len(t, notifier.requests, 1)
}

func TestSweepIgnoresOtherStatusesAndDates(t *testing.T) {
	monitor, st, clock, notifier := setupMonitor(t,
		time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))

	// Confirmed, bukan seated: sweep tidak menyentuh.
	confirmed, err := st.CreateReservation(store.ReservationInput{
		CustomerName:  "Andi Wijaya",
		CustomerPhone: "081111111111",
		CustomerEmail: "andi@example.com",
		Date:          "2024-03-01",
		Time:          "08:00",
		Guests:        2,
	})
	assert.NoError(t, err)
	_, err = st.UpdateReservationStatus(confirmed.ID, models.StatusConfirmed)
	assert.NoError(t, err)

	// Seated, tapi untuk tanggal lain.
	other := seatedReservation(t, st, "2024-03-02", "08:00", 2)

	// Jauh melewati estimasi di tanggal 1 Maret.
	clock.now = time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC)
	monitor.Sweep()

	got, _ := st.ReservationByID(confirmed.ID)
	assert.Equal(t, models.StatusConfirmed, got.Status)
	got, _ = st.ReservationByID(other.ID)
	assert.Equal(t, models.StatusSeated, got.Status)
	assert.Empty(t, notifier.requests)
}

func TestSweepManualCompletionWins(t *testing.T) {
	monitor, st, clock, notifier := setupMonitor(t,
		time.Date(2024, 3, 1, 17, 0, 0, 0, time.UTC))
	res := seatedReservation(t, st, "2024-03-01", "18:00", 2)

	// Staff menutup manual sebelum sweep sempat jalan.
	_, err := st.UpdateReservationStatus(res.ID, models.StatusCompleted)
	assert.NoError(t, err)

	clock.now = time.Date(2024, 3, 1, 22, 0, 0, 0, time.UTC)
	monitor.Sweep()
	assert.Empty(t, notifier.requests)
}

func TestMonitorStartStop(t *testing.T) {
	monitor, _, _, _ := setupMonitor(t,
		time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	monitor.Interval = time.Hour

	assert.False(t, monitor.Running())
	monitor.Start()
	assert.True(t, monitor.Running())

	// Start kedua idempoten.
	monitor.Start()
	assert.True(t, monitor.Running())

	monitor.Stop()
	assert.False(t, monitor.Running())
	monitor.Stop()
	assert.False(t, monitor.Running())
}
