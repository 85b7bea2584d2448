package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/yeremiapane/restaurant-reservation/models"
	"github.com/yeremiapane/restaurant-reservation/router"
	"github.com/yeremiapane/restaurant-reservation/services"
	"github.com/yeremiapane/restaurant-reservation/store"
	"github.com/yeremiapane/restaurant-reservation/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type memPersistence struct {
	data map[string][]byte
}

func (m *memPersistence) Get(key string) ([]byte, error) {
	raw, ok := m.data[key]
	if !ok {
		return nil, store.ErrKeyNotFound
	}
	return raw, nil
}

func (m *memPersistence) Set(key string, value []byte) error {
	m.data[key] = value
	return nil
}

type movableClock struct {
	now time.Time
}

func (c *movableClock) Now() time.Time { return c.now }

// setupIntegration -> store in-memory + seed user + router lengkap dengan
// middleware auth, seperti di main.
func setupIntegration(t *testing.T) (*gin.Engine, *store.Store, *movableClock, *services.AutoCompleteMonitor) {
	t.Helper()

	clock := &movableClock{now: time.Date(2024, 3, 1, 17, 0, 0, 0, time.UTC)}
	st := store.New(&memPersistence{data: map[string][]byte{}}, clock)
	assert.NoError(t, st.Load())

	for _, seed := range []struct {
		username, password, name, role string
	}{
		{"admin", "Admin@123", "Administrator", models.RoleAdmin},
		{"waiter1", "Waiter@123", "Waiter Satu", models.RoleWaiter},
		{"customer1", "Customer@123", "Budi Santoso", models.RoleCustomer},
	} {
		hashed, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcrypt.DefaultCost)
		assert.NoError(t, err)
		_, err = st.CreateUser(store.UserInput{
			Username: seed.username,
			Password: string(hashed),
			Name:     seed.name,
			Role:     seed.role,
		})
		assert.NoError(t, err)
	}

	monitor := services.NewAutoCompleteMonitor(st, services.NewStoreNotifier(st))
	return router.SetupRouter(st, monitor), st, clock, monitor
}

func request(r *gin.Engine, method, url, token string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, url, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func loginTest(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()

	w := request(r, "POST", "/login", "", map[string]interface{}{
		"username": username,
		"password": password,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	token, ok := data["token"].(string)
	assert.True(t, ok, "token harus berupa string")
	return token
}

// TestEndToEndReservationFlow menguji flow utama:
// 1. Login waiter -> token
// 2. Create reservation -> pending, meja otomatis
// 3. Confirm -> seat
// 4. Waktu maju melewati estimasi + grace -> sweep menutup reservasi
// 5. Customer mengisi feedback
// 6. Admin melihat stats
func TestEndToEndReservationFlow(t *testing.T) {
	r, st, clock, monitor := setupIntegration(t)

	waiterToken := loginTest(t, r, "waiter1", "Waiter@123")

	// Create reservation jam 18:00, party 4 -> estimasi 90 menit.
	w := request(r, "POST", "/reservations", waiterToken, map[string]interface{}{
		"customer_name":  "Budi Santoso",
		"customer_phone": "081234567890",
		"customer_email": "budi@example.com",
		"date":           "2024-03-01",
		"time":           "18:00",
		"guests":         4,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	resID := data["ID"].(string)
	assert.Equal(t, float64(3), data["TableNumber"])

	// Confirm lalu seat.
	for _, status := range []string{"confirmed", "seated"} {
		w = request(r, "PATCH", "/reservations/"+resID+"/status", waiterToken,
			map[string]interface{}{"status": status})
		assert.Equal(t, http.StatusOK, w.Code)
	}

	// 19:46 -> melewati 18:00 + 90 menit + grace 15 menit.
	clock.now = time.Date(2024, 3, 1, 19, 46, 0, 0, time.UTC)
	monitor.Sweep()

	got, err := st.ReservationByID(resID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, got.Status)

	// Sweep meninggalkan notifikasi permintaan feedback.
	assert.NotEmpty(t, st.Notifications())

	// Customer mengisi feedback untuk reservasi yang sudah selesai.
	customerToken := loginTest(t, r, "customer1", "Customer@123")
	w = request(r, "POST", "/feedback", customerToken, map[string]interface{}{
		"reservation_id": resID,
		"rating":         5,
		"comment":        "Makanannya luar biasa",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Waiter tidak boleh mengakses endpoint admin.
	w = request(r, "GET", "/admin/stats", waiterToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Admin melihat stats hari itu.
	adminToken := loginTest(t, r, "admin", "Admin@123")
	w = request(r, "GET", "/admin/stats", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data = resp["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["completed"])

	// Logout membuat token tidak berlaku lagi.
	w = request(r, "POST", "/logout", waiterToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = request(r, "GET", "/reservations", waiterToken, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	r, _, _, _ := setupIntegration(t)

	w := request(r, "GET", "/reservations", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = request(r, "GET", "/ping", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
