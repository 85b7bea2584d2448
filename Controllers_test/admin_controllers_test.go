package Controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/restaurant-reservation/controllers"
	"github.com/yeremiapane/restaurant-reservation/models"
	"github.com/yeremiapane/restaurant-reservation/services"
	"github.com/yeremiapane/restaurant-reservation/store"
	"github.com/yeremiapane/restaurant-reservation/utils"
)

func setupAdminRouter(st *store.Store, monitor *services.AutoCompleteMonitor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	adminCtrl := controllers.NewAdminController(st, monitor)
	router.GET("/admin/stats", adminCtrl.GetDashboardStats)
	router.POST("/admin/auto-complete/enable", adminCtrl.EnableAutoComplete)
	router.POST("/admin/auto-complete/disable", adminCtrl.DisableAutoComplete)
	return router
}

func TestDashboardStatsHTTP(t *testing.T) {
	utils.InitLogger()
	st, _ := setupTestStore()
	monitor := services.NewAutoCompleteMonitor(st, nil)
	router := setupAdminRouter(st, monitor)

	// Dua reservasi hari ini, satu di antaranya confirmed.
	res, err := st.CreateReservation(store.ReservationInput{
		CustomerName:  "Budi Santoso",
		CustomerPhone: "081234567890",
		CustomerEmail: "budi@example.com",
		Date:          "2024-03-01",
		Time:          "19:00",
		Guests:        2,
	})
	assert.NoError(t, err)
	_, err = st.UpdateReservationStatus(res.ID, models.StatusConfirmed)
	assert.NoError(t, err)

	_, err = st.CreateReservation(store.ReservationInput{
		CustomerName:  "Siti Rahma",
		CustomerPhone: "089876543210",
		CustomerEmail: "siti@example.com",
		Date:          "2024-03-01",
		Time:          "20:00",
		Guests:        4,
	})
	assert.NoError(t, err)

	w := doJSON(router, "GET", "/admin/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "2024-03-01", data["date"])
	assert.Equal(t, float64(2), data["reservations"])
	assert.Equal(t, float64(1), data["pending"])
	assert.Equal(t, float64(1), data["confirmed"])
	assert.Equal(t, float64(1), data["tables_occupied"])
	assert.Equal(t, float64(10), data["tables_total"])
	assert.Equal(t, false, data["auto_complete"])
}

func TestAutoCompleteToggleHTTP(t *testing.T) {
	utils.InitLogger()
	st, _ := setupTestStore()
	monitor := services.NewAutoCompleteMonitor(st, nil)
	router := setupAdminRouter(st, monitor)

	w := doJSON(router, "POST", "/admin/auto-complete/enable", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, monitor.Running())

	w = doJSON(router, "POST", "/admin/auto-complete/disable", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, monitor.Running())
}
