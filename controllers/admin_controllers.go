package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-reservation/models"
	"github.com/yeremiapane/restaurant-reservation/services"
	"github.com/yeremiapane/restaurant-reservation/store"
	"github.com/yeremiapane/restaurant-reservation/utils"
)

type AdminController struct {
	Store   *store.Store
	Monitor *services.AutoCompleteMonitor
}

func NewAdminController(st *store.Store, monitor *services.AutoCompleteMonitor) *AdminController {
	return &AdminController{Store: st, Monitor: monitor}
}

// GetDashboardStats -> statistik untuk dashboard admin: jumlah reservasi
// per status hari ini dan occupancy meja.
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	today := ac.Store.Clock().Now().Format("2006-01-02")

	counts := map[models.ReservationStatus]int{}
	totalToday := 0
	for _, res := range ac.Store.Reservations() {
		if res.Date != today {
			continue
		}
		counts[res.Status]++
		totalToday++
	}

	occupied := 0
	layout := ac.Store.TableLayout(today)
	for _, entry := range layout {
		if entry.Occupied {
			occupied++
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", gin.H{
		"date":            today,
		"reservations":    totalToday,
		"pending":         counts[models.StatusPending],
		"confirmed":       counts[models.StatusConfirmed],
		"seated":          counts[models.StatusSeated],
		"completed":       counts[models.StatusCompleted],
		"cancelled":       counts[models.StatusCancelled],
		"tables_occupied": occupied,
		"tables_total":    len(layout),
		"auto_complete":   ac.Monitor.Running(),
	})
}

// EnableAutoComplete -> nyalakan sweep penyelesaian otomatis
func (ac *AdminController) EnableAutoComplete(c *gin.Context) {
	ac.Monitor.Start()
	utils.RespondJSON(c, http.StatusOK, "Auto-complete enabled", gin.H{"running": true})
}

// DisableAutoComplete -> matikan sweep; tick yang sedang berjalan tidak
// di-rollback
func (ac *AdminController) DisableAutoComplete(c *gin.Context) {
	ac.Monitor.Stop()
	utils.RespondJSON(c, http.StatusOK, "Auto-complete disabled", gin.H{"running": false})
}
