package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-reservation/store"
	"github.com/yeremiapane/restaurant-reservation/utils"
)

type TableController struct {
	Store *store.Store
}

func NewTableController(st *store.Store) *TableController {
	return &TableController{Store: st}
}

// GetAllTables -> daftar meja statis dengan kapasitasnya
func (tc *TableController) GetAllTables(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of tables", tc.Store.Tables())
}

// GetTableLayout -> occupancy meja untuk visualisasi layout:
// ?date= (default hari ini). Meja terisi jika ada reservasi
// confirmed/seated pada tanggal itu.
func (tc *TableController) GetTableLayout(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = tc.Store.Clock().Now().Format("2006-01-02")
	}

	layout := tc.Store.TableLayout(date)

	occupied := 0
	for _, entry := range layout {
		if entry.Occupied {
			occupied++
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Table layout for "+date, gin.H{
		"date":      date,
		"tables":    layout,
		"occupied":  occupied,
		"available": len(layout) - occupied,
	})
}
