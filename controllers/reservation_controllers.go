package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-reservation/events"
	"github.com/yeremiapane/restaurant-reservation/models"
	"github.com/yeremiapane/restaurant-reservation/store"
	"github.com/yeremiapane/restaurant-reservation/utils"
)

type ReservationController struct {
	Store *store.Store
}

func NewReservationController(st *store.Store) *ReservationController {
	return &ReservationController{Store: st}
}

type reservationRequest struct {
	CustomerName    string `json:"customer_name" binding:"required"`
	CustomerPhone   string `json:"customer_phone" binding:"required"`
	CustomerEmail   string `json:"customer_email" binding:"required,email"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	Guests          int    `json:"guests" binding:"required,min=1"`
	SpecialRequests string `json:"special_requests"`
}

func (r reservationRequest) toInput() store.ReservationInput {
	return store.ReservationInput{
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerEmail:   r.CustomerEmail,
		Date:            r.Date,
		Time:            r.Time,
		Guests:          r.Guests,
		SpecialRequests: r.SpecialRequests,
	}
}

// CreateReservation -> buat reservasi baru; meja ditentukan otomatis.
// 409 jika tidak ada meja untuk slot tersebut.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	res, err := rc.Store.CreateReservation(req.toInput())
	if err != nil {
		respondStoreError(c, err)
		return
	}

	events.BroadcastReservationCreate(res)

	utils.InfoLogger.Printf("New reservation %s: %s, %s %s, %d guests, table %d",
		res.ID, res.CustomerName, res.Date, res.Time, res.Guests, res.TableNumber)
	utils.RespondJSON(c, http.StatusCreated, "Reservation created successfully", res)
}

// GetAllReservations -> daftar reservasi dengan filter layar dashboard:
// ?search= (nama/telepon), ?status=, ?date=
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	status := models.ReservationStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		utils.RespondError(c, http.StatusBadRequest, store.ErrReservationInvalid)
		return
	}

	list := rc.Store.SearchReservations(c.Query("search"), status, c.Query("date"))
	utils.RespondJSON(c, http.StatusOK, "List of reservations", list)
}

// GetReservationByID -> detail satu reservasi
func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	res, err := rc.Store.ReservationByID(c.Param("reservation_id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation detail", res)
}

// UpdateReservation -> edit reservasi; meja ditugaskan ulang dengan
// reservasi ini dikecualikan dari pengecekan konflik.
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	res, err := rc.Store.UpdateReservation(c.Param("reservation_id"), req.toInput())
	if err != nil {
		respondStoreError(c, err)
		return
	}

	events.BroadcastReservationUpdate(res)

	utils.InfoLogger.Printf("Reservation %s updated: %s %s, %d guests, table %d",
		res.ID, res.Date, res.Time, res.Guests, res.TableNumber)
	utils.RespondJSON(c, http.StatusOK, "Reservation updated", res)
}

// UpdateReservationStatus -> transisi status oleh staff (confirm, seat,
// complete, cancel). Transisi tidak valid ditolak.
func (rc *ReservationController) UpdateReservationStatus(c *gin.Context) {
	var body struct {
		Status models.ReservationStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	res, err := rc.Store.UpdateReservationStatus(c.Param("reservation_id"), body.Status)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	events.BroadcastReservationStatus(res)

	utils.InfoLogger.Printf("Reservation %s status changed to %s", res.ID, res.Status)
	utils.RespondJSON(c, http.StatusOK, "Reservation status updated", res)
}

// GetAvailableSlots -> slot yang masih bisa dipesan untuk form
// reservasi baru/edit: ?date=&guests=&exclude_id=
func (rc *ReservationController) GetAvailableSlots(c *gin.Context) {
	var query struct {
		Date      string `form:"date" binding:"required"`
		Guests    int    `form:"guests" binding:"required,min=1"`
		ExcludeID string `form:"exclude_id"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	slots := rc.Store.AvailableSlots(query.Date, query.Guests, query.ExcludeID)
	utils.RespondJSON(c, http.StatusOK, "Available time slots", slots)
}
