package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-reservation/store"
	"github.com/yeremiapane/restaurant-reservation/utils"
)

type FeedbackController struct {
	Store *store.Store
}

func NewFeedbackController(st *store.Store) *FeedbackController {
	return &FeedbackController{Store: st}
}

// CreateFeedback -> pelanggan mengisi form feedback setelah reservasi
// selesai. Hanya reservasi completed yang bisa dinilai.
func (fc *FeedbackController) CreateFeedback(c *gin.Context) {
	var req struct {
		ReservationID string `json:"reservation_id" binding:"required"`
		Rating        int    `json:"rating" binding:"required,min=1,max=5"`
		Comment       string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	fb, err := fc.Store.AddFeedback(req.ReservationID, req.Rating, req.Comment)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	utils.InfoLogger.Printf("Feedback received for reservation %s: %d/5", fb.ReservationID, fb.Rating)
	utils.RespondJSON(c, http.StatusCreated, "Feedback submitted", fb)
}

// GetAllFeedback -> layar review untuk staff
func (fc *FeedbackController) GetAllFeedback(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "All feedback", fc.Store.Feedbacks())
}
