package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-reservation/store"
	"github.com/yeremiapane/restaurant-reservation/utils"
)

var ErrNoPermission = errors.New("you don't have permission for this action")

// respondStoreError memetakan error store ke kode HTTP.
func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, store.ErrNoTableAvailable):
		utils.RespondError(c, http.StatusConflict, err)
	case errors.Is(err, store.ErrInvalidTransition),
		errors.Is(err, store.ErrReservationClosed),
		errors.Is(err, store.ErrReservationInvalid),
		errors.Is(err, store.ErrUsernameTaken):
		utils.RespondError(c, http.StatusBadRequest, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
