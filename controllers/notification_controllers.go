package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-reservation/store"
	"github.com/yeremiapane/restaurant-reservation/utils"
)

type NotificationController struct {
	Store *store.Store
}

func NewNotificationController(st *store.Store) *NotificationController {
	return &NotificationController{Store: st}
}

// GetAllNotifications
func (nc *NotificationController) GetAllNotifications(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "All notifications", nc.Store.Notifications())
}

// MarkNotificationRead -> tandai sudah dibaca dari modal notifikasi
func (nc *NotificationController) MarkNotificationRead(c *gin.Context) {
	notif, err := nc.Store.MarkNotificationRead(c.Param("notif_id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Notification marked as read", notif)
}

// DeleteNotification
func (nc *NotificationController) DeleteNotification(c *gin.Context) {
	id := c.Param("notif_id")
	if err := nc.Store.DeleteNotification(id); err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Notification deleted", gin.H{"notif_id": id})
}
