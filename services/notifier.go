package services

import (
	"fmt"

	"github.com/yeremiapane/restaurant-reservation/events"
	"github.com/yeremiapane/restaurant-reservation/store"
	"github.com/yeremiapane/restaurant-reservation/utils"
)

// FeedbackNotifier -> collaborator notifikasi. Pengiriman email sebenarnya
// di luar sistem; inti hanya memanggil interface ini saat reservasi selesai.
type FeedbackNotifier interface {
	FeedbackRequest(customerName, customerEmail, reservationID, date string) error
}

// StoreNotifier mencatat permintaan feedback sebagai notifikasi staff dan
// menyiarkannya ke dashboard.
type StoreNotifier struct {
	Store *store.Store
}

func NewStoreNotifier(st *store.Store) *StoreNotifier {
	return &StoreNotifier{Store: st}
}

func (n *StoreNotifier) FeedbackRequest(customerName, customerEmail, reservationID, date string) error {
	message := fmt.Sprintf("Feedback request sent to %s <%s> for reservation %s (%s)",
		customerName, customerEmail, reservationID, date)

	notif := n.Store.AddNotification("", "Feedback Request", message)
	events.BroadcastNotification(notif)

	utils.InfoLogger.Printf("Feedback request queued for %s (reservation %s)", customerEmail, reservationID)
	return nil
}
