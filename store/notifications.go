package store

import (
	"github.com/google/uuid"
	"github.com/yeremiapane/restaurant-reservation/models"
)

// Notifications -> seluruh notifikasi (copy), terbaru dulu tidak dijamin;
// urutan mengikuti urutan pembuatan.
func (s *Store) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]models.Notification, len(s.notifications))
	copy(list, s.notifications)
	return list
}

// AddNotification menyimpan notifikasi baru dan mengembalikannya dengan ID.
func (s *Store) AddNotification(userID, title, message string) models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	notif := models.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		CreatedAt: s.clock.Now(),
	}

	next := make([]models.Notification, len(s.notifications), len(s.notifications)+1)
	copy(next, s.notifications)
	s.notifications = append(next, notif)
	s.save(KeyNotifications, s.notifications)
	return notif
}

// MarkNotificationRead menandai satu notifikasi sudah dibaca.
func (s *Store) MarkNotificationRead(id string) (models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, notif := range s.notifications {
		if notif.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.Notification{}, ErrNotFound
	}

	next := make([]models.Notification, len(s.notifications))
	copy(next, s.notifications)
	next[idx].Read = true

	s.notifications = next
	s.save(KeyNotifications, s.notifications)
	return next[idx], nil
}

func (s *Store) DeleteNotification(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Notification, 0, len(s.notifications))
	found := false
	for _, notif := range s.notifications {
		if notif.ID == id {
			found = true
			continue
		}
		next = append(next, notif)
	}
	if !found {
		return ErrNotFound
	}

	s.notifications = next
	s.save(KeyNotifications, s.notifications)
	return nil
}
