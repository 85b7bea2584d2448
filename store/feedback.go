package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/yeremiapane/restaurant-reservation/models"
)

// Feedbacks -> semua feedback pelanggan (copy)
func (s *Store) Feedbacks() []models.Feedback {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]models.Feedback, len(s.feedback))
	copy(list, s.feedback)
	return list
}

// AddFeedback menyimpan penilaian untuk reservasi yang sudah completed.
func (s *Store) AddFeedback(reservationID string, rating int, comment string) (models.Feedback, error) {
	if rating < 1 || rating > 5 {
		return models.Feedback{}, fmt.Errorf("%w: rating must be between 1 and 5", ErrReservationInvalid)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var res *models.Reservation
	for i := range s.reservations {
		if s.reservations[i].ID == reservationID {
			res = &s.reservations[i]
			break
		}
	}
	if res == nil {
		return models.Feedback{}, ErrNotFound
	}
	if res.Status != models.StatusCompleted {
		return models.Feedback{}, fmt.Errorf("%w: reservation is not completed", ErrReservationInvalid)
	}

	fb := models.Feedback{
		ID:            uuid.NewString(),
		ReservationID: reservationID,
		CustomerName:  res.CustomerName,
		Rating:        rating,
		Comment:       comment,
		CreatedAt:     s.clock.Now(),
	}

	next := make([]models.Feedback, len(s.feedback), len(s.feedback)+1)
	copy(next, s.feedback)
	s.feedback = append(next, fb)
	s.save(KeyFeedback, s.feedback)
	return fb, nil
}
