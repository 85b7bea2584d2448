package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/yeremiapane/restaurant-reservation/models"
)

// UserInput adalah field user yang diisi lewat form manajemen user.
type UserInput struct {
	Username    string
	Password    string // sudah berupa bcrypt hash, controller yang meng-hash
	Name        string
	Email       string
	Phone       string
	Role        string
	IsActive    *bool // nil = tidak diubah (default aktif saat create)
	Department  string
	Address     string
	DateOfBirth string
}

// Users -> seluruh user (copy)
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]models.User, len(s.users))
	copy(users, s.users)
	return users
}

func (s *Store) UserByID(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *Store) UserByUsername(username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, ErrNotFound
}

// CreateUser menambahkan user baru. Username harus unik.
func (s *Store) CreateUser(in UserInput) (models.User, error) {
	if in.Username == "" || in.Password == "" || in.Name == "" {
		return models.User{}, fmt.Errorf("%w: missing required user fields", ErrReservationInvalid)
	}
	if !models.ValidRole(in.Role) {
		return models.User{}, fmt.Errorf("%w: unknown role %q", ErrReservationInvalid, in.Role)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == in.Username {
			return models.User{}, ErrUsernameTaken
		}
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	now := s.clock.Now()
	user := models.User{
		ID:          uuid.NewString(),
		Username:    in.Username,
		Password:    in.Password,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Role:        in.Role,
		IsActive:    active,
		Department:  in.Department,
		Address:     in.Address,
		DateOfBirth: in.DateOfBirth,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	next := make([]models.User, len(s.users), len(s.users)+1)
	copy(next, s.users)
	s.users = append(next, user)
	s.save(KeyUsers, s.users)
	return user, nil
}

// UpdateUser mengubah field profil user. Password kosong berarti tidak diganti.
func (s *Store) UpdateUser(id string, in UserInput) (models.User, error) {
	if in.Role != "" && !models.ValidRole(in.Role) {
		return models.User{}, fmt.Errorf("%w: unknown role %q", ErrReservationInvalid, in.Role)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, user := range s.users {
		if user.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.User{}, ErrNotFound
	}

	next := make([]models.User, len(s.users))
	copy(next, s.users)

	user := next[idx]
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.Phone != "" {
		user.Phone = in.Phone
	}
	if in.Role != "" {
		user.Role = in.Role
	}
	if in.Password != "" {
		user.Password = in.Password
	}
	if in.Department != "" {
		user.Department = in.Department
	}
	if in.Address != "" {
		user.Address = in.Address
	}
	if in.DateOfBirth != "" {
		user.DateOfBirth = in.DateOfBirth
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	user.UpdatedAt = s.clock.Now()
	next[idx] = user

	s.users = next
	s.save(KeyUsers, s.users)
	return user, nil
}

func (s *Store) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.User, 0, len(s.users))
	found := false
	for _, user := range s.users {
		if user.ID == id {
			found = true
			continue
		}
		next = append(next, user)
	}
	if !found {
		return ErrNotFound
	}

	s.users = next
	s.save(KeyUsers, s.users)
	return nil
}
