package models

import "time"

const (
	RoleAdmin    = "admin"
	RoleWaiter   = "waiter"
	RoleCashier  = "cashier"
	RoleKitchen  = "kitchen"
	RoleDelivery = "delivery"
	RoleCustomer = "customer"
)

// ValidRole memeriksa role yang dikenal sistem.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleWaiter, RoleCashier, RoleKitchen, RoleDelivery, RoleCustomer:
		return true
	}
	return false
}

type User struct {
	ID          string
	Username    string
	Password    string // bcrypt hash
	Name        string
	Email       string
	Phone       string
	Role        string
	IsActive    bool
	Department  string
	Address     string
	DateOfBirth string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
