package entity

import (
	"time"
)

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

type UserStatus string

const (
	UserActive    UserStatus = "active"
	UserSuspended UserStatus = "suspended"
)

func (s UserStatus) Valid() bool {
	return s == UserActive || s == UserSuspended
}

// User ID is shared with the Firebase auth identity. Accounts are suspended
// rather than deleted by default.
type User struct {
	ID       string     `json:"id" firestore:"id"`
	Username string     `json:"username" firestore:"username"`
	FullName string     `json:"full_name,omitempty" firestore:"fullName,omitempty"`
	Email    string     `json:"email" firestore:"email"`
	Role     UserRole   `json:"role" firestore:"role"`
	Status   UserStatus `json:"status" firestore:"status"`

	Bio   string `json:"bio,omitempty" firestore:"bio,omitempty"`
	Phone string `json:"phone,omitempty" firestore:"phone,omitempty"`
	City  string `json:"city,omitempty" firestore:"city,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
