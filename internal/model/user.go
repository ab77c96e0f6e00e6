package model

import "time"

// Role is the closed set of account roles. Keeping it a dedicated type means
// an invalid role cannot be constructed by accident from a free-form string.
type Role string

const (
	// RoleAdmin is the only role the admin panel recognizes.
	RoleAdmin Role = "admin"
)

// User is an admin panel account. Users are created by the seed command, never
// through the public API. The password is stored only as a bcrypt hash.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:64;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:128;not null"`
	Role         Role      `json:"role" gorm:"type:varchar(20);not null;default:'admin'"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
