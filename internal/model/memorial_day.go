package model

import "time"

// PaymentStatus represents the status of a memorial day purchase.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
)

// MemorialDay is a sponsorable calendar date purchased by a donor and
// dedicated to a named individual's memory. At most one purchase exists per
// Hebrew date; the unique index makes concurrent purchases single-winner.
type MemorialDay struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	HebrewDate    string        `json:"hebrewDate" gorm:"size:100;uniqueIndex;not null"`
	GregorianDate time.Time     `json:"gregorianDate" gorm:"not null;index"`
	PurchasedBy   string        `json:"purchasedBy" gorm:"size:255;not null"`
	DedicatedTo   string        `json:"dedicatedTo" gorm:"size:255;not null"`
	Message       string        `json:"message" gorm:"size:1000"`
	PaymentID     string        `json:"paymentId" gorm:"size:100;not null"`
	PaymentStatus PaymentStatus `json:"paymentStatus" gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}
