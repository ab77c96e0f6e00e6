package model

import "time"

// ContactStatus tracks manual handling of a contact-form message.
type ContactStatus string

const (
	ContactStatusPending ContactStatus = "pending"
	ContactStatusHandled ContactStatus = "handled"
)

// Contact is a message from the public contact form. Rows are write-once via
// the API; status transitions happen out of band.
type Contact struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	Name      string        `json:"name" gorm:"size:100;not null"`
	Email     string        `json:"email" gorm:"size:255;not null"`
	Message   string        `json:"message" gorm:"type:text;not null"`
	Status    ContactStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
