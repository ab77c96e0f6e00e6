package model

import "time"

// Event is a community event shown on the public site (classes, celebrations).
type Event struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Date        time.Time `json:"date" gorm:"not null;index"`
	Type        string    `json:"type" gorm:"size:20;not null;default:'special'"` // weekly|monthly|special
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
