package model

import "time"

// Announcement is a dated notice shown on the public site while it is active
// and the current date falls inside [StartDate, EndDate].
type Announcement struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	StartDate time.Time `json:"startDate" gorm:"not null;index"`
	EndDate   time.Time `json:"endDate" gorm:"not null;index"`
	IsActive  bool      `json:"isActive" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
