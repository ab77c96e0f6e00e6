package model

import (
	"time"

	"gorm.io/gorm"
)

// ImageCategory groups gallery images. Deleting a category cascades to its
// images and their backing files.
type ImageCategory struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Description *string   `json:"description" gorm:"size:500"`
	Images      []Image   `json:"images" gorm:"foreignKey:CategoryID"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Image is a gallery photo stored on disk under the static uploads directory.
// DisplayOrder orders images within a category; ties fall back to insertion
// order. The soft-delete column marks a row while its backing file is being
// removed, so a crash between the two steps leaves no row pointing at a
// missing file.
type Image struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Title        string         `json:"title" gorm:"size:255;not null"`
	Description  string         `json:"description" gorm:"size:500"`
	URL          string         `json:"url" gorm:"size:512;not null"`
	CategoryID   uint           `json:"categoryId" gorm:"not null;index"`
	DisplayOrder int            `json:"displayOrder" gorm:"not null;default:0"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}
