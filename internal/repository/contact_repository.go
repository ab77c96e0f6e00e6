package repository

import (
	"context"

	"gorm.io/gorm"

	"shul/internal/model"
)

// ContactRepository defines contact message persistence operations. Messages
// are write-once from the public form; status changes happen out of band.
type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) error
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}
