package repository

import (
	"context"

	"gorm.io/gorm"

	"shul/internal/model"
)

// MemorialDayRepository defines memorial day persistence operations.
type MemorialDayRepository interface {
	Create(ctx context.Context, day *model.MemorialDay) error
	FindByHebrewDate(ctx context.Context, hebrewDate string) (*model.MemorialDay, error)
	ListAll(ctx context.Context) ([]model.MemorialDay, error)
}

type memorialDayRepository struct {
	db *gorm.DB
}

// NewMemorialDayRepository creates a new memorial day repository.
func NewMemorialDayRepository(db *gorm.DB) MemorialDayRepository {
	return &memorialDayRepository{db: db}
}

// Create inserts a purchase. The unique index on hebrew_date makes concurrent
// purchases of the same date fail with gorm.ErrDuplicatedKey for the loser.
func (r *memorialDayRepository) Create(ctx context.Context, day *model.MemorialDay) error {
	return r.db.WithContext(ctx).Create(day).Error
}

func (r *memorialDayRepository) FindByHebrewDate(ctx context.Context, hebrewDate string) (*model.MemorialDay, error) {
	var day model.MemorialDay
	if err := r.db.WithContext(ctx).Where("hebrew_date = ?", hebrewDate).First(&day).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &day, nil
}

func (r *memorialDayRepository) ListAll(ctx context.Context) ([]model.MemorialDay, error) {
	var days []model.MemorialDay
	if err := r.db.WithContext(ctx).Order("gregorian_date ASC").Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}
