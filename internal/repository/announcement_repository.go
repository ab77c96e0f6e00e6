package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"shul/internal/model"
)

// AnnouncementRepository defines announcement persistence operations.
type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *model.Announcement) error
	Update(ctx context.Context, announcement *model.Announcement) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Announcement, error)
	ListAll(ctx context.Context) ([]model.Announcement, error)
	ListActive(ctx context.Context, now time.Time) ([]model.Announcement, error)
}

type announcementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates a new announcement repository.
func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) Create(ctx context.Context, announcement *model.Announcement) error {
	return r.db.WithContext(ctx).Create(announcement).Error
}

func (r *announcementRepository) Update(ctx context.Context, announcement *model.Announcement) error {
	return r.db.WithContext(ctx).Save(announcement).Error
}

func (r *announcementRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Announcement{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return translateNotFound(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *announcementRepository) FindByID(ctx context.Context, id uint) (*model.Announcement, error) {
	var announcement model.Announcement
	if err := r.db.WithContext(ctx).First(&announcement, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &announcement, nil
}

func (r *announcementRepository) ListAll(ctx context.Context) ([]model.Announcement, error) {
	var announcements []model.Announcement
	if err := r.db.WithContext(ctx).Order("start_date DESC").Find(&announcements).Error; err != nil {
		return nil, err
	}
	return announcements, nil
}

// ListActive returns announcements that are switched on and whose date window
// contains now, newest first.
func (r *announcementRepository) ListActive(ctx context.Context, now time.Time) ([]model.Announcement, error) {
	var announcements []model.Announcement
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, now, now).
		Order("start_date DESC").
		Find(&announcements).Error
	if err != nil {
		return nil, err
	}
	return announcements, nil
}
