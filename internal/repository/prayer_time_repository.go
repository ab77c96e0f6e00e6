package repository

import (
	"context"

	"gorm.io/gorm"

	"shul/internal/model"
)

// PrayerTimeRepository defines prayer schedule persistence operations.
type PrayerTimeRepository interface {
	Create(ctx context.Context, prayerTime *model.PrayerTime) error
	Update(ctx context.Context, prayerTime *model.PrayerTime) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.PrayerTime, error)
	List(ctx context.Context, holidayOnly bool) ([]model.PrayerTime, error)
	Count(ctx context.Context) (int64, error)
}

type prayerTimeRepository struct {
	db *gorm.DB
}

// NewPrayerTimeRepository creates a new prayer time repository.
func NewPrayerTimeRepository(db *gorm.DB) PrayerTimeRepository {
	return &prayerTimeRepository{db: db}
}

func (r *prayerTimeRepository) Create(ctx context.Context, prayerTime *model.PrayerTime) error {
	return r.db.WithContext(ctx).Create(prayerTime).Error
}

func (r *prayerTimeRepository) Update(ctx context.Context, prayerTime *model.PrayerTime) error {
	// Save skips nil pointer fields, so clearing DayOfWeek when a prayer
	// becomes a holiday prayer needs an explicit column update.
	return r.db.WithContext(ctx).Model(prayerTime).
		Select("name", "time", "day_of_week", "is_holiday").
		Updates(map[string]interface{}{
			"name":        prayerTime.Name,
			"time":        prayerTime.Time,
			"day_of_week": prayerTime.DayOfWeek,
			"is_holiday":  prayerTime.IsHoliday,
		}).Error
}

func (r *prayerTimeRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.PrayerTime{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return translateNotFound(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *prayerTimeRepository) FindByID(ctx context.Context, id uint) (*model.PrayerTime, error) {
	var prayerTime model.PrayerTime
	if err := r.db.WithContext(ctx).First(&prayerTime, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &prayerTime, nil
}

// List returns the schedule ordered by time ascending; holidayOnly narrows it
// to holiday prayers.
func (r *prayerTimeRepository) List(ctx context.Context, holidayOnly bool) ([]model.PrayerTime, error) {
	var prayerTimes []model.PrayerTime
	q := r.db.WithContext(ctx)
	if holidayOnly {
		q = q.Where("is_holiday = ?", true)
	}
	if err := q.Order("time ASC").Find(&prayerTimes).Error; err != nil {
		return nil, err
	}
	return prayerTimes, nil
}

func (r *prayerTimeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.PrayerTime{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
