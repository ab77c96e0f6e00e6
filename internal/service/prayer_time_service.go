package service

import (
	"context"
	"fmt"
	"time"

	apperrors "shul/internal/errors"
	"shul/internal/model"
	"shul/internal/repository"
)

// PrayerTimeInput carries the fields of a create/update request. DayOfWeek
// and IsHoliday together select the schedule variant: exactly one of
// {IsHoliday=true, DayOfWeek=nil} or {IsHoliday=false, DayOfWeek in 0..6}
// is accepted.
type PrayerTimeInput struct {
	Name      string
	Time      string // HH:MM
	DayOfWeek *int
	IsHoliday bool
}

// PrayerTimeService manages the prayer schedule.
type PrayerTimeService interface {
	List(ctx context.Context, holidayOnly bool) ([]model.PrayerTime, error)
	Create(ctx context.Context, in PrayerTimeInput) (*model.PrayerTime, error)
	Update(ctx context.Context, id uint, in PrayerTimeInput) (*model.PrayerTime, error)
	Delete(ctx context.Context, id uint) error
}

type prayerTimeService struct {
	prayerTimes repository.PrayerTimeRepository
}

// NewPrayerTimeService creates a new prayer time service.
func NewPrayerTimeService(prayerTimes repository.PrayerTimeRepository) PrayerTimeService {
	return &prayerTimeService{prayerTimes: prayerTimes}
}

func (s *prayerTimeService) List(ctx context.Context, holidayOnly bool) ([]model.PrayerTime, error) {
	return s.prayerTimes.List(ctx, holidayOnly)
}

func (s *prayerTimeService) Create(ctx context.Context, in PrayerTimeInput) (*model.PrayerTime, error) {
	schedule, err := scheduleFromInput(in)
	if err != nil {
		return nil, err
	}

	prayerTime := &model.PrayerTime{
		Name: in.Name,
		Time: in.Time,
	}
	prayerTime.SetSchedule(schedule)

	if err := s.prayerTimes.Create(ctx, prayerTime); err != nil {
		return nil, fmt.Errorf("create prayer time: %w", err)
	}
	return prayerTime, nil
}

func (s *prayerTimeService) Update(ctx context.Context, id uint, in PrayerTimeInput) (*model.PrayerTime, error) {
	schedule, err := scheduleFromInput(in)
	if err != nil {
		return nil, err
	}

	prayerTime, err := s.prayerTimes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	prayerTime.Name = in.Name
	prayerTime.Time = in.Time
	prayerTime.SetSchedule(schedule)

	if err := s.prayerTimes.Update(ctx, prayerTime); err != nil {
		return nil, fmt.Errorf("update prayer time: %w", err)
	}
	return prayerTime, nil
}

func (s *prayerTimeService) Delete(ctx context.Context, id uint) error {
	return s.prayerTimes.Delete(ctx, id)
}

// scheduleFromInput rejects every field combination except the two variants.
func scheduleFromInput(in PrayerTimeInput) (model.Schedule, error) {
	if in.IsHoliday {
		if in.DayOfWeek != nil {
			return model.Schedule{}, apperrors.NewValidationError("תפילת חג אינה משויכת ליום בשבוע")
		}
		return model.HolidaySchedule(), nil
	}

	if in.DayOfWeek == nil {
		return model.Schedule{}, apperrors.NewValidationError("יש לבחור יום בשבוע לתפילה שאינה תפילת חג")
	}
	schedule, err := model.WeekdaySchedule(time.Weekday(*in.DayOfWeek))
	if err != nil {
		return model.Schedule{}, apperrors.NewValidationError("יום בשבוע לא תקין")
	}
	return schedule, nil
}
