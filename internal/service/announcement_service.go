package service

import (
	"context"
	"fmt"
	"time"

	apperrors "shul/internal/errors"
	"shul/internal/model"
	"shul/internal/repository"
)

// AnnouncementInput carries the validated fields of a create/update request.
type AnnouncementInput struct {
	Title     string
	Content   string
	StartDate time.Time
	EndDate   time.Time
	IsActive  bool
}

// AnnouncementService manages dated public notices.
type AnnouncementService interface {
	// ListActive returns announcements currently visible on the public site.
	ListActive(ctx context.Context) ([]model.Announcement, error)
	// ListAll returns every announcement for the admin panel.
	ListAll(ctx context.Context) ([]model.Announcement, error)
	Create(ctx context.Context, in AnnouncementInput) (*model.Announcement, error)
	Update(ctx context.Context, id uint, in AnnouncementInput) (*model.Announcement, error)
	Delete(ctx context.Context, id uint) error
}

type announcementService struct {
	announcements repository.AnnouncementRepository
}

// NewAnnouncementService creates a new announcement service.
func NewAnnouncementService(announcements repository.AnnouncementRepository) AnnouncementService {
	return &announcementService{announcements: announcements}
}

func (s *announcementService) ListActive(ctx context.Context) ([]model.Announcement, error) {
	return s.announcements.ListActive(ctx, time.Now())
}

func (s *announcementService) ListAll(ctx context.Context) ([]model.Announcement, error) {
	return s.announcements.ListAll(ctx)
}

// Create validates the date window before any store write.
func (s *announcementService) Create(ctx context.Context, in AnnouncementInput) (*model.Announcement, error) {
	if err := validateDateWindow(in); err != nil {
		return nil, err
	}

	announcement := &model.Announcement{
		Title:     in.Title,
		Content:   in.Content,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		IsActive:  in.IsActive,
	}
	if err := s.announcements.Create(ctx, announcement); err != nil {
		return nil, fmt.Errorf("create announcement: %w", err)
	}
	return announcement, nil
}

func (s *announcementService) Update(ctx context.Context, id uint, in AnnouncementInput) (*model.Announcement, error) {
	if err := validateDateWindow(in); err != nil {
		return nil, err
	}

	announcement, err := s.announcements.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	announcement.Title = in.Title
	announcement.Content = in.Content
	announcement.StartDate = in.StartDate
	announcement.EndDate = in.EndDate
	announcement.IsActive = in.IsActive

	if err := s.announcements.Update(ctx, announcement); err != nil {
		return nil, fmt.Errorf("update announcement: %w", err)
	}
	return announcement, nil
}

func (s *announcementService) Delete(ctx context.Context, id uint) error {
	return s.announcements.Delete(ctx, id)
}

func validateDateWindow(in AnnouncementInput) error {
	if in.StartDate.After(in.EndDate) {
		return apperrors.NewValidationError("תאריך התחלה חייב להיות לפני תאריך סיום")
	}
	return nil
}
