package service

import (
	"context"
	"fmt"
	"time"

	"shul/internal/model"
	"shul/internal/repository"
)

// EventInput carries the validated fields of a create/update request.
type EventInput struct {
	Title       string
	Description string
	Date        time.Time
	Type        string
}

// EventService manages community events.
type EventService interface {
	List(ctx context.Context) ([]model.Event, error)
	Create(ctx context.Context, in EventInput) (*model.Event, error)
	Update(ctx context.Context, id uint, in EventInput) (*model.Event, error)
	Delete(ctx context.Context, id uint) error
}

type eventService struct {
	events repository.EventRepository
}

// NewEventService creates a new event service.
func NewEventService(events repository.EventRepository) EventService {
	return &eventService{events: events}
}

func (s *eventService) List(ctx context.Context) ([]model.Event, error) {
	return s.events.ListUpcoming(ctx)
}

func (s *eventService) Create(ctx context.Context, in EventInput) (*model.Event, error) {
	event := &model.Event{
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		Type:        in.Type,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) Update(ctx context.Context, id uint, in EventInput) (*model.Event, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	event.Title = in.Title
	event.Description = in.Description
	event.Date = in.Date
	event.Type = in.Type

	if err := s.events.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, id uint) error {
	return s.events.Delete(ctx, id)
}
