package service

import (
	"context"
	"fmt"

	"shul/internal/model"
	"shul/internal/repository"
)

// ContactNotifier delivers a contact-form submission to the synagogue inbox.
type ContactNotifier interface {
	SendContactNotification(name, email, message string) error
}

// ContactService stores contact-form messages and notifies the synagogue.
type ContactService interface {
	Submit(ctx context.Context, name, email, message string) (*model.Contact, error)
}

type contactService struct {
	contacts repository.ContactRepository
	notifier ContactNotifier
}

// NewContactService creates a new contact service.
func NewContactService(contacts repository.ContactRepository, notifier ContactNotifier) ContactService {
	return &contactService{contacts: contacts, notifier: notifier}
}

// Submit persists the message, then sends the notification mail. The row
// survives a mail failure; the caller still sees the error.
func (s *contactService) Submit(ctx context.Context, name, email, message string) (*model.Contact, error) {
	contact := &model.Contact{
		Name:    name,
		Email:   email,
		Message: message,
		Status:  model.ContactStatusPending,
	}
	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("save contact: %w", err)
	}

	if err := s.notifier.SendContactNotification(name, email, message); err != nil {
		return nil, fmt.Errorf("notify contact: %w", err)
	}

	return contact, nil
}
