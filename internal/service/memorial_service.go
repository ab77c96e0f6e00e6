package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "shul/internal/errors"
	"shul/internal/model"
	"shul/internal/repository"
)

// MemorialDayInput carries a purchase request from the memorial page.
type MemorialDayInput struct {
	HebrewDate    string
	GregorianDate time.Time
	PurchasedBy   string
	DedicatedTo   string
	Message       string
	PaymentID     string
}

// MemorialService manages sponsored memorial days.
type MemorialService interface {
	List(ctx context.Context) ([]model.MemorialDay, error)
	Purchase(ctx context.Context, in MemorialDayInput) (*model.MemorialDay, error)
}

type memorialService struct {
	memorialDays repository.MemorialDayRepository
}

// NewMemorialService creates a new memorial day service.
func NewMemorialService(memorialDays repository.MemorialDayRepository) MemorialService {
	return &memorialService{memorialDays: memorialDays}
}

func (s *memorialService) List(ctx context.Context) ([]model.MemorialDay, error) {
	return s.memorialDays.ListAll(ctx)
}

// Purchase records a memorial day. The pre-check gives a fast answer for the
// common case; the unique index on hebrew_date is what actually guarantees a
// single winner when two purchases race.
func (s *memorialService) Purchase(ctx context.Context, in MemorialDayInput) (*model.MemorialDay, error) {
	existing, err := s.memorialDays.FindByHebrewDate(ctx, in.HebrewDate)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("check memorial day: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrDayAlreadyPurchased
	}

	day := &model.MemorialDay{
		HebrewDate:    in.HebrewDate,
		GregorianDate: in.GregorianDate,
		PurchasedBy:   in.PurchasedBy,
		DedicatedTo:   in.DedicatedTo,
		Message:       in.Message,
		PaymentID:     in.PaymentID,
		// Set optimistically at creation time; there is no asynchronous
		// reconciliation against the provider.
		PaymentStatus: model.PaymentStatusCompleted,
	}
	if err := s.memorialDays.Create(ctx, day); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDayAlreadyPurchased
		}
		return nil, fmt.Errorf("create memorial day: %w", err)
	}
	return day, nil
}
