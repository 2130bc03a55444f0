package recipient

import (
	"context"
	"strings"
	"time"

	"bloodlink/internal/apperr"
	"bloodlink/internal/domain"
)

// Service coordinates recipient business logic and orchestrates repository calls.
type Service struct {
	repo             recipientRepository
	operationTimeout time.Duration
}

// NewService creates and configures a recipient Service.
func NewService(r recipientRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func validateRegister(r *domain.Recipient) error {
	if r == nil {
		return apperr.Invalid
	}
	if strings.TrimSpace(r.Name) == "" {
		return apperr.Invalid
	}
	if !domain.ValidatePhone(r.Phone) {
		return apperr.Invalid
	}
	if !r.BloodGroup.Valid() {
		return apperr.Invalid
	}
	if r.Urgency == "" {
		r.Urgency = domain.UrgencyLow
	}
	if !r.Urgency.Valid() {
		return apperr.Invalid
	}
	return nil
}

// Get retrieves a recipient by its ID.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Recipient, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	r, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, apperr.NotFound
	}
	return r, nil
}

// List returns recipients with optional pagination
func (s *Service) List(ctx context.Context, limit, offset *int) ([]domain.Recipient, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, limit, offset)
}

// Register persists a new recipient and returns its generated ID. New
// recipients start in the waiting status.
func (s *Service) Register(ctx context.Context, r *domain.Recipient) (int64, error) {
	if err := validateRegister(r); err != nil {
		return 0, err
	}
	r.Status = domain.RecipientWaiting
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Create(ctx, r)
}

// UpdateStatus moves a recipient through the donation flow
// (waiting → matched → fulfilled / cancelled). Transitions are driven by the
// caller; the matching core never changes recipient state itself.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.RecipientStatus) error {
	if id <= 0 || !status.Valid() {
		return apperr.Invalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound
	}
	return nil
}
