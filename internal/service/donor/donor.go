package donor

import (
	"context"
	"strings"
	"time"

	"bloodlink/internal/apperr"
	"bloodlink/internal/domain"
)

// Service coordinates donor business logic and orchestrates repository calls.
type Service struct {
	repo             donorRepository
	operationTimeout time.Duration
}

// NewService creates and configures a donor Service.
func NewService(r donorRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// validateRegister validates a donor for registration.
func validateRegister(d *domain.Donor) error {
	if d == nil {
		return apperr.Invalid
	}
	if strings.TrimSpace(d.Name) == "" {
		return apperr.Invalid
	}
	if !domain.ValidatePhone(d.Phone) {
		return apperr.Invalid
	}
	if !d.BloodGroup.Valid() {
		return apperr.Invalid
	}
	if d.VerificationStatus == "" {
		d.VerificationStatus = domain.VerificationPending
	}
	if !d.VerificationStatus.Valid() {
		return apperr.Invalid
	}
	return nil
}

func validateUpdate(u *domain.PartialDonorUpdate) error {
	if u.ID <= 0 {
		return apperr.Invalid
	}
	if u.Name == nil && u.Phone == nil && u.BloodGroup == nil &&
		u.Latitude == nil && u.Longitude == nil && u.IsActive == nil &&
		u.VerificationStatus == nil {
		return apperr.Invalid
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return apperr.Invalid
	}
	if u.Phone != nil && !domain.ValidatePhone(*u.Phone) {
		return apperr.Invalid
	}
	if u.BloodGroup != nil && !u.BloodGroup.Valid() {
		return apperr.Invalid
	}
	if u.VerificationStatus != nil && !u.VerificationStatus.Valid() {
		return apperr.Invalid
	}
	return nil
}

// Get retrieves a donor by its ID.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Donor, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.NotFound
	}
	return d, nil
}

// List returns donors with optional pagination
func (s *Service) List(ctx context.Context, limit, offset *int) ([]domain.Donor, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, limit, offset)
}

// Register persists a new donor and returns its generated ID. New donors
// start active.
func (s *Service) Register(ctx context.Context, d *domain.Donor) (int64, error) {
	if err := validateRegister(d); err != nil {
		return 0, err
	}
	d.IsActive = true
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Create(ctx, d)
}

// UpdatePartial applies a partial update to a donor. Deactivation goes
// through here (IsActive=false); donors are never deleted.
func (s *Service) UpdatePartial(ctx context.Context, u domain.PartialDonorUpdate) (bool, error) {
	if err := validateUpdate(&u); err != nil {
		return false, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.UpdatePartial(ctx, u)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, apperr.NotFound
	}
	return true, nil
}
