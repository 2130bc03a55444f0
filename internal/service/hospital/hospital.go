// Package hospital exposes read operations over hospital reference data.
package hospital

import (
	"context"
	"fmt"

	"bloodlink/internal/apperr"
	"bloodlink/internal/domain"
)

type store interface {
	Get(ctx context.Context, id int64) (*domain.Hospital, error)
	List(ctx context.Context) ([]domain.Hospital, error)
}

// Service answers hospital lookups.
type Service struct{ store store }

// New creates a hospital Service on top of a store.
func New(store store) *Service { return &Service{store: store} }

// Get returns a hospital by id or apperr.NotFound.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Hospital, error) {
	h, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get hospital %d: %w", id, err)
	}
	if h == nil {
		return nil, fmt.Errorf("hospital %d: %w", id, apperr.NotFound)
	}
	return h, nil
}

// List returns all known hospitals.
func (s *Service) List(ctx context.Context) ([]domain.Hospital, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hospitals: %w", err)
	}
	return list, nil
}
