package recipient

import (
	"context"

	"bloodlink/internal/domain"
)

// recipientRepository defines storage operations required by the business layer.
type recipientRepository interface {
	Get(ctx context.Context, id int64) (*domain.Recipient, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Recipient, error)
	Create(ctx context.Context, r *domain.Recipient) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RecipientStatus) (bool, error)
}
