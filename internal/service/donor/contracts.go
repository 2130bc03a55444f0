package donor

import (
	"context"

	"bloodlink/internal/domain"
)

// donorRepository defines storage operations required by the business layer.
type donorRepository interface {
	Get(ctx context.Context, id int64) (*domain.Donor, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Donor, error)
	Create(ctx context.Context, d *domain.Donor) (int64, error)
	UpdatePartial(ctx context.Context, u domain.PartialDonorUpdate) (bool, error)
}
