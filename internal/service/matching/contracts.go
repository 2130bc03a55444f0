//go:generate mockgen -source=contracts.go -destination=matching_mocks_test.go -package=matching

package matching

import (
	"context"

	"bloodlink/internal/domain"
)

// recipientStore resolves the recipient a match search is for.
type recipientStore interface {
	Get(ctx context.Context, id int64) (*domain.Recipient, error)
}

// donorStore supplies the candidate donor pool. The service works from this
// per-call snapshot and never holds donor state of its own.
type donorStore interface {
	ListActive(ctx context.Context) ([]domain.Donor, error)
}

type counter interface {
	Inc()
}
