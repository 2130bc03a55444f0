//go:generate mockgen -source=contracts.go -destination=alerting_mocks_test.go -package=alerting

package alerting

import (
	"context"

	"bloodlink/internal/domain"
	"bloodlink/internal/gateway/notify"
)

// donorStore supplies the candidate donor pool for fanout.
type donorStore interface {
	ListActive(ctx context.Context) ([]domain.Donor, error)
}

// alertStore persists alert records.
type alertStore interface {
	Insert(ctx context.Context, a *domain.Alert) error
	List(ctx context.Context) ([]domain.Alert, error)
	Deactivate(ctx context.Context, id string) (bool, error)
}

// notifier is the delivery capability, one call per eligible donor.
type notifier interface {
	Notify(ctx context.Context, donorID int64, p notify.Payload) error
}

type counter interface {
	Inc()
}
