package urgent

import (
	"context"

	"bloodlink/internal/domain"
)

// recipientStore resolves the recipient an urgent-need event refers to.
type recipientStore interface {
	Get(ctx context.Context, id int64) (*domain.Recipient, error)
}

// alertSender turns an urgent-need request into a broadcast alert.
type alertSender interface {
	Send(ctx context.Context, spec domain.AlertSpec) (*domain.Alert, domain.DeliveryReport, error)
}
