package urgent

import (
	"context"
	"fmt"

	"bloodlink/internal/domain"
	"bloodlink/internal/logx"
)

// Processor turns urgent-need events into donor alerts. Events for unknown
// recipients are skipped, not failed: the topic may outlive a recipient.
type Processor struct {
	recipients recipientStore
	alerts     alertSender
	logger     logx.Logger
}

// NewProcessor creates a new urgent.Processor
func NewProcessor(recipients recipientStore, alerts alertSender, logger logx.Logger) *Processor {
	return &Processor{recipients: recipients, alerts: alerts, logger: logger}
}

// Handle processes a single urgent-need event. The alert targets every
// blood group that can donate to the recipient, so the broadcast reaches
// all donors whose blood the recipient can actually receive.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	if e.RecipientID <= 0 {
		p.logger.Warn("urgent event without recipient id skipped")
		return nil
	}

	recipient, err := p.recipients.Get(ctx, e.RecipientID)
	if err != nil {
		return fmt.Errorf("resolve recipient %d: %w", e.RecipientID, err)
	}
	if recipient == nil {
		p.logger.Warn("urgent event for unknown recipient skipped",
			logx.Int64("recipient_id", e.RecipientID),
		)
		return nil
	}

	urgency := domain.UrgencyLevel(e.Urgency)
	if !urgency.Valid() {
		urgency = recipient.Urgency
	}

	message := e.Message
	if message == "" {
		message = fmt.Sprintf("Urgent need: %s blood for a recipient at risk", recipient.BloodGroup)
	}

	spec := domain.AlertSpec{
		Message:      message,
		Urgency:      urgency,
		TargetGroups: domain.DonorGroupsFor(recipient.BloodGroup),
	}

	alert, report, err := p.alerts.Send(ctx, spec)
	if err != nil {
		return fmt.Errorf("send alert for recipient %d: %w", e.RecipientID, err)
	}

	p.logger.Info("urgent event processed",
		logx.String("event", "urgent_alert_sent"),
		logx.Int64("recipient_id", recipient.ID),
		logx.String("alert_id", alert.ID),
		logx.Int("delivered", report.Delivered),
	)
	return nil
}
