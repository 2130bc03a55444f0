package alerting

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"bloodlink/internal/apperr"
	"bloodlink/internal/domain"
	"bloodlink/internal/gateway/notify"
	"bloodlink/internal/logx"

	"github.com/google/uuid"
)

// Service creates urgent-need alerts and fans them out to eligible donors.
type Service struct {
	donors        donorStore
	alerts        alertStore
	gateway       notifier
	logger        logx.Logger
	alertsSent    counter
	notifyTimeout time.Duration
	now           func() time.Time
	newID         func() string
}

// NewService creates and configures an alerting Service.
func NewService(donors donorStore, alerts alertStore, gateway notifier, logger logx.Logger, alertsSent counter, notifyTimeout time.Duration) *Service {
	if notifyTimeout <= 0 {
		notifyTimeout = 3 * time.Second
	}
	return &Service{
		donors:        donors,
		alerts:        alerts,
		gateway:       gateway,
		logger:        logger,
		alertsSent:    alertsSent,
		notifyTimeout: notifyTimeout,
		now:           func() time.Time { return time.Now().UTC() },
		newID:         func() string { return uuid.NewString() },
	}
}

func validateSpec(spec domain.AlertSpec) error {
	if strings.TrimSpace(spec.Message) == "" {
		return apperr.Invalid
	}
	if !spec.Urgency.Valid() {
		return apperr.Invalid
	}
	if len(spec.TargetGroups) == 0 {
		return apperr.Invalid
	}
	for _, g := range spec.TargetGroups {
		if !g.Valid() {
			return apperr.Invalid
		}
	}
	return nil
}

// Send persists a new alert and notifies every active donor whose blood
// group is in the target set. Eligibility is literal set membership, not the
// donation compatibility table: an alert for O- donors goes to O- donors
// only. The alert is saved before fanout; a persistence failure aborts the
// whole operation, an individual notify failure only lowers the delivered
// count.
func (s *Service) Send(ctx context.Context, spec domain.AlertSpec) (*domain.Alert, domain.DeliveryReport, error) {
	if err := validateSpec(spec); err != nil {
		return nil, domain.DeliveryReport{}, err
	}

	alert := &domain.Alert{
		ID:           s.newID(),
		Message:      spec.Message,
		Urgency:      spec.Urgency,
		TargetGroups: append([]domain.BloodGroup(nil), spec.TargetGroups...),
		IsActive:     true,
		CreatedAt:    s.now(),
	}
	if err := s.alerts.Insert(ctx, alert); err != nil {
		return nil, domain.DeliveryReport{}, fmt.Errorf("persist alert: %w", err)
	}

	pool, err := s.donors.ListActive(ctx)
	if err != nil {
		return nil, domain.DeliveryReport{}, fmt.Errorf("list donors: %w", err)
	}

	eligible := make([]domain.Donor, 0, len(pool))
	for _, d := range pool {
		if d.IsActive && spec.Targets(d.BloodGroup) {
			eligible = append(eligible, d)
		}
	}

	report := s.fanout(ctx, alert, eligible)

	if s.alertsSent != nil {
		s.alertsSent.Inc()
	}
	s.logger.Info("alert sent",
		logx.String("event", "alert_sent"),
		logx.String("alert_id", alert.ID),
		logx.String("urgency", string(alert.Urgency)),
		logx.Int("eligible", report.Eligible),
		logx.Int("delivered", report.Delivered),
		logx.Int("failed", report.Failed),
	)

	return alert, report, nil
}

// fanout notifies each eligible donor exactly once, in parallel. Every
// attempt gets its own timeout so one slow endpoint cannot stall the batch,
// and failures never cancel the sibling deliveries.
func (s *Service) fanout(ctx context.Context, alert *domain.Alert, eligible []domain.Donor) domain.DeliveryReport {
	payload := notify.Payload{
		AlertID: alert.ID,
		Message: alert.Message,
		Urgency: string(alert.Urgency),
	}

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		failed int
	)
	for _, donor := range eligible {
		wg.Add(1)
		go func(donor domain.Donor) {
			defer wg.Done()

			notifyCtx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
			defer cancel()

			if err := s.gateway.Notify(notifyCtx, donor.ID, payload); err != nil {
				mu.Lock()
				failed++
				mu.Unlock()
				s.logger.Warn("alert delivery failed",
					logx.String("alert_id", alert.ID),
					logx.Int64("donor_id", donor.ID),
					logx.Err(fmt.Errorf("%w: %w", apperr.DeliveryFailed, err)),
				)
			}
		}(donor)
	}
	wg.Wait()

	return domain.DeliveryReport{
		Eligible:  len(eligible),
		Delivered: len(eligible) - failed,
		Failed:    failed,
	}
}

// List returns all persisted alerts.
func (s *Service) List(ctx context.Context) ([]domain.Alert, error) {
	return s.alerts.List(ctx)
}

// Deactivate closes an alert.
func (s *Service) Deactivate(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperr.Invalid
	}
	ok, err := s.alerts.Deactivate(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound
	}
	return nil
}
