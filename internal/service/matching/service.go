package matching

import (
	"context"
	"fmt"
	"sort"
	"time"

	"bloodlink/internal/domain"
	"bloodlink/internal/logx"

	"github.com/google/uuid"
)

// Service finds compatible active donors for a recipient.
type Service struct {
	recipients       recipientStore
	donors           donorStore
	operationTimeout time.Duration
	logger           logx.Logger
	matches          counter
	now              func() time.Time
	newID            func() string
}

// NewService creates and configures a matching Service.
func NewService(recipients recipientStore, donors donorStore, timeout time.Duration, logger logx.Logger, matches counter) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		recipients:       recipients,
		donors:           donors,
		operationTimeout: timeout,
		logger:           logger,
		matches:          matches,
		now:              func() time.Time { return time.Now().UTC() },
		newID:            func() string { return uuid.NewString() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// FindMatches returns one pending Match per active donor compatible with the
// recipient, ranked by score (ties broken by donor id). An unknown recipient
// yields an empty result, not an error. The search has no side effects:
// matches are returned to the caller, never persisted here.
func (s *Service) FindMatches(ctx context.Context, recipientID int64) ([]domain.Match, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	recipient, err := s.recipients.Get(ctx, recipientID)
	if err != nil {
		return nil, fmt.Errorf("resolve recipient %d: %w", recipientID, err)
	}
	if recipient == nil {
		return []domain.Match{}, nil
	}

	pool, err := s.donors.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list donors: %w", err)
	}

	matches := buildMatches(*recipient, pool, s.now(), s.newID)
	if s.matches != nil {
		for range matches {
			s.matches.Inc()
		}
	}

	s.logger.Info("matches computed",
		logx.String("event", "matches_computed"),
		logx.Int64("recipient_id", recipient.ID),
		logx.String("blood_group", string(recipient.BloodGroup)),
		logx.Int("candidates", len(pool)),
		logx.Int("matches", len(matches)),
	)

	return matches, nil
}

// buildMatches filters the pool to compatible active donors and ranks them.
func buildMatches(recipient domain.Recipient, pool []domain.Donor, now time.Time, newID func() string) []domain.Match {
	matches := make([]domain.Match, 0, len(pool))
	for _, donor := range pool {
		if !donor.IsActive || !domain.CanDonateTo(donor.BloodGroup, recipient.BloodGroup) {
			continue
		}
		matches = append(matches, domain.Match{
			ID:            newID(),
			DonorID:       donor.ID,
			RecipientID:   recipient.ID,
			Score:         matchScore(donor, recipient, now),
			DistanceKm:    domain.DistanceKm(donor.Latitude, donor.Longitude, recipient.Latitude, recipient.Longitude),
			Compatibility: domain.CompatibilityReason(donor.BloodGroup, recipient.BloodGroup),
			Reason: fmt.Sprintf("Blood type compatible - %s can donate to %s",
				donor.BloodGroup, recipient.BloodGroup),
			Status:    domain.MatchPending,
			CreatedAt: now,
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].DonorID < matches[j].DonorID
	})

	return matches
}
