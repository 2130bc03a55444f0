package repository

import (
	"context"
	"fmt"

	"bloodlink/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AlertRepo represents alert repository.
type AlertRepo struct{ db *pgxpool.Pool }

// NewAlertRepo creates a new AlertRepo.
func NewAlertRepo(db *pgxpool.Pool) *AlertRepo { return &AlertRepo{db: db} }

// Insert persists a fully built alert. The write is atomic: either the
// alert lands or the caller gets an error, never a partial record.
func (r *AlertRepo) Insert(ctx context.Context, a *domain.Alert) error {
	groups := make([]string, 0, len(a.TargetGroups))
	for _, g := range a.TargetGroups {
		groups = append(groups, string(g))
	}

	_, err := r.db.Exec(ctx, `
        INSERT INTO alerts (id, message, urgency, target_groups, is_active, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, a.ID, a.Message, string(a.Urgency), groups, a.IsActive, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert alert %s: %w", a.ID, err)
	}
	return nil
}

// List returns alerts, newest first.
func (r *AlertRepo) List(ctx context.Context) ([]domain.Alert, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, message, urgency, target_groups, is_active, created_at
        FROM alerts ORDER BY created_at DESC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Alert
	for rows.Next() {
		var a domain.Alert
		var groups []string
		if err := rows.Scan(&a.ID, &a.Message, &a.Urgency, &groups, &a.IsActive, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.TargetGroups = make([]domain.BloodGroup, 0, len(groups))
		for _, g := range groups {
			a.TargetGroups = append(a.TargetGroups, domain.BloodGroup(g))
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Deactivate flips an alert to inactive. It returns true if a row was updated.
func (r *AlertRepo) Deactivate(ctx context.Context, id string) (bool, error) {
	ct, err := r.db.Exec(ctx,
		`UPDATE alerts SET is_active = false WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("deactivate alert %s: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}
