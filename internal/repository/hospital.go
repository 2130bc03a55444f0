package repository

import (
	"context"
	"fmt"

	"bloodlink/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// HospitalRepo represents hospital reference data repository.
type HospitalRepo struct{ db *pgxpool.Pool }

// NewHospitalRepo creates a new HospitalRepo.
func NewHospitalRepo(db *pgxpool.Pool) *HospitalRepo { return &HospitalRepo{db: db} }

// List returns hospitals ordered by id.
func (r *HospitalRepo) List(ctx context.Context) ([]domain.Hospital, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, name, address, phone, email, latitude, longitude,
            verification_status, created_at
        FROM hospitals ORDER BY id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Hospital
	for rows.Next() {
		var h domain.Hospital
		if err := rows.Scan(&h.ID, &h.Name, &h.Address, &h.Phone, &h.Email,
			&h.Latitude, &h.Longitude, &h.VerificationStatus, &h.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// Get - returns hospital by its ID.
func (r *HospitalRepo) Get(ctx context.Context, id int64) (*domain.Hospital, error) {
	var h domain.Hospital
	err := r.db.QueryRow(ctx, `
        SELECT id, name, address, phone, email, latitude, longitude,
            verification_status, created_at
        FROM hospitals WHERE id=$1
    `, id).Scan(&h.ID, &h.Name, &h.Address, &h.Phone, &h.Email,
		&h.Latitude, &h.Longitude, &h.VerificationStatus, &h.CreatedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get hospital %d: %w", id, err)
	}
	return &h, nil
}
