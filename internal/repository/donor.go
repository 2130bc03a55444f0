package repository

import (
	"context"
	"fmt"

	"bloodlink/internal/apperr"
	"bloodlink/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

const donorColumns = `id, user_id, hospital_id, name, phone, blood_group,
	latitude, longitude, is_active, verification_status, last_updated`

// DonorRepo represents donor repository.
type DonorRepo struct{ db *pgxpool.Pool }

// NewDonorRepo creates a new DonorRepo.
func NewDonorRepo(db *pgxpool.Pool) *DonorRepo { return &DonorRepo{db: db} }

func scanDonor(row interface{ Scan(...any) error }) (*domain.Donor, error) {
	var d domain.Donor
	err := row.Scan(&d.ID, &d.UserID, &d.HospitalID, &d.Name, &d.Phone, &d.BloodGroup,
		&d.Latitude, &d.Longitude, &d.IsActive, &d.VerificationStatus, &d.LastUpdated)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Get - returns donor by its ID.
func (r *DonorRepo) Get(ctx context.Context, id int64) (*domain.Donor, error) {
	d, err := scanDonor(r.db.QueryRow(ctx,
		`SELECT `+donorColumns+` FROM donors WHERE id=$1`, id,
	))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get donor %d: %w", id, err)
	}
	return d, nil
}

// List returns donors ordered by id. If limit/offset are nil, returns the full list.
func (r *DonorRepo) List(ctx context.Context, limit, offset *int) ([]domain.Donor, error) {
	q := `SELECT ` + donorColumns + ` FROM donors ORDER BY id`
	args := make([]any, 0, 2)
	if limit != nil {
		q += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, *limit)
	}
	if offset != nil {
		q += fmt.Sprintf(" OFFSET $%d", len(args)+1)
		args = append(args, *offset)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Donor
	for rows.Next() {
		d, err := scanDonor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

// ListActive returns all active donors ordered by id. The matching and
// fanout services work from this pool snapshot.
func (r *DonorRepo) ListActive(ctx context.Context) ([]domain.Donor, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+donorColumns+` FROM donors WHERE is_active ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Donor
	for rows.Next() {
		d, err := scanDonor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

// Create inserts a donor and returns the generated ID.
func (r *DonorRepo) Create(ctx context.Context, d *domain.Donor) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
        INSERT INTO donors (user_id, hospital_id, name, phone, blood_group,
            latitude, longitude, is_active, verification_status, last_updated)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
        RETURNING id
    `, d.UserID, d.HospitalID, d.Name, d.Phone, string(d.BloodGroup),
		d.Latitude, d.Longitude, d.IsActive, string(d.VerificationStatus),
	).Scan(&id)
	if err != nil {
		if IsDuplicate(err) {
			return 0, apperr.Conflict
		}
		return 0, fmt.Errorf("create donor: %w", err)
	}
	return id, nil
}

// UpdatePartial applies the non-nil fields of u and bumps last_updated.
// It returns true if a row was updated.
func (r *DonorRepo) UpdatePartial(ctx context.Context, u domain.PartialDonorUpdate) (bool, error) {
	q := `UPDATE donors SET last_updated = now()`
	args := make([]any, 0, 8)

	add := func(col string, v any) {
		args = append(args, v)
		q += fmt.Sprintf(", %s = $%d", col, len(args))
	}

	if u.Name != nil {
		add("name", *u.Name)
	}
	if u.Phone != nil {
		add("phone", *u.Phone)
	}
	if u.BloodGroup != nil {
		add("blood_group", string(*u.BloodGroup))
	}
	if u.Latitude != nil {
		add("latitude", *u.Latitude)
	}
	if u.Longitude != nil {
		add("longitude", *u.Longitude)
	}
	if u.IsActive != nil {
		add("is_active", *u.IsActive)
	}
	if u.VerificationStatus != nil {
		add("verification_status", string(*u.VerificationStatus))
	}

	args = append(args, u.ID)
	q += fmt.Sprintf(" WHERE id = $%d", len(args))

	ct, err := r.db.Exec(ctx, q, args...)
	if err != nil {
		if IsDuplicate(err) {
			return false, apperr.Conflict
		}
		return false, fmt.Errorf("update donor %d: %w", u.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}
