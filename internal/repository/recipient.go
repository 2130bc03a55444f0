package repository

import (
	"context"
	"fmt"

	"bloodlink/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

const recipientColumns = `id, user_id, hospital_id, name, phone, blood_group,
	urgency, status, latitude, longitude, registration_date`

// RecipientRepo represents recipient repository.
type RecipientRepo struct{ db *pgxpool.Pool }

// NewRecipientRepo creates a new RecipientRepo.
func NewRecipientRepo(db *pgxpool.Pool) *RecipientRepo { return &RecipientRepo{db: db} }

func scanRecipient(row interface{ Scan(...any) error }) (*domain.Recipient, error) {
	var rec domain.Recipient
	err := row.Scan(&rec.ID, &rec.UserID, &rec.HospitalID, &rec.Name, &rec.Phone,
		&rec.BloodGroup, &rec.Urgency, &rec.Status, &rec.Latitude, &rec.Longitude,
		&rec.RegistrationDate)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Get - returns recipient by its ID. Absent recipient yields (nil, nil).
func (r *RecipientRepo) Get(ctx context.Context, id int64) (*domain.Recipient, error) {
	rec, err := scanRecipient(r.db.QueryRow(ctx,
		`SELECT `+recipientColumns+` FROM recipients WHERE id=$1`, id,
	))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recipient %d: %w", id, err)
	}
	return rec, nil
}

// List returns recipients ordered by id. If limit/offset are nil, returns the full list.
func (r *RecipientRepo) List(ctx context.Context, limit, offset *int) ([]domain.Recipient, error) {
	q := `SELECT ` + recipientColumns + ` FROM recipients ORDER BY id`
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

	var out []domain.Recipient
	for rows.Next() {
		rec, err := scanRecipient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

// Create inserts a recipient and returns the generated ID.
func (r *RecipientRepo) Create(ctx context.Context, rec *domain.Recipient) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
        INSERT INTO recipients (user_id, hospital_id, name, phone, blood_group,
            urgency, status, latitude, longitude, registration_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
        RETURNING id
    `, rec.UserID, rec.HospitalID, rec.Name, rec.Phone, string(rec.BloodGroup),
		string(rec.Urgency), string(rec.Status), rec.Latitude, rec.Longitude,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create recipient: %w", err)
	}
	return id, nil
}

// UpdateStatus moves a recipient to a new status. It returns true if a row was updated.
func (r *RecipientRepo) UpdateStatus(ctx context.Context, id int64, status domain.RecipientStatus) (bool, error) {
	ct, err := r.db.Exec(ctx,
		`UPDATE recipients SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return false, fmt.Errorf("update recipient status %d: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}
