package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/reach-workshop/backend/internal/db"
	"github.com/reach-workshop/backend/internal/domain"
)

type registrationRepository struct {
	db *sqlx.DB
}

func newRegistrationRepository(database *sqlx.DB) *registrationRepository {
	return &registrationRepository{
		db: database,
	}
}

const registrationColumns = "id, full_name, email, user_email, email_normalized, phone, age, experience, transaction_id, payment_confirmed, user_id, created_at"

// Create inserts a new registration. The unique key on email_normalized makes
// this the atomic "insert if absent" that closes the check-then-act race
// between concurrent submissions for the same account.
func (r *registrationRepository) Create(ctx context.Context, registration *domain.Registration) error {
	const query = `INSERT INTO registrations
		(id, full_name, email, user_email, email_normalized, phone, age, experience, transaction_id, payment_confirmed, user_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		registration.ID,
		registration.FullName,
		registration.Email,
		registration.UserEmail,
		registration.EmailNormalized,
		registration.Phone,
		registration.Age,
		registration.Experience,
		registration.TransactionID,
		registration.PaymentConfirmed,
		registration.UserID,
		registration.CreatedAt,
	)
	if err != nil {
		if db.IsDuplicateEntry(err) {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("db insert registration: %w", err)
	}

	return nil
}

func (r *registrationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Registration, error) {
	var registration domain.Registration
	const query = "SELECT " + registrationColumns + " FROM registrations WHERE id = ?"

	if err := r.db.GetContext(ctx, &registration, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select registration by id: %w", err)
	}

	return &registration, nil
}

// GetByEmail resolves a registration by normalized email, matching the legacy
// user_email column as well. If several records match (possible for rows
// imported from the pre-index store) the oldest wins, mirroring the original
// site's first-in-iteration-order behavior.
func (r *registrationRepository) GetByEmail(ctx context.Context, email string) (*domain.Registration, error) {
	var registration domain.Registration
	const query = "SELECT " + registrationColumns + ` FROM registrations
		WHERE email_normalized = ? OR LOWER(user_email) = ?
		ORDER BY created_at ASC LIMIT 1`

	normalized := domain.NormalizeEmail(email)
	if err := r.db.GetContext(ctx, &registration, query, normalized, normalized); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select registration by email: %w", err)
	}

	return &registration, nil
}

func (r *registrationRepository) GetAll(ctx context.Context) ([]domain.Registration, error) {
	registrations := []domain.Registration{}
	const query = "SELECT " + registrationColumns + " FROM registrations ORDER BY created_at DESC"

	if err := r.db.SelectContext(ctx, &registrations, query); err != nil {
		return nil, fmt.Errorf("select registrations: %w", err)
	}

	return registrations, nil
}

// SetPaymentConfirmed overwrites the flag unconditionally; there is no
// optimistic-concurrency guard because confirmation is a manual, low-traffic
// admin action and last-write-wins is acceptable.
func (r *registrationRepository) SetPaymentConfirmed(ctx context.Context, id uuid.UUID, confirmed bool) error {
	const query = "UPDATE registrations SET payment_confirmed = ? WHERE id = ?"

	res, err := r.db.ExecContext(ctx, query, confirmed, id)
	if err != nil {
		return fmt.Errorf("db update payment confirmed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db update payment confirmed rows: %w", err)
	}

	if rows == 0 {
		// MySQL reports zero rows when the value is unchanged, so
		// distinguish a no-op write from a missing record.
		var exists int
		const existsQuery = "SELECT 1 FROM registrations WHERE id = ?"
		if err := r.db.GetContext(ctx, &exists, existsQuery, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("db check registration exists: %w", err)
		}
	}

	return nil
}
