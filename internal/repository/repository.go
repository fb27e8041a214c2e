package repository

import (
	"context"

	"github.com/reach-workshop/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Registrations Registrations
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Registrations: newRegistrationRepository(db),
	}
}

type Registrations interface {
	Create(ctx context.Context, registration *domain.Registration) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Registration, error)
	GetByEmail(ctx context.Context, email string) (*domain.Registration, error)
	GetAll(ctx context.Context) ([]domain.Registration, error)
	SetPaymentConfirmed(ctx context.Context, id uuid.UUID, confirmed bool) error
}
