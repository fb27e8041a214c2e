package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/reach-workshop/backend/internal/domain"
	"github.com/reach-workshop/backend/internal/repository"
	"github.com/reach-workshop/backend/pkg/logger"
	"go.uber.org/zap"
)

type registrationService struct {
	repo     repository.Registrations
	notifier Notifier
}

func newRegistrationService(repo repository.Registrations, notifier Notifier) *registrationService {
	return &registrationService{
		repo:     repo,
		notifier: notifier,
	}
}

type SubmitInput struct {
	FullName      string
	Phone         string
	Age           int
	Experience    domain.ExperienceLevel
	TransactionID string
}

// Submit creates a registration for the authenticated identity. The email is
// always taken from the identity, never from the form. The friendly duplicate
// check runs first; the unique key on the normalized email column is the
// backstop that makes concurrent double-submission impossible.
func (s *registrationService) Submit(ctx context.Context, identity domain.Identity, input SubmitInput) (*domain.Registration, error) {
	if identity.Email == "" {
		return nil, ErrNotAuthenticated
	}
	if !input.Experience.Valid() {
		return nil, fmt.Errorf("unknown experience level %q", input.Experience)
	}

	existing, err := s.repo.GetByEmail(ctx, identity.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check existing registration: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyRegistered
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate registration id: %w", err)
	}

	registration := &domain.Registration{
		ID:       id,
		FullName: input.FullName,
		Email:    identity.Email,
		UserEmail: sql.NullString{
			String: identity.Email,
			Valid:  true,
		},
		EmailNormalized: domain.NormalizeEmail(identity.Email),
		Phone:           input.Phone,
		Age:             input.Age,
		Experience:      input.Experience,
		TransactionID:   input.TransactionID,
		PaymentConfirmed: false,
		UserID: sql.NullString{
			String: identity.UID,
			Valid:  identity.UID != "",
		},
		// Millisecond precision: the column is DATETIME(3) and the
		// verification code derives from unix millis, so the in-memory
		// value must match what a later read returns.
		CreatedAt: time.Now().Truncate(time.Millisecond),
	}

	if err := s.repo.Create(ctx, registration); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("create registration: %w", err)
	}

	// Fire-and-forget: a failed organizer notification must never roll back
	// the stored registration or fail the response.
	if err := s.notifier.RegistrationReceived(ctx, *registration); err != nil {
		logger.Warn("registration notification enqueue failed",
			zap.String("registration_id", registration.ID.String()),
			zap.Error(err),
		)
	}

	return registration, nil
}

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusPending   Status = "pending"
)

type StatusResult struct {
	Status       Status
	Registration domain.Registration
}

// Lookup classifies the registration for an email address. Matching is
// case-insensitive over both the primary and the legacy email fields.
func (s *registrationService) Lookup(ctx context.Context, email string) (*StatusResult, error) {
	registration, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("lookup registration: %w", err)
	}

	status := StatusPending
	if registration.PaymentConfirmed {
		status = StatusConfirmed
	}

	return &StatusResult{
		Status:       status,
		Registration: *registration,
	}, nil
}

func (s *registrationService) List(ctx context.Context) ([]domain.Registration, error) {
	registrations, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}

	return registrations, nil
}

// SetPaymentConfirmed is the only mutation allowed after creation. The write
// is an unconditional overwrite; concurrent admins race last-write-wins.
func (s *registrationService) SetPaymentConfirmed(ctx context.Context, id uuid.UUID, confirmed bool) (*domain.Registration, error) {
	if err := s.repo.SetPaymentConfirmed(ctx, id, confirmed); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("set payment confirmed: %w", err)
	}

	registration, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("reload registration: %w", err)
	}

	return registration, nil
}

func (s *registrationService) SendContactMessage(ctx context.Context, name, email, message string) error {
	if err := s.notifier.ContactMessage(ctx, name, email, message); err != nil {
		return fmt.Errorf("enqueue contact message: %w", err)
	}

	return nil
}
