package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/reach-workshop/backend/internal/config"
	"github.com/reach-workshop/backend/internal/domain"
	"github.com/reach-workshop/backend/pkg/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRenderer struct {
	RenderFunc func(data pdf.TicketData) ([]byte, error)
}

func (m *mockRenderer) Render(data pdf.TicketData) ([]byte, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(data)
	}
	return []byte("%PDF-1.4"), nil
}

func workshopConfig() config.WorkshopConfig {
	return config.WorkshopConfig{
		EventName:    "REACH - The Best Version of You",
		EventDates:   "August 9th & 10th, 2025",
		Venue:        "Fireflies Intercultural Center",
		VenueAddress: "Kanakapura Road, Kaggalipura, Bengaluru",
		Organizer:    "Vishwa Poornima's",
		Tagline:      "Yoga Centre for Complete Health",
		BaseURL:      "https://reach.example.com",
	}
}

func ticketFixture() domain.Registration {
	return domain.Registration{
		ID:         uuid.MustParse("0190a6ee-0000-7000-8000-000000000001"),
		FullName:   "Asha Rao",
		Email:      "asha@example.com",
		Phone:      "9876543210",
		Age:        28,
		Experience: domain.Beginner,
		CreatedAt:  time.UnixMilli(1722633600000),
	}
}

func TestVerificationURL(t *testing.T) {
	svc := newTicketService(&mockRegistrationsRepo{}, &mockRenderer{}, nil, workshopConfig())

	registration := ticketFixture()
	url := svc.VerificationURL(registration)

	assert.Equal(t, "https://reach.example.com/verify-ticket/"+domain.VerificationCode(registration), url)
}

func TestFindByCode(t *testing.T) {
	t.Run("wrong length", func(t *testing.T) {
		svc := newTicketService(&mockRegistrationsRepo{}, &mockRenderer{}, nil, workshopConfig())

		_, err := svc.FindByCode(context.Background(), "SHORT")
		assert.ErrorIs(t, err, ErrTicketNotFound)
	})

	t.Run("finds match by scanning", func(t *testing.T) {
		target := ticketFixture()
		other := ticketFixture()
		other.ID = uuid.MustParse("11111111-2222-7333-8444-555555555555")

		repo := &mockRegistrationsRepo{
			GetAllFunc: func(ctx context.Context) ([]domain.Registration, error) {
				return []domain.Registration{other, target}, nil
			},
		}
		svc := newTicketService(repo, &mockRenderer{}, nil, workshopConfig())

		found, err := svc.FindByCode(context.Background(), domain.VerificationCode(target))
		require.NoError(t, err)
		assert.Equal(t, target.ID, found.ID)
	})

	t.Run("accepts lower case input", func(t *testing.T) {
		target := ticketFixture()
		repo := &mockRegistrationsRepo{
			GetAllFunc: func(ctx context.Context) ([]domain.Registration, error) {
				return []domain.Registration{target}, nil
			},
		}
		svc := newTicketService(repo, &mockRenderer{}, nil, workshopConfig())

		found, err := svc.FindByCode(context.Background(), strings.ToLower(domain.VerificationCode(target)))
		require.NoError(t, err)
		assert.Equal(t, target.ID, found.ID)
	})

	t.Run("no match", func(t *testing.T) {
		repo := &mockRegistrationsRepo{
			GetAllFunc: func(ctx context.Context) ([]domain.Registration, error) {
				return []domain.Registration{ticketFixture()}, nil
			},
		}
		svc := newTicketService(repo, &mockRenderer{}, nil, workshopConfig())

		_, err := svc.FindByCode(context.Background(), "AAAAAAAAAAAA")
		assert.ErrorIs(t, err, ErrTicketNotFound)
	})
}

func TestRenderTicket(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		repo := &mockRegistrationsRepo{
			GetByEmailFunc: func(ctx context.Context, email string) (*domain.Registration, error) {
				return nil, domain.ErrNotFound
			},
		}
		svc := newTicketService(repo, &mockRenderer{}, nil, workshopConfig())

		_, err := svc.Render(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, ErrRegistrationNotFound)
	})

	t.Run("renderer failure", func(t *testing.T) {
		registration := ticketFixture()
		repo := &mockRegistrationsRepo{
			GetByEmailFunc: func(ctx context.Context, email string) (*domain.Registration, error) {
				return &registration, nil
			},
		}
		renderer := &mockRenderer{
			RenderFunc: func(data pdf.TicketData) ([]byte, error) {
				return nil, errors.New("no font")
			},
		}
		svc := newTicketService(repo, renderer, nil, workshopConfig())

		_, err := svc.Render(context.Background(), registration.Email)
		assert.ErrorIs(t, err, ErrTicketRender)
	})

	t.Run("renders artifact", func(t *testing.T) {
		registration := ticketFixture()
		repo := &mockRegistrationsRepo{
			GetByEmailFunc: func(ctx context.Context, email string) (*domain.Registration, error) {
				return &registration, nil
			},
		}
		var rendered pdf.TicketData
		renderer := &mockRenderer{
			RenderFunc: func(data pdf.TicketData) ([]byte, error) {
				rendered = data
				return []byte("%PDF-1.4"), nil
			},
		}
		svc := newTicketService(repo, renderer, nil, workshopConfig())

		artifact, err := svc.Render(context.Background(), registration.Email)
		require.NoError(t, err)

		assert.Equal(t, "REACH-Workshop-Ticket-Asha-Rao.pdf", artifact.FileName)
		assert.Equal(t, []byte("%PDF-1.4"), artifact.Content)
		assert.Equal(t, domain.VerificationCode(registration), rendered.VerificationCode)
		assert.Equal(t, "REACH - The Best Version of You", rendered.EventName)
		assert.Contains(t, rendered.VerificationURL, "/verify-ticket/")
	})
}
