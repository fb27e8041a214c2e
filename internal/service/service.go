package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/reach-workshop/backend/internal/config"
	"github.com/reach-workshop/backend/internal/domain"
	"github.com/reach-workshop/backend/internal/repository"
	"github.com/reach-workshop/backend/pkg/pdf"
)

type Services struct {
	Registrations Registrations
	Tickets       Tickets
}

// Notifier delivers fire-and-forget messages to the organizers. Failures are
// logged by callers and never affect the triggering request.
type Notifier interface {
	RegistrationReceived(ctx context.Context, registration domain.Registration) error
	ContactMessage(ctx context.Context, name, email, message string) error
}

// TicketRenderer turns ticket data into the downloadable PDF artifact.
type TicketRenderer interface {
	Render(data pdf.TicketData) ([]byte, error)
}

type Deps struct {
	Config   *config.Config
	Repos    *repository.Repositories
	Notifier Notifier
	Renderer TicketRenderer
	Redis    redis.UniversalClient
}

func NewServices(deps Deps) *Services {
	return &Services{
		Registrations: newRegistrationService(deps.Repos.Registrations, deps.Notifier),
		Tickets:       newTicketService(deps.Repos.Registrations, deps.Renderer, deps.Redis, deps.Config.Workshop),
	}
}

type Registrations interface {
	Submit(ctx context.Context, identity domain.Identity, input SubmitInput) (*domain.Registration, error)
	Lookup(ctx context.Context, email string) (*StatusResult, error)
	List(ctx context.Context) ([]domain.Registration, error)
	SetPaymentConfirmed(ctx context.Context, id uuid.UUID, confirmed bool) (*domain.Registration, error)
	SendContactMessage(ctx context.Context, name, email, message string) error
}

type Tickets interface {
	FindByCode(ctx context.Context, code string) (*domain.Registration, error)
	Render(ctx context.Context, email string) (*TicketArtifact, error)
	VerificationURL(registration domain.Registration) string
}
