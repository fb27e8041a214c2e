package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/reach-workshop/backend/internal/config"
	"github.com/reach-workshop/backend/internal/domain"
	"github.com/reach-workshop/backend/internal/repository"
	"github.com/reach-workshop/backend/pkg/logger"
	"github.com/reach-workshop/backend/pkg/pdf"
	"go.uber.org/zap"
)

const (
	codeIndexPrefix = "ticket:code:"
	codeIndexTTL    = 30 * 24 * time.Hour
)

type ticketService struct {
	repo     repository.Registrations
	renderer TicketRenderer
	redis    redis.UniversalClient
	workshop config.WorkshopConfig
}

func newTicketService(repo repository.Registrations, renderer TicketRenderer, redisClient redis.UniversalClient, workshop config.WorkshopConfig) *ticketService {
	return &ticketService{
		repo:     repo,
		renderer: renderer,
		redis:    redisClient,
		workshop: workshop,
	}
}

func (s *ticketService) VerificationURL(registration domain.Registration) string {
	return fmt.Sprintf("%s/verify-ticket/%s", s.workshop.BaseURL, domain.VerificationCode(registration))
}

// FindByCode resolves the registration whose derived code matches the
// supplied one. The redis code index answers repeat lookups directly; on a
// cold index the collection is scanned and the hit backfilled, so codes from
// tickets issued before the index existed still verify.
func (s *ticketService) FindByCode(ctx context.Context, code string) (*domain.Registration, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != domain.VerificationCodeLength {
		return nil, ErrTicketNotFound
	}

	if registration := s.findIndexed(ctx, code); registration != nil {
		return registration, nil
	}

	registrations, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load registrations for verification: %w", err)
	}

	for i := range registrations {
		if domain.VerifyCode(code, registrations[i]) {
			s.indexCode(ctx, code, registrations[i].ID)
			return &registrations[i], nil
		}
	}

	return nil, ErrTicketNotFound
}

func (s *ticketService) findIndexed(ctx context.Context, code string) *domain.Registration {
	if s.redis == nil {
		return nil
	}

	idStr, err := s.redis.Get(ctx, codeIndexPrefix+code).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("ticket code index read failed", zap.Error(err))
		}
		return nil
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil
	}

	registration, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil
	}

	// The index is advisory; the derived code is always recomputed so a
	// stale entry can never validate the wrong record.
	if !domain.VerifyCode(code, *registration) {
		return nil
	}

	return registration
}

func (s *ticketService) indexCode(ctx context.Context, code string, id uuid.UUID) {
	if s.redis == nil {
		return
	}

	if err := s.redis.Set(ctx, codeIndexPrefix+code, id.String(), codeIndexTTL).Err(); err != nil {
		logger.Warn("ticket code index write failed", zap.Error(err))
	}
}

type TicketArtifact struct {
	FileName string
	Content  []byte
}

var fileNameSpaces = regexp.MustCompile(`\s+`)

// Render produces the downloadable ticket PDF for the registration matching
// the given email. The artifact carries the payment status as-is; a pending
// registration still renders, clearly marked PENDING.
func (s *ticketService) Render(ctx context.Context, email string) (*TicketArtifact, error) {
	registration, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("load registration for ticket: %w", err)
	}

	code := domain.VerificationCode(*registration)
	content, err := s.renderer.Render(pdf.TicketData{
		Registration:     *registration,
		EventName:        s.workshop.EventName,
		EventDates:       s.workshop.EventDates,
		Venue:            s.workshop.Venue,
		VenueAddress:     s.workshop.VenueAddress,
		Organizer:        s.workshop.Organizer,
		Tagline:          s.workshop.Tagline,
		VerificationCode: code,
		VerificationURL:  s.VerificationURL(*registration),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTicketRender, err)
	}

	s.indexCode(ctx, code, registration.ID)

	return &TicketArtifact{
		FileName: fmt.Sprintf("REACH-Workshop-Ticket-%s.pdf", fileNameSpaces.ReplaceAllString(registration.FullName, "-")),
		Content:  content,
	}, nil
}
