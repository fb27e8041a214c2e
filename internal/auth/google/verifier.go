package google

import (
	"context"
	"errors"
	"fmt"

	"github.com/reach-workshop/backend/internal/domain"
	"google.golang.org/api/idtoken"
)

var ErrInvalidIDToken = errors.New("google id token validation failed")

// Verifier exchanges a Google-issued ID token for the caller's identity.
// Handler tests swap it for a stub.
type Verifier interface {
	Verify(ctx context.Context, token string) (domain.Identity, error)
}

type verifier struct {
	audience  string
	validator *idtoken.Validator
}

func NewVerifier(ctx context.Context, audience string) (Verifier, error) {
	if audience == "" {
		return nil, errors.New("empty google audience")
	}

	v, err := idtoken.NewValidator(ctx)
	if err != nil {
		return nil, fmt.Errorf("create idtoken validator: %w", err)
	}

	return &verifier{audience: audience, validator: v}, nil
}

func (v *verifier) Verify(ctx context.Context, token string) (domain.Identity, error) {
	payload, err := v.validator.Validate(ctx, token, v.audience)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %s", ErrInvalidIDToken, err)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return domain.Identity{}, fmt.Errorf("%w: token carries no email claim", ErrInvalidIDToken)
	}

	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return domain.Identity{}, fmt.Errorf("%w: email is not verified", ErrInvalidIDToken)
	}

	return domain.Identity{
		UID:   payload.Subject,
		Email: email,
	}, nil
}
