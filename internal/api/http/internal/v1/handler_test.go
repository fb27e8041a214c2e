package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/reach-workshop/backend/internal/config"
	"github.com/reach-workshop/backend/internal/domain"
	"github.com/reach-workshop/backend/internal/service"
	"github.com/reach-workshop/backend/pkg/auth"
	"github.com/reach-workshop/backend/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	identity domain.Identity
	err      error
}

func (s *stubVerifier) Verify(ctx context.Context, token string) (domain.Identity, error) {
	if s.err != nil {
		return domain.Identity{}, s.err
	}
	return s.identity, nil
}

var _ service.Registrations = &mockRegistrationsService{}

type mockRegistrationsService struct {
	SubmitFunc              func(ctx context.Context, identity domain.Identity, input service.SubmitInput) (*domain.Registration, error)
	LookupFunc              func(ctx context.Context, email string) (*service.StatusResult, error)
	ListFunc                func(ctx context.Context) ([]domain.Registration, error)
	SetPaymentConfirmedFunc func(ctx context.Context, id uuid.UUID, confirmed bool) (*domain.Registration, error)
	SendContactMessageFunc  func(ctx context.Context, name, email, message string) error
}

func (m *mockRegistrationsService) Submit(ctx context.Context, identity domain.Identity, input service.SubmitInput) (*domain.Registration, error) {
	return m.SubmitFunc(ctx, identity, input)
}

func (m *mockRegistrationsService) Lookup(ctx context.Context, email string) (*service.StatusResult, error) {
	return m.LookupFunc(ctx, email)
}

func (m *mockRegistrationsService) List(ctx context.Context) ([]domain.Registration, error) {
	return m.ListFunc(ctx)
}

func (m *mockRegistrationsService) SetPaymentConfirmed(ctx context.Context, id uuid.UUID, confirmed bool) (*domain.Registration, error) {
	return m.SetPaymentConfirmedFunc(ctx, id, confirmed)
}

func (m *mockRegistrationsService) SendContactMessage(ctx context.Context, name, email, message string) error {
	if m.SendContactMessageFunc != nil {
		return m.SendContactMessageFunc(ctx, name, email, message)
	}
	return nil
}

var _ service.Tickets = &mockTicketsService{}

type mockTicketsService struct {
	FindByCodeFunc func(ctx context.Context, code string) (*domain.Registration, error)
	RenderFunc     func(ctx context.Context, email string) (*service.TicketArtifact, error)
}

func (m *mockTicketsService) FindByCode(ctx context.Context, code string) (*domain.Registration, error) {
	return m.FindByCodeFunc(ctx, code)
}

func (m *mockTicketsService) Render(ctx context.Context, email string) (*service.TicketArtifact, error) {
	return m.RenderFunc(ctx, email)
}

func (m *mockTicketsService) VerificationURL(registration domain.Registration) string {
	return "https://reach.example.com/verify-ticket/" + domain.VerificationCode(registration)
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.JWT = config.JWTConfig{AccessTokenTTL: time.Hour, SigningKey: "test-signing-key"}
	cfg.Admin.Emails = []string{"admin@example.com"}
	return cfg
}

func newTestRouter(t *testing.T, services *service.Services, verifier *stubVerifier) (*gin.Engine, auth.TokenManager) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	validator.RegisterGinValidator()

	cfg := testConfig()
	tokenManager, err := auth.NewManager(cfg.Auth.JWT)
	require.NoError(t, err)

	h := NewHandler(services, tokenManager, verifier, cfg)

	router := gin.New()
	h.Init(router.Group("/api"))
	h.InitRoot(router)

	return router, tokenManager
}

func bearerToken(t *testing.T, tokenManager auth.TokenManager, identity domain.Identity) string {
	t.Helper()

	token, _, err := tokenManager.NewJWT(identity)
	require.NoError(t, err)

	return "Bearer " + token
}

func registrationFixture() domain.Registration {
	return domain.Registration{
		ID:            uuid.MustParse("0190a6ee-0000-7000-8000-000000000001"),
		FullName:      "Asha Rao",
		Email:         "asha@example.com",
		Phone:         "9876543210",
		Age:           28,
		Experience:    domain.Beginner,
		TransactionID: "TXN12345",
		CreatedAt:     time.UnixMilli(1722633600000),
	}
}

func TestGoogleSignIn(t *testing.T) {
	t.Run("issues session token", func(t *testing.T) {
		verifier := &stubVerifier{identity: domain.Identity{UID: "uid-1", Email: "asha@example.com"}}
		router, _ := newTestRouter(t, &service.Services{}, verifier)

		body := bytes.NewBufferString(`{"credential": "valid-google-token"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/google", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response authResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.NotEmpty(t, response.AccessToken)
		assert.Equal(t, "asha@example.com", response.Email)
	})

	t.Run("rejects invalid google token", func(t *testing.T) {
		verifier := &stubVerifier{err: errors.New("invalid token")}
		router, _ := newTestRouter(t, &service.Services{}, verifier)

		body := bytes.NewBufferString(`{"credential": "garbage"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/google", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestSubmitRegistration(t *testing.T) {
	identity := domain.Identity{UID: "uid-1", Email: "asha@example.com"}

	submitBody := func() *bytes.Buffer {
		return bytes.NewBufferString(`{
			"full_name": "Asha Rao",
			"phone": "9876543210",
			"age": 28,
			"experience": "Beginner",
			"transaction_id": "TXN12345"
		}`)
	}

	t.Run("creates registration", func(t *testing.T) {
		registrations := &mockRegistrationsService{
			SubmitFunc: func(ctx context.Context, gotIdentity domain.Identity, input service.SubmitInput) (*domain.Registration, error) {
				assert.Equal(t, identity.Email, gotIdentity.Email)
				assert.Equal(t, domain.Beginner, input.Experience)
				fixture := registrationFixture()
				return &fixture, nil
			},
		}
		router, tokenManager := newTestRouter(t, &service.Services{Registrations: registrations}, &stubVerifier{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/registrations", submitBody())
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearerToken(t, tokenManager, identity))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var response registrationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "asha@example.com", response.Email)
		assert.False(t, response.PaymentConfirmed)
	})

	t.Run("requires authentication", func(t *testing.T) {
		router, _ := newTestRouter(t, &service.Services{}, &stubVerifier{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/registrations", submitBody())
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects duplicate", func(t *testing.T) {
		registrations := &mockRegistrationsService{
			SubmitFunc: func(ctx context.Context, gotIdentity domain.Identity, input service.SubmitInput) (*domain.Registration, error) {
				return nil, service.ErrAlreadyRegistered
			},
		}
		router, tokenManager := newTestRouter(t, &service.Services{Registrations: registrations}, &stubVerifier{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/registrations", submitBody())
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearerToken(t, tokenManager, identity))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("rejects invalid phone", func(t *testing.T) {
		router, tokenManager := newTestRouter(t, &service.Services{}, &stubVerifier{})

		body := bytes.NewBufferString(`{
			"full_name": "Asha Rao",
			"phone": "12345",
			"age": 28,
			"experience": "Beginner",
			"transaction_id": "TXN12345"
		}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/registrations", body)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearerToken(t, tokenManager, identity))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response ValidationErrorStruct
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Errors, 1)
		assert.Equal(t, "phone", response.Errors[0].FieldKey)
	})
}

func TestRegistrationStatus(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		registrations := &mockRegistrationsService{
			LookupFunc: func(ctx context.Context, email string) (*service.StatusResult, error) {
				assert.Equal(t, "asha@example.com", email)
				return &service.StatusResult{
					Status:       service.StatusConfirmed,
					Registration: registrationFixture(),
				}, nil
			},
		}
		router, _ := newTestRouter(t, &service.Services{Registrations: registrations}, &stubVerifier{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/registrations/status?email=asha@example.com", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response statusResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "confirmed", response.Status)
	})

	t.Run("not found", func(t *testing.T) {
		registrations := &mockRegistrationsService{
			LookupFunc: func(ctx context.Context, email string) (*service.StatusResult, error) {
				return nil, service.ErrRegistrationNotFound
			},
		}
		router, _ := newTestRouter(t, &service.Services{Registrations: registrations}, &stubVerifier{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/registrations/status?email=nobody@example.com", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDownloadTicket(t *testing.T) {
	t.Run("returns pdf", func(t *testing.T) {
		tickets := &mockTicketsService{
			RenderFunc: func(ctx context.Context, email string) (*service.TicketArtifact, error) {
				return &service.TicketArtifact{
					FileName: "REACH-Workshop-Ticket-Asha-Rao.pdf",
					Content:  []byte("%PDF-1.4"),
				}, nil
			},
		}
		router, _ := newTestRouter(t, &service.Services{Tickets: tickets}, &stubVerifier{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/registrations/ticket?email=asha@example.com", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "REACH-Workshop-Ticket-Asha-Rao.pdf")
		assert.Equal(t, "%PDF-1.4", w.Body.String())
	})

	t.Run("unknown email", func(t *testing.T) {
		tickets := &mockTicketsService{
			RenderFunc: func(ctx context.Context, email string) (*service.TicketArtifact, error) {
				return nil, service.ErrRegistrationNotFound
			},
		}
		router, _ := newTestRouter(t, &service.Services{Tickets: tickets}, &stubVerifier{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/registrations/ticket?email=nobody@example.com", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestVerifyTicket(t *testing.T) {
	t.Run("valid code at root path", func(t *testing.T) {
		fixture := registrationFixture()
		fixture.PaymentConfirmed = true
		code := domain.VerificationCode(fixture)

		tickets := &mockTicketsService{
			FindByCodeFunc: func(ctx context.Context, gotCode string) (*domain.Registration, error) {
				assert.Equal(t, code, gotCode)
				return &fixture, nil
			},
		}
		router, _ := newTestRouter(t, &service.Services{Tickets: tickets}, &stubVerifier{})

		req := httptest.NewRequest(http.MethodGet, "/verify-ticket/"+code, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response verifyTicketResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.Valid)
		assert.Equal(t, "confirmed", response.Status)
		assert.Equal(t, fixture.FullName, response.Registration.FullName)
	})

	t.Run("unknown code", func(t *testing.T) {
		tickets := &mockTicketsService{
			FindByCodeFunc: func(ctx context.Context, code string) (*domain.Registration, error) {
				return nil, service.ErrTicketNotFound
			},
		}
		router, _ := newTestRouter(t, &service.Services{Tickets: tickets}, &stubVerifier{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/verify-ticket/AAAAAAAAAAAA", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAdminEndpoints(t *testing.T) {
	admin := domain.Identity{UID: "admin-uid", Email: "admin@example.com"}
	visitor := domain.Identity{UID: "uid-1", Email: "asha@example.com"}

	t.Run("list requires admin email", func(t *testing.T) {
		router, tokenManager := newTestRouter(t, &service.Services{}, &stubVerifier{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/registrations", nil)
		req.Header.Set("Authorization", bearerToken(t, tokenManager, visitor))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("list with counts", func(t *testing.T) {
		confirmed := registrationFixture()
		confirmed.PaymentConfirmed = true
		pending := registrationFixture()
		pending.ID = uuid.MustParse("11111111-2222-7333-8444-555555555555")

		registrations := &mockRegistrationsService{
			ListFunc: func(ctx context.Context) ([]domain.Registration, error) {
				return []domain.Registration{confirmed, pending}, nil
			},
		}
		router, tokenManager := newTestRouter(t, &service.Services{Registrations: registrations}, &stubVerifier{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/registrations", nil)
		req.Header.Set("Authorization", bearerToken(t, tokenManager, admin))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response registrationListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 2, response.Total)
		assert.Equal(t, 1, response.Confirmed)
		assert.Equal(t, 1, response.Pending)
	})

	t.Run("confirm payment", func(t *testing.T) {
		fixture := registrationFixture()

		registrations := &mockRegistrationsService{
			SetPaymentConfirmedFunc: func(ctx context.Context, id uuid.UUID, gotConfirmed bool) (*domain.Registration, error) {
				assert.Equal(t, fixture.ID, id)
				assert.True(t, gotConfirmed)
				fixture.PaymentConfirmed = true
				return &fixture, nil
			},
		}
		router, tokenManager := newTestRouter(t, &service.Services{Registrations: registrations}, &stubVerifier{})

		body := bytes.NewBufferString(`{"confirmed": true}`)
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/registrations/"+fixture.ID.String()+"/payment", body)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearerToken(t, tokenManager, admin))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response registrationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.PaymentConfirmed)
	})

	t.Run("unknown registration id", func(t *testing.T) {
		registrations := &mockRegistrationsService{
			SetPaymentConfirmedFunc: func(ctx context.Context, id uuid.UUID, confirmed bool) (*domain.Registration, error) {
				return nil, service.ErrRegistrationNotFound
			},
		}
		router, tokenManager := newTestRouter(t, &service.Services{Registrations: registrations}, &stubVerifier{})

		body := bytes.NewBufferString(`{"confirmed": true}`)
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/registrations/"+uuid.NewString()+"/payment", body)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearerToken(t, tokenManager, admin))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestContact(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		registrations := &mockRegistrationsService{
			SendContactMessageFunc: func(ctx context.Context, name, email, message string) error {
				assert.Equal(t, "Asha", name)
				return nil
			},
		}
		router, _ := newTestRouter(t, &service.Services{Registrations: registrations}, &stubVerifier{})

		body := bytes.NewBufferString(`{"name": "Asha", "email": "asha@example.com", "message": "Looking forward to it"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("rejects short message", func(t *testing.T) {
		router, _ := newTestRouter(t, &service.Services{}, &stubVerifier{})

		body := bytes.NewBufferString(`{"name": "Asha", "email": "asha@example.com", "message": "hi"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
