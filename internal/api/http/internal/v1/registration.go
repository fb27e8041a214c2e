package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reach-workshop/backend/internal/domain"
	"github.com/reach-workshop/backend/internal/service"
	"github.com/reach-workshop/backend/pkg/logger"
	"go.uber.org/zap"
)

func (h *Handler) initRegistrationRoutes(api *gin.RouterGroup) {
	registrations := api.Group("/registrations")

	registrations.POST("", h.userIdentityMiddleware, h.submitRegistration)
	registrations.GET("/status", h.registrationStatus)
	registrations.GET("/ticket", h.downloadTicket)
}

type submitRegistrationInput struct {
	FullName      string `json:"full_name" binding:"required,min=2,max=100"`
	Phone         string `json:"phone" binding:"required,phonenumber"`
	Age           int    `json:"age" binding:"required,min=18,max=100"`
	Experience    string `json:"experience" binding:"required,oneof=Beginner Intermediate Advanced"`
	TransactionID string `json:"transaction_id" binding:"required,min=4,max=64"`
}

type registrationResponse struct {
	ID               string    `json:"id"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Age              int       `json:"age"`
	Experience       string    `json:"experience"`
	TransactionID    string    `json:"transaction_id"`
	PaymentConfirmed bool      `json:"payment_confirmed"`
	CreatedAt        time.Time `json:"created_at"`
}

func newRegistrationResponse(registration domain.Registration) registrationResponse {
	return registrationResponse{
		ID:               registration.ID.String(),
		FullName:         registration.FullName,
		Email:            registration.Email,
		Phone:            registration.Phone,
		Age:              registration.Age,
		Experience:       string(registration.Experience),
		TransactionID:    registration.TransactionID,
		PaymentConfirmed: registration.PaymentConfirmed,
		CreatedAt:        registration.CreatedAt,
	}
}

// @Summary Submit registration
// @Tags Registrations
// @Description Registers the authenticated user for the workshop
// @ModuleID submitRegistration
// @Accept  json
// @Produce  json
// @Param input body submitRegistrationInput true "registration details"
// @Success 201 {object} registrationResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 401 {object} ErrorStruct
// @Failure 409 {object} ErrorStruct
// @Security UserAuth
// @Router /registrations [post]
func (h *Handler) submitRegistration(c *gin.Context) {
	identity, err := h.getIdentity(c)
	if err != nil {
		errorResponseWithStatus(c, http.StatusUnauthorized, NotAuthenticatedCode)
		return
	}

	var input submitRegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	registration, err := h.services.Registrations.Submit(c.Request.Context(), identity, service.SubmitInput{
		FullName:      input.FullName,
		Phone:         input.Phone,
		Age:           input.Age,
		Experience:    domain.ExperienceLevel(input.Experience),
		TransactionID: input.TransactionID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyRegistered):
			errorResponseWithStatus(c, http.StatusConflict, AlreadyRegisteredCode)
		case errors.Is(err, service.ErrNotAuthenticated):
			errorResponseWithStatus(c, http.StatusUnauthorized, NotAuthenticatedCode)
		default:
			logger.Error("submit registration failed", zap.Error(err))
			errorResponse(c, UnknownErrorCode)
		}
		return
	}

	c.JSON(http.StatusCreated, newRegistrationResponse(*registration))
}

type statusResponse struct {
	Status       string               `json:"status"`
	Registration registrationResponse `json:"registration"`
}

// @Summary Registration status
// @Tags Registrations
// @Description Looks up the registration and payment status for an email
// @ModuleID registrationStatus
// @Accept  json
// @Produce  json
// @Param email query string true "email used during registration"
// @Success 200 {object} statusResponse
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Router /registrations/status [get]
func (h *Handler) registrationStatus(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		errorResponse(c, RegistrationNotFoundCode)
		return
	}

	result, err := h.services.Registrations.Lookup(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrRegistrationNotFound) {
			errorResponseWithStatus(c, http.StatusNotFound, RegistrationNotFoundCode)
			return
		}
		logger.Error("registration status lookup failed", zap.Error(err))
		errorResponse(c, UnknownErrorCode)
		return
	}

	c.JSON(http.StatusOK, statusResponse{
		Status:       string(result.Status),
		Registration: newRegistrationResponse(result.Registration),
	})
}
