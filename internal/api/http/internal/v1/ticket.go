package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reach-workshop/backend/internal/service"
	"github.com/reach-workshop/backend/pkg/logger"
	"go.uber.org/zap"
)

func (h *Handler) initTicketRoutes(api *gin.RouterGroup) {
	api.GET("/verify-ticket/:code", h.verifyTicket)
}

// @Summary Download ticket
// @Tags Tickets
// @Description Renders the ticket PDF for a registered email
// @ModuleID downloadTicket
// @Accept  json
// @Produce  application/pdf
// @Param email query string true "email used during registration"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Router /registrations/ticket [get]
func (h *Handler) downloadTicket(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		errorResponse(c, RegistrationNotFoundCode)
		return
	}

	artifact, err := h.services.Tickets.Render(c.Request.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRegistrationNotFound):
			errorResponseWithStatus(c, http.StatusNotFound, RegistrationNotFoundCode)
		case errors.Is(err, service.ErrTicketRender):
			logger.Error("ticket render failed", zap.String("email", email), zap.Error(err))
			errorResponseWithStatus(c, http.StatusInternalServerError, TicketRenderFailedCode)
		default:
			logger.Error("ticket download failed", zap.Error(err))
			errorResponse(c, UnknownErrorCode)
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.FileName))
	c.Data(http.StatusOK, "application/pdf", artifact.Content)
}

type verifyTicketResponse struct {
	Valid        bool                 `json:"valid"`
	Status       string               `json:"status"`
	Registration registrationResponse `json:"registration"`
}

// @Summary Verify ticket
// @Tags Tickets
// @Description Resolves a printed verification code back to its registration
// @ModuleID verifyTicket
// @Accept  json
// @Produce  json
// @Param code path string true "12-character verification code"
// @Success 200 {object} verifyTicketResponse
// @Failure 404 {object} ErrorStruct
// @Router /verify-ticket/{code} [get]
func (h *Handler) verifyTicket(c *gin.Context) {
	code := c.Param("code")

	registration, err := h.services.Tickets.FindByCode(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, service.ErrTicketNotFound) {
			errorResponseWithStatus(c, http.StatusNotFound, TicketNotFoundCode)
			return
		}
		logger.Error("ticket verification failed", zap.Error(err))
		errorResponse(c, UnknownErrorCode)
		return
	}

	status := string(service.StatusPending)
	if registration.PaymentConfirmed {
		status = string(service.StatusConfirmed)
	}

	c.JSON(http.StatusOK, verifyTicketResponse{
		Valid:        true,
		Status:       status,
		Registration: newRegistrationResponse(*registration),
	})
}
