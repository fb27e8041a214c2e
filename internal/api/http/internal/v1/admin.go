package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/reach-workshop/backend/internal/service"
	"github.com/reach-workshop/backend/pkg/logger"
	"go.uber.org/zap"
)

func (h *Handler) initAdminRoutes(api *gin.RouterGroup) {
	admin := api.Group("/admin", h.userIdentityMiddleware, h.adminMiddleware)

	admin.GET("/registrations", h.listRegistrations)
	admin.PATCH("/registrations/:id/payment", h.setPaymentConfirmed)
}

type registrationListResponse struct {
	Total         int                    `json:"total"`
	Confirmed     int                    `json:"confirmed"`
	Pending       int                    `json:"pending"`
	Registrations []registrationResponse `json:"registrations"`
}

// @Summary List registrations
// @Tags Admin
// @Description Lists all registrations with payment counts, newest first
// @ModuleID listRegistrations
// @Accept  json
// @Produce  json
// @Success 200 {object} registrationListResponse
// @Failure 401 {object} ErrorStruct
// @Failure 403 {object} ErrorStruct
// @Security AdminAuth
// @Router /admin/registrations [get]
func (h *Handler) listRegistrations(c *gin.Context) {
	registrations, err := h.services.Registrations.List(c.Request.Context())
	if err != nil {
		logger.Error("list registrations failed", zap.Error(err))
		errorResponse(c, UnknownErrorCode)
		return
	}

	response := registrationListResponse{
		Total:         len(registrations),
		Registrations: make([]registrationResponse, 0, len(registrations)),
	}
	for _, registration := range registrations {
		if registration.PaymentConfirmed {
			response.Confirmed++
		} else {
			response.Pending++
		}
		response.Registrations = append(response.Registrations, newRegistrationResponse(registration))
	}

	c.JSON(http.StatusOK, response)
}

type setPaymentInput struct {
	Confirmed *bool `json:"confirmed" binding:"required"`
}

// @Summary Set payment confirmation
// @Tags Admin
// @Description Confirms or revokes payment for a registration
// @ModuleID setPaymentConfirmed
// @Accept  json
// @Produce  json
// @Param id path string true "registration id"
// @Param input body setPaymentInput true "new payment state"
// @Success 200 {object} registrationResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 401 {object} ErrorStruct
// @Failure 403 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Security AdminAuth
// @Router /admin/registrations/{id}/payment [patch]
func (h *Handler) setPaymentConfirmed(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorResponseWithStatus(c, http.StatusNotFound, RegistrationNotFoundCode)
		return
	}

	var input setPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	registration, err := h.services.Registrations.SetPaymentConfirmed(c.Request.Context(), id, *input.Confirmed)
	if err != nil {
		if errors.Is(err, service.ErrRegistrationNotFound) {
			errorResponseWithStatus(c, http.StatusNotFound, RegistrationNotFoundCode)
			return
		}
		logger.Error("set payment confirmed failed", zap.String("registration_id", id.String()), zap.Error(err))
		errorResponse(c, UnknownErrorCode)
		return
	}

	c.JSON(http.StatusOK, newRegistrationResponse(*registration))
}
