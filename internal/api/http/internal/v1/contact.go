package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reach-workshop/backend/pkg/logger"
	"go.uber.org/zap"
)

func (h *Handler) initContactRoutes(api *gin.RouterGroup) {
	api.POST("/contact", h.submitContactMessage)
}

type contactMessageInput struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,min=10,max=2000"`
}

// @Summary Send contact message
// @Tags Contact
// @Description Forwards a visitor message to the organizers
// @ModuleID submitContactMessage
// @Accept  json
// @Produce  json
// @Param input body contactMessageInput true "contact message"
// @Success 202
// @Failure 400 {object} ValidationErrorStruct
// @Router /contact [post]
func (h *Handler) submitContactMessage(c *gin.Context) {
	var input contactMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.Registrations.SendContactMessage(c.Request.Context(), input.Name, input.Email, input.Message); err != nil {
		logger.Error("contact message enqueue failed", zap.Error(err))
		errorResponse(c, UnknownErrorCode)
		return
	}

	c.Status(http.StatusAccepted)
}
