package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reach-workshop/backend/pkg/logger"
	"go.uber.org/zap"
)

func (h *Handler) initAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	auth.POST("/google", h.googleSignIn)
}

type googleSignInInput struct {
	Credential string `json:"credential" binding:"required"`
}

type authResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	Email       string `json:"email"`
}

// @Summary Sign in with Google
// @Tags Auth
// @Description Exchanges a Google ID token for a session token
// @ModuleID googleSignIn
// @Accept  json
// @Produce  json
// @Param input body googleSignInInput true "google id token"
// @Success 200 {object} authResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 401 {object} ErrorStruct
// @Router /auth/google [post]
func (h *Handler) googleSignIn(c *gin.Context) {
	var input googleSignInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	identity, err := h.verifier.Verify(c.Request.Context(), input.Credential)
	if err != nil {
		logger.Warn("google sign-in rejected", zap.Error(err))
		errorResponseWithStatus(c, http.StatusUnauthorized, InvalidIDTokenCode)
		return
	}

	accessToken, ttl, err := h.tokenManager.NewJWT(identity)
	if err != nil {
		logger.Error("issue session token failed", zap.Error(err))
		errorResponse(c, UnknownErrorCode)
		return
	}

	c.JSON(http.StatusOK, authResponse{
		AccessToken: accessToken,
		ExpiresIn:   int64(ttl.Seconds()),
		Email:       identity.Email,
	})
}
