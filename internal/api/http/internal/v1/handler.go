package v1

import (
	"github.com/reach-workshop/backend/internal/auth/google"
	"github.com/reach-workshop/backend/internal/config"
	"github.com/reach-workshop/backend/internal/service"
	"github.com/reach-workshop/backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title Workshop Registration API
// @version 1.0
// @description Registration, ticketing and verification API for the REACH workshop

// @BasePath /api/v1

// @securityDefinitions.apikey AdminAuth
// @in header
// @name Authorization

// @securityDefinitions.apikey UserAuth
// @in header
// @name Authorization

type Handler struct {
	services     *service.Services
	tokenManager auth.TokenManager
	verifier     google.Verifier
	config       *config.Config
}

func NewHandler(
	services *service.Services,
	tokenManager auth.TokenManager,
	verifier google.Verifier,
	config *config.Config,
) *Handler {
	return &Handler{
		services:     services,
		tokenManager: tokenManager,
		verifier:     verifier,
		config:       config,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	v1 := api.Group("v1")

	h.initAuthRoutes(v1)
	h.initRegistrationRoutes(v1)
	h.initTicketRoutes(v1)
	h.initAdminRoutes(v1)
	h.initContactRoutes(v1)
}

// InitRoot mounts the routes that live outside the /api prefix.
func (h *Handler) InitRoot(router *gin.Engine) {
	router.GET("/verify-ticket/:code", h.verifyTicket)
}
