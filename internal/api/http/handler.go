package apiHttp

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/reach-workshop/backend/docs"
	"github.com/reach-workshop/backend/pkg/auth"
	"github.com/reach-workshop/backend/pkg/limiter"
	"github.com/reach-workshop/backend/pkg/logger"
	"github.com/reach-workshop/backend/pkg/validator"

	internalV1 "github.com/reach-workshop/backend/internal/api/http/internal/v1"
	"github.com/reach-workshop/backend/internal/auth/google"
	"github.com/reach-workshop/backend/internal/config"
	"github.com/reach-workshop/backend/internal/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	services     *service.Services
	tokenManager auth.TokenManager
	verifier     google.Verifier
	config       *config.Config
}

func NewHandlers(
	services *service.Services,
	tokenManager auth.TokenManager,
	verifier google.Verifier,
	cfg *config.Config,
) *Handler {
	return &Handler{
		services:     services,
		tokenManager: tokenManager,
		verifier:     verifier,
		config:       cfg,
	}
}

func (h *Handler) Init(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	validator.RegisterGinValidator()

	router.Use(
		ginzap.Ginzap(logger.Logger(), time.RFC3339, true),
		limiter.Limit(cfg.Limiter.RPS, cfg.Limiter.Burst, cfg.Limiter.TTL),
		corsMiddleware(cfg.HttpServer.AllowedOrigins),
	)
	router.Use(ginzap.RecoveryWithZap(logger.Logger(), true))

	if cfg.HttpServer.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.NewHandler(), ginSwagger.InstanceName("internal")))
	}

	h.initAPI(router)

	return router
}

func (h *Handler) initAPI(router *gin.Engine) {
	internalHandlersV1 := internalV1.NewHandler(h.services, h.tokenManager, h.verifier, h.config)
	api := router.Group("/api")
	internalHandlersV1.Init(api)

	// The QR code on printed tickets points at the bare site origin, not the
	// versioned API, so the verification route is mounted at root too.
	internalHandlersV1.InitRoot(router)
}
