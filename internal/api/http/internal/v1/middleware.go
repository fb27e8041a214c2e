package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/reach-workshop/backend/internal/domain"
	"github.com/reach-workshop/backend/pkg/logger"
	"go.uber.org/zap"
)

const (
	authorizationHeader = "Authorization"
	identityCtx         = "identity"
)

func (h *Handler) userIdentityMiddleware(c *gin.Context) {
	identity, err := h.parseAuthHeader(c)
	if err != nil {
		if !errors.Is(err, jwt.ErrTokenExpired) {
			logger.Error("parse auth header failed", zap.Error(err))
		}
		errorResponseWithStatus(c, http.StatusUnauthorized, NotAuthenticatedCode)
		return
	}

	c.Set(identityCtx, identity)
}

func (h *Handler) parseAuthHeader(c *gin.Context) (domain.Identity, error) {
	header := c.GetHeader(authorizationHeader)
	if header == "" {
		return domain.Identity{}, errors.New("empty auth header")
	}

	headerParts := strings.Split(header, " ")
	if len(headerParts) != 2 || headerParts[0] != "Bearer" {
		return domain.Identity{}, errors.New("invalid auth header")
	}

	if len(headerParts[1]) == 0 {
		return domain.Identity{}, errors.New("token is empty")
	}

	return h.tokenManager.Parse(headerParts[1])
}

func (h *Handler) getIdentity(c *gin.Context) (domain.Identity, error) {
	value, ok := c.Get(identityCtx)
	if !ok {
		return domain.Identity{}, errors.New("identity not found in context")
	}

	identity, ok := value.(domain.Identity)
	if !ok {
		return domain.Identity{}, errors.New("identity has wrong type")
	}

	return identity, nil
}

// adminMiddleware gates the admin console behind the configured email
// allow-list. It must run after userIdentityMiddleware.
func (h *Handler) adminMiddleware(c *gin.Context) {
	identity, err := h.getIdentity(c)
	if err != nil {
		errorResponseWithStatus(c, http.StatusUnauthorized, NotAuthenticatedCode)
		return
	}

	for _, admin := range h.config.Admin.Emails {
		if strings.EqualFold(admin, identity.Email) {
			return
		}
	}

	logger.Warn("admin access denied", zap.String("email", identity.Email))
	errorResponseWithStatus(c, http.StatusForbidden, ForbiddenCode)
}
