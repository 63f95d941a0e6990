package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"bookstore-api/internal/domain/auth"
	"bookstore-api/internal/handler/httperr"
	"bookstore-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	authenticator usecase.Authenticator
}

const ctxIdentityKey = "identity"

var errMissingIdentity = errors.New("identity missing from context")

func NewAuthMiddleware(authenticator usecase.Authenticator) *AuthMiddleware {
	return &AuthMiddleware{
		authenticator: authenticator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := m.authenticator.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			switch {
			case errors.Is(err, usecase.ErrInvalidHeader):
				httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid Authorization header", nil)
			case errors.Is(err, usecase.ErrInvalidToken):
				httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			case errors.Is(err, usecase.ErrUnknownIdentity):
				httperr.AbortWithError(c, http.StatusUnauthorized, err, "User not found or inactive", nil)
			default:
				slog.Error("authentication lookup failed", "error", err.Error())
				httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
			}
			return
		}

		SetIdentity(c, identity)
		c.Next()
	}
}

// Authorize must run after RequireAuth.
func (m *AuthMiddleware) Authorize(policy auth.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error", nil)
			return
		}

		var target string
		if param := policy.Param(); param != "" {
			target = c.Param(param)
		}
		if err := policy.Evaluate(identity, target); err != nil {
			httperr.AbortWithError(c, http.StatusForbidden, err, "You do not have permission to perform this action.", nil)
			return
		}

		c.Next()
	}
}

func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return m.Authorize(auth.StaffOnly())
}

func SetIdentity(c *gin.Context, identity auth.Identity) {
	c.Set(ctxIdentityKey, identity)
}

func GetIdentity(c *gin.Context) (auth.Identity, bool) {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return auth.Identity{}, false
	}

	identity, ok := v.(auth.Identity)
	return identity, ok
}
