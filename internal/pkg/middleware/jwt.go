package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/hubber/internal/pkg/jwt"
	"github.com/piresc/hubber/internal/pkg/models"
	"github.com/piresc/hubber/internal/pkg/requestcontext"
	"github.com/piresc/hubber/internal/utils"
)

// Context keys set by the JWT middleware
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			principal, err := jwtpkg.PrincipalFromClaims(claims)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: "+err.Error())
			}

			c.Set(ContextKeyUserID, principal.UserID)
			c.Set(ContextKeyUserRole, principal.Role)
			c.SetRequest(c.Request().WithContext(
				requestcontext.WithUserID(c.Request().Context(), principal.UserID.String())))

			return next(c)
		}
	}
}

// PrincipalFromContext returns the authenticated caller set by JWTAuthMiddleware
func PrincipalFromContext(c echo.Context) (models.Principal, bool) {
	userID, ok := c.Get(ContextKeyUserID).(uuid.UUID)
	if !ok {
		return models.Principal{}, false
	}
	role, ok := c.Get(ContextKeyUserRole).(models.Role)
	if !ok {
		return models.Principal{}, false
	}
	return models.Principal{UserID: userID, Role: role}, true
}

// RequireRole rejects callers whose role is not in the allowed set
func RequireRole(roles ...models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := PrincipalFromContext(c)
			if !ok {
				return utils.UnauthorizedResponse(c, "Authentication required")
			}
			for _, role := range roles {
				if principal.Role == role {
					return next(c)
				}
			}
			return utils.ForbiddenResponse(c, "Insufficient role for this operation")
		}
	}
}
