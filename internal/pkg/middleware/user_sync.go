package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/hubber/internal/pkg/logger"
	"github.com/piresc/hubber/internal/pkg/models"
	"github.com/piresc/hubber/internal/utils"
)

// UserStore records authenticated callers
type UserStore interface {
	EnsureUser(ctx context.Context, principal models.Principal) error
}

// UserSyncMiddleware upserts the caller before any write so rows that
// reference users always resolve. Must run after JWTAuthMiddleware.
func UserSyncMiddleware(store UserStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch c.Request().Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				return next(c)
			}

			principal, ok := PrincipalFromContext(c)
			if !ok {
				return utils.UnauthorizedResponse(c, "Authentication required")
			}

			ctx := c.Request().Context()
			if err := store.EnsureUser(ctx, principal); err != nil {
				logger.ErrorCtx(ctx, "Failed to sync user",
					logger.String("user_id", principal.UserID.String()),
					logger.ErrorField(err))
				return utils.InternalServerErrorResponse(c, "Failed to process request")
			}
			return next(c)
		}
	}
}
