package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "usersvc/internal/delivery/context"
	"usersvc/internal/delivery/api/response"
	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	keyIdentity  = "identity"
	bearerPrefix = "Bearer "
)

// AuthMiddleware authenticates bearer tokens and enforces roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate verifies the access token and exposes the caller's identity to
// handlers (GetIdentity) and to the service layer through the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.FromAppError(c, domainerrors.ErrUnauthorized)
		}

		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return response.FromAppError(c, domainerrors.ErrInvalidToken)
		}

		identity, err := m.tokenSvc.Verify(strings.TrimSpace(authHeader[len(bearerPrefix):]))
		if err != nil {
			return response.FromAppError(c, domainerrors.ErrInvalidToken)
		}

		c.Set(keyIdentity, *identity)

		ctx := c.Request().Context()
		ctx = deliverycontext.WithIdentity(ctx, *identity)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("account_id", identity.ID.String())))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole allows the request through only when the caller holds one of roles.
// It must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := GetIdentity(c)
			if !ok {
				return response.FromAppError(c, domainerrors.ErrUnauthorized)
			}

			if !identity.HasRole(roles...) {
				return response.FromAppError(c, domainerrors.ErrForbidden)
			}

			return next(c)
		}
	}
}

// GetIdentity returns the caller authenticated by Authenticate.
func GetIdentity(c echo.Context) (entity.Identity, bool) {
	identity, ok := c.Get(keyIdentity).(entity.Identity)

	return identity, ok
}
